// Package chromedp implements profscrape.Session on top of the Chrome
// DevTools Protocol using chromedp. It is an alternative to the rod driver
// for environments where only a plain Chrome executable is available.
package chromedp

import (
	"context"
	"log/slog"

	"github.com/chromedp/chromedp"
	"github.com/fwojciec/profscrape"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxSessions is the default number of browsers that may run at once.
const DefaultMaxSessions = 2

// Desktop viewport applied to every session tab.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

// Ensure SessionManager implements profscrape.Session at compile time.
var _ profscrape.Session = (*SessionManager)(nil)

// SessionManager starts a separate Chrome process per scrape through an
// exec allocator and cancels it when the scrape returns.
type SessionManager struct {
	headless  bool
	userAgent string
	execPath  string
	logger    *slog.Logger
	sem       *semaphore.Weighted
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithUserAgent overrides the browser user agent.
// Defaults to profscrape.DefaultUserAgent; an empty ua keeps the default.
func WithUserAgent(ua string) SessionOption {
	return func(m *SessionManager) {
		if ua != "" {
			m.userAgent = ua
		}
	}
}

// WithMaxSessions caps the number of concurrent browsers.
func WithMaxSessions(n int64) SessionOption {
	return func(m *SessionManager) {
		if n > 0 {
			m.sem = semaphore.NewWeighted(n)
		}
	}
}

// WithHeadless controls whether the browser window is hidden.
func WithHeadless(headless bool) SessionOption {
	return func(m *SessionManager) {
		m.headless = headless
	}
}

// WithExecPath uses the Chrome binary at path.
func WithExecPath(path string) SessionOption {
	return func(m *SessionManager) {
		m.execPath = path
	}
}

// WithLogger sets the logger used for teardown warnings.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(m *SessionManager) {
		m.logger = logger
	}
}

// NewSessionManager creates a SessionManager.
func NewSessionManager(opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		headless:  true,
		userAgent: profscrape.DefaultUserAgent,
		logger:    slog.New(slog.DiscardHandler),
		sem:       semaphore.NewWeighted(DefaultMaxSessions),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// UserAgent returns the user agent every session page identifies with.
func (m *SessionManager) UserAgent() string {
	return m.userAgent
}

// RunInSession starts a browser, runs fn against its first tab and shuts
// the browser down on every exit path.
func (m *SessionManager) RunInSession(ctx context.Context, targetURL string, fn profscrape.PipelineFunc) (*profscrape.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "waiting for browser session: %w", err)
	}
	if err := m.sem.Acquire(ctx, 1); err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "waiting for browser session: %w", err)
	}
	defer m.sem.Release(1)

	// The browser outlives request cancellation long enough to be closed
	// gracefully.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), m.allocatorOptions()...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	// The first Run allocates the browser and binds it to tabCtx.
	if err := chromedp.Run(tabCtx, chromedp.EmulateViewport(DefaultViewportWidth, DefaultViewportHeight)); err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "failed to launch browser: %w", err)
	}
	defer func() {
		if err := chromedp.Cancel(tabCtx); err != nil {
			m.logger.Warn("failed to close browser session", "url", targetURL, "err", err)
		}
	}()

	return fn(ctx, newPage(tabCtx), targetURL)
}

func (m *SessionManager) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", m.headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.WindowSize(DefaultViewportWidth, DefaultViewportHeight),
		chromedp.UserAgent(m.userAgent),
	)
	if m.execPath != "" {
		opts = append(opts, chromedp.ExecPath(m.execPath))
	}
	return opts
}
