package rod

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fwojciec/profscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxSessions is the default number of browsers that may run at once.
const DefaultMaxSessions = 2

// Default viewport of every session page.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

// Ensure SessionManager implements profscrape.Session at compile time.
var _ profscrape.Session = (*SessionManager)(nil)

// SessionManager launches a dedicated headless Chrome for each scrape and
// tears it down when the scrape returns. No browser state, cookies or pages
// are shared between sessions.
//
// SessionManager is safe for concurrent use. At most MaxSessions browsers
// run at once; further callers wait for a slot or for their context.
type SessionManager struct {
	headless  bool
	stealth   bool
	userAgent string
	bin       string
	logger    *slog.Logger
	sem       *semaphore.Weighted
}

// SessionOption configures a SessionManager.
type SessionOption func(*SessionManager)

// WithStealth enables the stealth evasions on every session page.
func WithStealth(enabled bool) SessionOption {
	return func(m *SessionManager) {
		m.stealth = enabled
	}
}

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
// Defaults to DefaultMaxSessions if not specified.
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

// WithBrowserBin uses the Chrome binary at path instead of looking one up.
func WithBrowserBin(path string) SessionOption {
	return func(m *SessionManager) {
		m.bin = path
	}
}

// WithLogger sets the logger used for teardown warnings.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(m *SessionManager) {
		m.logger = logger
	}
}

// NewSessionManager creates a SessionManager. No browser is started until
// the first call to RunInSession.
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

// RunInSession launches a browser, opens one page and runs fn against it.
// The browser is closed on every exit path, including when fn fails or
// panics. A launch failure is reported as ESESSION. A failure to close is
// logged and never replaces the result of fn.
func (m *SessionManager) RunInSession(ctx context.Context, targetURL string, fn profscrape.PipelineFunc) (*profscrape.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "waiting for browser session: %w", err)
	}
	if err := m.sem.Acquire(ctx, 1); err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "waiting for browser session: %w", err)
	}
	defer m.sem.Release(1)

	b, err := m.launch(ctx)
	if err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "failed to launch browser: %w", err)
	}
	defer func() {
		if err := b.close(); err != nil {
			m.logger.Warn("failed to close browser session", "url", targetURL, "err", err)
		}
	}()

	page, err := m.newPage(b.browser)
	if err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "failed to open page: %w", err)
	}

	return fn(ctx, &Page{page: page}, targetURL)
}

// browser is one launched Chrome process and its connection.
type browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// launch starts a new browser instance with stability flags.
func (m *SessionManager) launch(ctx context.Context) (*browser, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Set("disable-blink-features", "AutomationControlled").
		Leakless(true).
		Headless(m.headless)
	if m.bin != "" {
		l = l.Bin(m.bin)
	}
	l = l.Set("user-agent", m.userAgent)

	u, err := l.Context(ctx).Launch()
	if err != nil {
		l.Kill()
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	rb := rod.New().ControlURL(u)
	if err := rb.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &browser{browser: rb, launcher: l}, nil
}

// newPage opens a page in a fresh incognito context.
func (m *SessionManager) newPage(b *rod.Browser) (*rod.Page, error) {
	incognito, err := b.Incognito()
	if err != nil {
		return nil, fmt.Errorf("creating incognito context: %w", err)
	}

	var page *rod.Page
	if m.stealth {
		page, err = stealth.Page(incognito)
	} else {
		page, err = incognito.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             DefaultViewportWidth,
		Height:            DefaultViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: m.userAgent}); err != nil {
		return nil, fmt.Errorf("setting user agent: %w", err)
	}
	return page, nil
}

// close shuts down the browser and kills the launcher process.
func (b *browser) close() error {
	var errs []error
	if b.browser != nil {
		if err := b.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing browser: %w", err))
		}
	}
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return errors.Join(errs...)
}
