package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/profscrape"
)

// Ensure LoggingSession implements profscrape.Session.
var _ profscrape.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging of session lifetimes.
type LoggingSession struct {
	next   profscrape.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next profscrape.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// RunInSession delegates to the wrapped session and logs how long the
// session was held.
func (s *LoggingSession) RunInSession(ctx context.Context, targetURL string, fn profscrape.PipelineFunc) (profile *profscrape.Profile, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("browser session",
			"url", targetURL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RunInSession(ctx, targetURL, fn)
}
