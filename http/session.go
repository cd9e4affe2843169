package http

import (
	"context"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/goquery"
)

// Ensure Session implements profscrape.Session at compile time.
var _ profscrape.Session = (*Session)(nil)

// Session runs each pipeline against a fresh static page backed by Fetcher.
// There is no browser to tear down, so sessions are free to create.
type Session struct {
	Fetcher profscrape.Fetcher
}

// NewSession returns a Session that loads pages through fetcher.
func NewSession(fetcher profscrape.Fetcher) *Session {
	return &Session{Fetcher: fetcher}
}

// RunInSession runs fn against a new page.
func (s *Session) RunInSession(ctx context.Context, targetURL string, fn profscrape.PipelineFunc) (*profscrape.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, profscrape.Errorf(profscrape.ESESSION, "session canceled: %w", err)
	}
	return fn(ctx, goquery.NewPage(s.Fetcher), targetURL)
}
