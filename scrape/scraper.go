package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/profscrape"
)

var _ profscrape.Scraper = (*Scraper)(nil)

// Scraper runs the Pipeline inside a browser Session for each request.
// Every call acquires its own session; nothing is shared between calls.
type Scraper struct {
	Session  profscrape.Session
	Pipeline *Pipeline
}

// NewScraper returns a Scraper that runs pipeline inside session.
func NewScraper(session profscrape.Session, pipeline *Pipeline) *Scraper {
	return &Scraper{Session: session, Pipeline: pipeline}
}

// Scrape extracts the profile at url. A page that yields no fields at all
// still produces a Profile carrying its access mode.
func (s *Scraper) Scrape(ctx context.Context, url string) (*profscrape.Profile, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, profscrape.Errorf(profscrape.EINVALID, "profile URL required")
	}

	pipeline := s.Pipeline
	if pipeline == nil {
		pipeline = NewPipeline()
	}

	profile, err := s.Session.RunInSession(ctx, url, pipeline.Run)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, profscrape.Errorf(profscrape.EINTERNAL, "session returned no profile for %s", url)
	}
	return profile, nil
}
