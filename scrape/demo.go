package scrape

import (
	"context"

	"github.com/fwojciec/profscrape"
)

var _ profscrape.Scraper = (*DemoScraper)(nil)

// DemoScraper answers scrape requests from a repository of sample profiles
// instead of a browser. It never touches the network.
type DemoScraper struct {
	Profiles profscrape.ProfileRepository

	// DefaultID is served when the requested id has no sample profile.
	// Leave empty to report ENOCONTENT instead.
	DefaultID string
}

// Scrape looks up the profile id embedded in url.
func (s *DemoScraper) Scrape(ctx context.Context, url string) (*profscrape.Profile, error) {
	if url == "" {
		return nil, profscrape.Errorf(profscrape.EINVALID, "profile URL required")
	}
	id, err := profscrape.ProfileID(url)
	if err != nil {
		return nil, err
	}

	profile, err := s.Profiles.FindProfileByID(ctx, id)
	if profscrape.ErrorCode(err) == profscrape.ENOTFOUND && s.DefaultID != "" && s.DefaultID != id {
		profile, err = s.Profiles.FindProfileByID(ctx, s.DefaultID)
	}
	if profscrape.ErrorCode(err) == profscrape.ENOTFOUND {
		return nil, profscrape.Errorf(profscrape.ENOCONTENT, "no sample profile for %q", id)
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
