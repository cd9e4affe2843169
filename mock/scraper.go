package mock

import (
	"context"

	"github.com/fwojciec/profscrape"
)

// Compile-time interface verification.
var (
	_ profscrape.Scraper           = (*Scraper)(nil)
	_ profscrape.ProfileRepository = (*ProfileRepository)(nil)
)

// Scraper is a mock implementation of profscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*profscrape.Profile, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*profscrape.Profile, error) {
	return s.ScrapeFn(ctx, url)
}

// ProfileRepository is a mock implementation of profscrape.ProfileRepository.
type ProfileRepository struct {
	FindProfileByIDFn func(ctx context.Context, id string) (*profscrape.Profile, error)
}

func (r *ProfileRepository) FindProfileByID(ctx context.Context, id string) (*profscrape.Profile, error) {
	return r.FindProfileByIDFn(ctx, id)
}
