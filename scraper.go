package profscrape

import "context"

// Scraper is the request boundary: one URL in, one profile out.
type Scraper interface {
	// Scrape extracts a profile from url.
	//
	// Returns EINVALID for an empty url, EUNREACHABLE when the page could
	// not be loaded and ESESSION when no browser could be started. A page
	// with no readable fields yields an empty Profile, not an error.
	// Implementations backed by a catalogue return ENOCONTENT for a miss.
	Scrape(ctx context.Context, url string) (*Profile, error)
}
