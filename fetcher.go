package profscrape

import "context"

// Snapshot is the HTML of a page as it was served, along with the URL it
// was finally served from.
type Snapshot struct {
	URL  string
	HTML string
}

// Fetcher retrieves HTML from URLs without executing JavaScript.
type Fetcher interface {
	// Fetch requests url, follows redirects and returns the final document.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Snapshot, error)
}
