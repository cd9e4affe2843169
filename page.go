package profscrape

import "context"

// Page is a live handle on one loaded document. Implementations wrap a
// browser tab or a parsed HTML snapshot.
//
// A Page is not safe for concurrent use; extractors run one after another.
type Page interface {
	// Navigate loads url and waits until network activity settles.
	// The context bounds the wait.
	Navigate(ctx context.Context, url string) error

	// URL returns the resolved URL after navigation and redirects.
	URL() string

	// Find returns the first node matching selector.
	// Returns ENOTFOUND immediately if nothing matches; it never waits.
	Find(ctx context.Context, selector string) (Node, error)

	// FindAll returns every node matching selector in document order.
	// Returns an empty slice if nothing matches.
	FindAll(ctx context.Context, selector string) ([]Node, error)

	// Click activates the first node matching selector.
	// Returns ENOTFOUND if nothing matches.
	Click(ctx context.Context, selector string) error

	// WaitFor blocks until selector matches at least one node or the
	// context expires.
	WaitFor(ctx context.Context, selector string) error
}

// Node is a single DOM element.
type Node interface {
	// Text returns the element's text content with surrounding whitespace trimmed.
	Text() (string, error)

	// Attr returns the named attribute (or property, for live pages).
	// Returns ENOTFOUND if the element has none.
	Attr(name string) (string, error)

	// Find returns the first descendant matching selector.
	// Returns ENOTFOUND if nothing matches.
	Find(selector string) (Node, error)
}

// DefaultUserAgent is a desktop Chrome on Windows user agent. The target
// site serves different markup, or refuses outright, to agents it does not
// recognise, so every driver sends this unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// PipelineFunc turns a live page into a profile. It is responsible for
// navigating the page to targetURL.
type PipelineFunc func(ctx context.Context, page Page, targetURL string) (*Profile, error)

// Session owns the lifecycle of one browser instance, context and page.
type Session interface {
	// RunInSession acquires a browser and a page, runs fn against the page
	// and releases the browser on every exit path. Launch failures are
	// returned as ESESSION; fn's result and error are returned unchanged.
	RunInSession(ctx context.Context, targetURL string, fn PipelineFunc) (*Profile, error)
}
