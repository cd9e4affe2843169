// Package http provides a plain HTTP implementation of profscrape.Fetcher
// and a static profscrape.Session built on it. It does not execute
// JavaScript: sections that a live page reveals on click are only found
// if the server already rendered them.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/profscrape"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with scrape.DefaultNavigationTimeout.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxBodySize bounds the size of a fetched document.
const DefaultMaxBodySize = 10 << 20

// Ensure Fetcher implements profscrape.Fetcher at compile time.
var _ profscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents with HTTP GET, following redirects.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to profscrape.DefaultUserAgent; an empty ua keeps the default.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: profscrape.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at url. The returned snapshot carries the
// URL of the final response after redirects.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*profscrape.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, profscrape.Errorf(profscrape.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, DefaultMaxBodySize))
	if err != nil {
		return nil, err
	}

	return &profscrape.Snapshot{
		URL:  resp.Request.URL.String(),
		HTML: string(body),
	}, nil
}
