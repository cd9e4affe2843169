package mock

import (
	"context"

	"github.com/fwojciec/profscrape"
)

var _ profscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of profscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*profscrape.Snapshot, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*profscrape.Snapshot, error) {
	return f.FetchFn(ctx, url)
}
