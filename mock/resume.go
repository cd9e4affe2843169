package mock

import (
	"context"
	"io"

	"github.com/fwojciec/profscrape"
)

// Compile-time interface verification.
var (
	_ profscrape.TextExtractor = (*TextExtractor)(nil)
	_ profscrape.ResumeParser  = (*ResumeParser)(nil)
)

// TextExtractor is a mock implementation of profscrape.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(r io.ReaderAt, size int64) (string, error)
}

func (e *TextExtractor) ExtractText(r io.ReaderAt, size int64) (string, error) {
	return e.ExtractTextFn(r, size)
}

// ResumeParser is a mock implementation of profscrape.ResumeParser.
type ResumeParser struct {
	ParseResumeFn func(ctx context.Context, r io.ReaderAt, size int64) (*profscrape.Resume, error)
}

func (p *ResumeParser) ParseResume(ctx context.Context, r io.ReaderAt, size int64) (*profscrape.Resume, error) {
	return p.ParseResumeFn(ctx, r, size)
}
