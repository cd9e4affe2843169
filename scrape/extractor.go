package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/profscrape"
)

// Extractor reads one field or section from a loaded page.
type Extractor[T any] func(ctx context.Context, page profscrape.Page) (T, error)

// FieldError reports a field that could not be read. The pipeline logs it
// and substitutes the field's empty value; it never reaches the caller.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// bestEffort runs extract under the pipeline's field timeout. Any error is
// logged once and replaced with fallback.
func bestEffort[T any](ctx context.Context, p *Pipeline, page profscrape.Page, field string, extract Extractor[T], fallback T) T {
	ctx, cancel := context.WithTimeout(ctx, p.fieldTimeout())
	defer cancel()

	v, err := extract(ctx, page)
	if err != nil {
		p.logger().Debug("field extraction failed",
			"field", field,
			"code", profscrape.ErrorCode(err),
			"err", &FieldError{Field: field, Err: err},
		)
		return fallback
	}
	return v
}
