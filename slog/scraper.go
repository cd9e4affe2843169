// Package slog provides logging decorators for the profscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/profscrape"
)

// Ensure LoggingScraper implements profscrape.Scraper.
var _ profscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper and logs one line per scrape.
type LoggingScraper struct {
	next   profscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next profscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs a summary of the result.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (profile *profscrape.Profile, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if profile != nil {
			attrs = append(attrs,
				"accessMode", profile.AccessMode,
				"experience", len(profile.Experience),
				"education", len(profile.Education),
				"skills", len(profile.Skills),
				"recommendations", len(profile.Recommendations),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin))
		if err != nil {
			s.logger.Error("scrape", append(attrs, "code", profscrape.ErrorCode(err), "err", err)...)
			return
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
