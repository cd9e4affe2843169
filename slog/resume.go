package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/profscrape"
)

// Ensure LoggingResumeParser implements profscrape.ResumeParser.
var _ profscrape.ResumeParser = (*LoggingResumeParser)(nil)

// LoggingResumeParser wraps a ResumeParser with logging.
type LoggingResumeParser struct {
	next   profscrape.ResumeParser
	logger *slog.Logger
}

// NewLoggingResumeParser creates a new LoggingResumeParser.
func NewLoggingResumeParser(next profscrape.ResumeParser, logger *slog.Logger) *LoggingResumeParser {
	return &LoggingResumeParser{next: next, logger: logger}
}

// ParseResume delegates to the wrapped parser and logs the operation.
func (p *LoggingResumeParser) ParseResume(ctx context.Context, r io.ReaderAt, size int64) (resume *profscrape.Resume, err error) {
	defer func(begin time.Time) {
		var skills, experience, education int
		if resume != nil {
			skills, experience, education = len(resume.Skills), len(resume.Experience), len(resume.Education)
		}
		p.logger.Info("resume parse",
			"bytes", size,
			"skills", skills,
			"experience", experience,
			"education", education,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseResume(ctx, r, size)
}
