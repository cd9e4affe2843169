package slog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/mock"
	profslog "github.com/fwojciec/profscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs profile summary and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string) (*profscrape.Profile, error) {
				return &profscrape.Profile{
					Skills:     []string{"Go", "SQL"},
					AccessMode: profscrape.AccessModePublicLimited,
				}, nil
			},
		}

		s := profslog.NewLoggingScraper(inner, logger)
		profile, err := s.Scrape(context.Background(), "https://www.linkedin.com/in/jane")

		require.NoError(t, err)
		assert.NotNil(t, profile)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=scrape")
		assert.Contains(t, output, "url=https://www.linkedin.com/in/jane")
		assert.Contains(t, output, "accessMode=publicLimited")
		assert.Contains(t, output, "skills=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error with code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string) (*profscrape.Profile, error) {
				return nil, profscrape.Errorf(profscrape.EUNREACHABLE, "navigation failed")
			},
		}

		s := profslog.NewLoggingScraper(inner, logger)
		_, err := s.Scrape(context.Background(), "https://www.linkedin.com/in/jane")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=unreachable")
		assert.Contains(t, output, `err="navigation failed"`)
		assert.NotContains(t, output, "accessMode=")
	})
}

func TestLoggingSession_RunInSession(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	boom := errors.New("browser crashed")
	inner := &mock.Session{
		RunInSessionFn: func(ctx context.Context, targetURL string, fn profscrape.PipelineFunc) (*profscrape.Profile, error) {
			return fn(ctx, nil, targetURL)
		},
	}

	s := profslog.NewLoggingSession(inner, logger)
	_, err := s.RunInSession(context.Background(), "https://www.linkedin.com/in/jane", func(_ context.Context, _ profscrape.Page, _ string) (*profscrape.Profile, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	output := buf.String()
	assert.Contains(t, output, "browser session")
	assert.Contains(t, output, `err="browser crashed"`)
}

func TestLoggingResumeParser_ParseResume(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ResumeParser{
		ParseResumeFn: func(_ context.Context, _ io.ReaderAt, _ int64) (*profscrape.Resume, error) {
			return &profscrape.Resume{Skills: []string{"Go"}}, nil
		},
	}

	p := profslog.NewLoggingResumeParser(inner, logger)
	_, err := p.ParseResume(context.Background(), strings.NewReader("%PDF"), 4)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "resume parse")
	assert.Contains(t, output, "bytes=4")
	assert.Contains(t, output, "skills=1")
}
