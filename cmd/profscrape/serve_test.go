package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/profscrape"
	main "github.com/fwojciec/profscrape/cmd/profscrape"
	"github.com/fwojciec/profscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run_StopsWhenContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Logger: slog.New(slog.DiscardHandler),
		Scraper: &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string) (*profscrape.Profile, error) {
				return sampleProfile(), nil
			},
		},
		Resumes: &mock.ResumeParser{
			ParseResumeFn: func(_ context.Context, _ io.ReaderAt, _ int64) (*profscrape.Resume, error) {
				return &profscrape.Resume{}, nil
			},
		},
	}

	cmd := &main.ServeCmd{Addr: "127.0.0.1:0", ScrapeTimeout: time.Second}

	done := make(chan error, 1)
	go func() { done <- cmd.Run(deps) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
	assert.Contains(t, stdout.String(), "127.0.0.1:0")
}

func TestServeCmd_Run_ReportsListenError(t *testing.T) {
	t.Parallel()

	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  &bytes.Buffer{},
		Stderr:  &bytes.Buffer{},
		Logger:  slog.New(slog.DiscardHandler),
		Scraper: &mock.Scraper{},
		Resumes: &mock.ResumeParser{},
	}

	cmd := &main.ServeCmd{Addr: "256.0.0.1:99999"}
	require.Error(t, cmd.Run(deps))
}
