package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/profscrape"
	main "github.com/fwojciec/profscrape/cmd/profscrape"
	"github.com/fwojciec/profscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the profile as indented JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scraper: &mock.Scraper{
				ScrapeFn: func(_ context.Context, _ string) (*profscrape.Profile, error) {
					return sampleProfile(), nil
				},
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://www.linkedin.com/in/jane-smith"}
		require.NoError(t, cmd.Run(deps))

		var got profscrape.Profile
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, sampleProfile(), &got)
		assert.Contains(t, stdout.String(), "\n  \"headline\"")
	})

	t.Run("reports the error message on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Scraper: &mock.Scraper{
				ScrapeFn: func(_ context.Context, _ string) (*profscrape.Profile, error) {
					return nil, profscrape.Errorf(profscrape.EUNREACHABLE, "navigation timed out")
				},
			},
		}

		cmd := &main.ScrapeCmd{URL: "https://www.linkedin.com/in/jane-smith"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, profscrape.EUNREACHABLE, profscrape.ErrorCode(err))
		assert.Contains(t, stderr.String(), "navigation timed out")
		assert.Empty(t, stdout.String())
	})
}
