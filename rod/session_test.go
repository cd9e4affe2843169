package rod_test

import (
	"context"
	"testing"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/rod"
	"github.com/stretchr/testify/assert"
)

func TestSessionManager_RunInSession_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := rod.NewSessionManager()
	called := false

	profile, err := m.RunInSession(ctx, "https://www.linkedin.com/in/jane", func(_ context.Context, _ profscrape.Page, _ string) (*profscrape.Profile, error) {
		called = true
		return &profscrape.Profile{}, nil
	})

	assert.Nil(t, profile)
	assert.Equal(t, profscrape.ESESSION, profscrape.ErrorCode(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called, "pipeline must not run without a session")
}

func TestSessionManager_RunInSession_LaunchFailure(t *testing.T) {
	t.Parallel()

	m := rod.NewSessionManager(rod.WithBrowserBin("/nonexistent/chrome"))

	_, err := m.RunInSession(context.Background(), "https://www.linkedin.com/in/jane", func(_ context.Context, _ profscrape.Page, _ string) (*profscrape.Profile, error) {
		t.Error("pipeline must not run when the browser cannot start")
		return nil, nil
	})

	assert.Equal(t, profscrape.ESESSION, profscrape.ErrorCode(err))
}

func TestSessionManager_UserAgent(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the desktop user agent", func(t *testing.T) {
		t.Parallel()

		m := rod.NewSessionManager()

		assert.Equal(t, profscrape.DefaultUserAgent, m.UserAgent())
		assert.Contains(t, m.UserAgent(), "Windows NT")
		assert.NotContains(t, m.UserAgent(), "Headless")
	})

	t.Run("empty override keeps the default", func(t *testing.T) {
		t.Parallel()

		m := rod.NewSessionManager(rod.WithUserAgent(""))

		assert.Equal(t, profscrape.DefaultUserAgent, m.UserAgent())
	})

	t.Run("override replaces the default", func(t *testing.T) {
		t.Parallel()

		m := rod.NewSessionManager(rod.WithUserAgent("custom/1.0"))

		assert.Equal(t, "custom/1.0", m.UserAgent())
	})
}
