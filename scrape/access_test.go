package scrape_test

import (
	"testing"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/scrape"
	"github.com/stretchr/testify/assert"
)

func TestDetectAccessMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want profscrape.AccessMode
	}{
		{name: "profile page", url: "https://www.linkedin.com/in/jane-smith/", want: profscrape.AccessModeFull},
		{name: "login redirect", url: "https://www.linkedin.com/login?session_redirect=%2Fin%2Fjane", want: profscrape.AccessModePublicLimited},
		{name: "legacy login", url: "https://www.linkedin.com/uas/login?trk=x", want: profscrape.AccessModePublicLimited},
		{name: "auth wall", url: "https://www.linkedin.com/authwall?trk=public_profile", want: profscrape.AccessModePublicLimited},
		{name: "case insensitive", url: "https://WWW.LINKEDIN.COM/AuthWall", want: profscrape.AccessModePublicLimited},
		{name: "empty url", url: "", want: profscrape.AccessModeFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.DetectAccessMode(tt.url))
		})
	}
}
