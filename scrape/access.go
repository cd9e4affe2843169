package scrape

import (
	"strings"

	"github.com/fwojciec/profscrape"
)

// authWallMarkers are URL fragments that only appear after the site
// redirected an anonymous visitor to a login or auth wall.
var authWallMarkers = []string{
	"linkedin.com/login",
	"linkedin.com/uas/login",
	"authwall",
}

// DetectAccessMode classifies the URL a navigation resolved to.
func DetectAccessMode(resolvedURL string) profscrape.AccessMode {
	u := strings.ToLower(resolvedURL)
	for _, marker := range authWallMarkers {
		if strings.Contains(u, marker) {
			return profscrape.AccessModePublicLimited
		}
	}
	return profscrape.AccessModeFull
}
