// Package scrape implements the profile extraction pipeline: navigation,
// access-mode detection and a sequence of isolated, best-effort field
// extractors that assemble one profscrape.Profile.
package scrape

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/profscrape"
)

// Default timeouts.
const (
	DefaultNavigationTimeout = 30 * time.Second
	DefaultFieldTimeout      = 5 * time.Second
)

// Pipeline extracts a profile from a page. Extractors run sequentially
// against the one page; a Pipeline holds no per-run state and may be
// shared by concurrent runs on different pages.
type Pipeline struct {
	// Selectors defaults to DefaultSelectors when left zero.
	Selectors Selectors

	// NavigationTimeout bounds the initial load, including the wait for the
	// network to go quiet. Defaults to DefaultNavigationTimeout.
	NavigationTimeout time.Duration

	// FieldTimeout bounds each individual extractor, including any clicks
	// and waits it performs. Defaults to DefaultFieldTimeout.
	FieldTimeout time.Duration

	Logger *slog.Logger
}

// NewPipeline returns a Pipeline with the default selectors and timeouts.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Selectors:         DefaultSelectors(),
		NavigationTimeout: DefaultNavigationTimeout,
		FieldTimeout:      DefaultFieldTimeout,
	}
}

// Run navigates page to targetURL and extracts a profile from it.
// Only a navigation failure is fatal (EUNREACHABLE); every field that
// cannot be read is left nil or empty.
func (p *Pipeline) Run(ctx context.Context, page profscrape.Page, targetURL string) (*profscrape.Profile, error) {
	if err := p.navigate(ctx, page, targetURL); err != nil {
		return nil, err
	}

	resolved := page.URL()
	if DetectAccessMode(resolved) == profscrape.AccessModePublicLimited {
		p.logger().Info("profile requires authentication, using limited public extraction",
			"url", targetURL,
			"resolved", resolved,
		)
		return p.extractPublic(ctx, page), nil
	}
	return p.extractFull(ctx, page), nil
}

func (p *Pipeline) navigate(ctx context.Context, page profscrape.Page, targetURL string) error {
	timeout := p.navigationTimeout()
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := page.Navigate(navCtx, targetURL)
	if err == nil {
		// Some drivers stop waiting silently when the deadline passes.
		err = navCtx.Err()
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(navCtx.Err(), context.DeadlineExceeded) {
		return profscrape.Errorf(profscrape.EUNREACHABLE, "navigation to %s timed out after %s: %w", targetURL, timeout, context.DeadlineExceeded)
	}
	return profscrape.Errorf(profscrape.EUNREACHABLE, "navigation to %s failed: %w", targetURL, err)
}

func (p *Pipeline) extractPublic(ctx context.Context, page profscrape.Page) *profscrape.Profile {
	s := p.selectors().Public
	profile := newProfile(profscrape.AccessModePublicLimited)
	profile.Name = bestEffort(ctx, p, page, "name", textOf(s.Name), nil)
	profile.Headline = bestEffort(ctx, p, page, "headline", textOf(s.Headline), nil)
	profile.Location = bestEffort(ctx, p, page, "location", textOf(s.Location), nil)
	profile.ProfileImageURL = bestEffort(ctx, p, page, "profileImageUrl", attrOf(s.ProfileImage, "src"), nil)
	return profile
}

func (p *Pipeline) extractFull(ctx context.Context, page profscrape.Page) *profscrape.Profile {
	s := p.selectors().Full
	profile := newProfile(profscrape.AccessModeFull)
	profile.Name = bestEffort(ctx, p, page, "name", textOf(s.Name), nil)
	profile.Headline = bestEffort(ctx, p, page, "headline", textOf(s.Headline), nil)
	profile.Location = bestEffort(ctx, p, page, "location", textOf(s.Location), nil)
	profile.ProfileImageURL = bestEffort(ctx, p, page, "profileImageUrl", attrOf(s.ProfileImage, "src"), nil)
	profile.About = bestEffort(ctx, p, page, "about", expandedText(s.AboutExpand, s.About), nil)
	profile.Experience = bestEffort(ctx, p, page, "experience", experience(s), []profscrape.ExperienceEntry{})
	profile.Education = bestEffort(ctx, p, page, "education", education(s), []profscrape.EducationEntry{})
	profile.Skills = bestEffort(ctx, p, page, "skills", skills(s), []string{})
	profile.Recommendations = bestEffort(ctx, p, page, "recommendations", recommendations(s), []profscrape.RecommendationEntry{})
	profile.ConnectionCount = bestEffort(ctx, p, page, "connectionCount", countOf(s.Connections), nil)
	profile.Followers = bestEffort(ctx, p, page, "followers", countOf(s.Followers), nil)
	return profile
}

func newProfile(mode profscrape.AccessMode) *profscrape.Profile {
	return &profscrape.Profile{
		Experience:      []profscrape.ExperienceEntry{},
		Education:       []profscrape.EducationEntry{},
		Skills:          []string{},
		Recommendations: []profscrape.RecommendationEntry{},
		AccessMode:      mode,
	}
}

func (p *Pipeline) selectors() Selectors {
	if p.Selectors == (Selectors{}) {
		return DefaultSelectors()
	}
	return p.Selectors
}

func (p *Pipeline) navigationTimeout() time.Duration {
	if p.NavigationTimeout > 0 {
		return p.NavigationTimeout
	}
	return DefaultNavigationTimeout
}

func (p *Pipeline) fieldTimeout() time.Duration {
	if p.FieldTimeout > 0 {
		return p.FieldTimeout
	}
	return DefaultFieldTimeout
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
