package profscrape

import (
	"context"
	"net/url"
	"regexp"
	"strings"
)

// AccessMode reports how much of a profile page was reachable.
type AccessMode string

// AccessMode constants.
const (
	// AccessModeFull means the page rendered the complete profile markup.
	AccessModeFull AccessMode = "full"

	// AccessModePublicLimited means navigation landed on a login or auth
	// wall and only the public preview card was available.
	AccessModePublicLimited AccessMode = "publicLimited"
)

// Profile is the structured record produced by one scrape run.
// It is created per request and never mutated after the pipeline returns it.
//
// Scalar fields are nil when the page did not expose them. Sequence fields
// are never nil so that a partial profile serializes with the same shape
// as a complete one.
type Profile struct {
	Name            *string               `json:"name"`
	Headline        *string               `json:"headline"`
	Location        *string               `json:"location"`
	ProfileImageURL *string               `json:"profileImageUrl"`
	About           *string               `json:"about"`
	Experience      []ExperienceEntry     `json:"experience"`
	Education       []EducationEntry      `json:"education"`
	Skills          []string              `json:"skills"`
	Recommendations []RecommendationEntry `json:"recommendations"`
	ConnectionCount *int                  `json:"connectionCount"`
	Followers       *int                  `json:"followers"`
	AccessMode      AccessMode            `json:"accessMode"`
}

// ExperienceEntry is one position listed in the experience section.
// Title and Company are required; entries without them are never produced.
type ExperienceEntry struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	DateRange   *string `json:"dateRange"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// EducationEntry is one school listed in the education section.
type EducationEntry struct {
	School       string  `json:"school"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"fieldOfStudy"`
	DateRange    *string `json:"dateRange"`
}

// RecommendationEntry is one received recommendation.
type RecommendationEntry struct {
	Author       string  `json:"author"`
	Relationship *string `json:"relationship"`
	Text         string  `json:"text"`
}

// Public reports whether the profile was extracted from a gated preview.
func (p *Profile) Public() bool {
	return p.AccessMode == AccessModePublicLimited
}

// Empty reports whether no field at all could be extracted.
func (p *Profile) Empty() bool {
	return p.Name == nil &&
		p.Headline == nil &&
		p.Location == nil &&
		p.ProfileImageURL == nil &&
		p.About == nil &&
		len(p.Experience) == 0 &&
		len(p.Education) == 0 &&
		len(p.Skills) == 0 &&
		len(p.Recommendations) == 0 &&
		p.ConnectionCount == nil &&
		p.Followers == nil
}

// ProfileRepository looks up stored sample profiles by identifier.
// It stands in for live scraping in demo mode.
type ProfileRepository interface {
	// FindProfileByID returns the profile stored under id.
	// Returns ENOTFOUND if no profile exists.
	FindProfileByID(ctx context.Context, id string) (*Profile, error)
}

var profileIDRegexp = regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`)

// ProfileID extracts the identifier portion of a profile URL
// (the segment after "/in/"). Returns EINVALID if the URL has none.
func ProfileID(rawURL string) (string, error) {
	m := profileIDRegexp.FindStringSubmatch(rawURL)
	if m == nil {
		return "", Errorf(EINVALID, "invalid profile URL %q: expected a /in/<id> path", rawURL)
	}
	id, err := url.PathUnescape(m[1])
	if err != nil {
		return "", Errorf(EINVALID, "invalid profile id in %q: %v", rawURL, err)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", Errorf(EINVALID, "invalid profile URL %q: empty id", rawURL)
	}
	return id, nil
}
