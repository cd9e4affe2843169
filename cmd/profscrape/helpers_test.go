package main_test

import (
	"time"

	"github.com/fwojciec/profscrape"
)

var scrapeDefaults = struct {
	nav   time.Duration
	field time.Duration
}{nav: 30 * time.Second, field: 5 * time.Second}

func str(s string) *string { return &s }

func sampleProfile() *profscrape.Profile {
	return &profscrape.Profile{
		Name:            str("Jane Smith"),
		Headline:        str("Product Manager"),
		Experience:      []profscrape.ExperienceEntry{},
		Education:       []profscrape.EducationEntry{},
		Skills:          []string{"Product Strategy"},
		Recommendations: []profscrape.RecommendationEntry{},
		AccessMode:      profscrape.AccessModeFull,
	}
}
