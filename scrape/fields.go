package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/profscrape"
)

// textOf reads the trimmed text of the first node matching selector.
// Blank text counts as absent.
func textOf(selector string) Extractor[*string] {
	return func(ctx context.Context, page profscrape.Page) (*string, error) {
		node, err := page.Find(ctx, selector)
		if err != nil {
			return nil, err
		}
		text, err := node.Text()
		if err != nil {
			return nil, err
		}
		return nonBlank(text), nil
	}
}

// attrOf reads an attribute of the first node matching selector.
func attrOf(selector, name string) Extractor[*string] {
	return func(ctx context.Context, page profscrape.Page) (*string, error) {
		node, err := page.Find(ctx, selector)
		if err != nil {
			return nil, err
		}
		v, err := node.Attr(name)
		if err != nil {
			return nil, err
		}
		return nonBlank(v), nil
	}
}

// expandedText clicks the optional expand control before reading selector.
// A missing control is not an error; a control that fails to click is.
func expandedText(expand, selector string) Extractor[*string] {
	read := textOf(selector)
	return func(ctx context.Context, page profscrape.Page) (*string, error) {
		if _, err := page.Find(ctx, expand); err == nil {
			if err := page.Click(ctx, expand); err != nil {
				return nil, err
			}
		}
		return read(ctx, page)
	}
}

// countOf parses the first run of digits in a labeled badge.
func countOf(selector string) Extractor[*int] {
	read := textOf(selector)
	return func(ctx context.Context, page profscrape.Page) (*int, error) {
		text, err := read(ctx, page)
		if err != nil {
			return nil, err
		}
		if text == nil {
			return nil, profscrape.Errorf(profscrape.ENOTFOUND, "badge %q is empty", selector)
		}
		n := ParseCount(*text)
		if n == nil {
			return nil, profscrape.Errorf(profscrape.EINVALID, "no count in %q", *text)
		}
		return n, nil
	}
}

func experience(s FullSelectors) Extractor[[]profscrape.ExperienceEntry] {
	return func(ctx context.Context, page profscrape.Page) ([]profscrape.ExperienceEntry, error) {
		nodes, err := page.FindAll(ctx, s.ExperienceItem)
		if err != nil {
			return nil, err
		}
		entries := make([]profscrape.ExperienceEntry, 0, len(nodes))
		for _, n := range nodes {
			title := childText(n, s.ExperienceTitle)
			company := childText(n, s.ExperienceCompany)
			if title == nil || company == nil {
				continue
			}
			entries = append(entries, profscrape.ExperienceEntry{
				Title:       *title,
				Company:     *company,
				DateRange:   childText(n, s.ExperienceDateRange),
				Location:    childText(n, s.ExperienceLocation),
				Description: childText(n, s.ExperienceDescription),
			})
		}
		return entries, nil
	}
}

func education(s FullSelectors) Extractor[[]profscrape.EducationEntry] {
	return func(ctx context.Context, page profscrape.Page) ([]profscrape.EducationEntry, error) {
		nodes, err := page.FindAll(ctx, s.EducationItem)
		if err != nil {
			return nil, err
		}
		entries := make([]profscrape.EducationEntry, 0, len(nodes))
		for _, n := range nodes {
			school := childText(n, s.EducationSchool)
			if school == nil {
				continue
			}
			entries = append(entries, profscrape.EducationEntry{
				School:       *school,
				Degree:       childText(n, s.EducationDegree),
				FieldOfStudy: childText(n, s.EducationField),
				DateRange:    childText(n, s.EducationDateRange),
			})
		}
		return entries, nil
	}
}

// skills keeps the text of every matched node, blank or not.
func skills(s FullSelectors) Extractor[[]string] {
	return func(ctx context.Context, page profscrape.Page) ([]string, error) {
		if err := reveal(ctx, page, s.SkillsNav, s.SkillsReady); err != nil {
			return nil, err
		}
		nodes, err := page.FindAll(ctx, s.Skill)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(nodes))
		for _, n := range nodes {
			text, err := n.Text()
			if err != nil {
				return nil, err
			}
			out = append(out, text)
		}
		return out, nil
	}
}

func recommendations(s FullSelectors) Extractor[[]profscrape.RecommendationEntry] {
	return func(ctx context.Context, page profscrape.Page) ([]profscrape.RecommendationEntry, error) {
		if err := reveal(ctx, page, s.RecommendationsNav, s.RecommendationsReady); err != nil {
			return nil, err
		}
		nodes, err := page.FindAll(ctx, s.RecommendationItem)
		if err != nil {
			return nil, err
		}
		entries := make([]profscrape.RecommendationEntry, 0, len(nodes))
		for _, n := range nodes {
			author := childText(n, s.RecommendationAuthor)
			text := childText(n, s.RecommendationText)
			if author == nil || text == nil {
				continue
			}
			entries = append(entries, profscrape.RecommendationEntry{
				Author:       *author,
				Relationship: childText(n, s.RecommendationRole),
				Text:         *text,
			})
		}
		return entries, nil
	}
}

// reveal activates a section's navigation control and waits for its content.
func reveal(ctx context.Context, page profscrape.Page, nav, ready string) error {
	if err := page.Click(ctx, nav); err != nil {
		return err
	}
	return page.WaitFor(ctx, ready)
}

// childText reads an optional descendant of n. Any failure yields nil.
func childText(n profscrape.Node, selector string) *string {
	child, err := n.Find(selector)
	if err != nil {
		return nil
	}
	text, err := child.Text()
	if err != nil {
		return nil
	}
	return nonBlank(text)
}

func nonBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
