// Package resume recovers structured data from the plain text of a resume
// using line and regular-expression heuristics. It makes no attempt at
// layout analysis: multi-column documents parse poorly.
package resume

import (
	"context"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/profscrape"
)

// Section headers, tried in order. Matching is case-insensitive.
var (
	SkillsHeaders     = []string{"SKILLS", "TECHNICAL SKILLS", "TECHNOLOGIES"}
	ExperienceHeaders = []string{"EXPERIENCE", "WORK EXPERIENCE", "EMPLOYMENT"}
	EducationHeaders  = []string{"EDUCATION", "ACADEMIC"}
)

// Placeholders for values a block does not state.
const (
	UnknownName    = "Unknown"
	UnknownCompany = "Unknown Company"
	UnknownDate    = "Unknown Date"
	UnknownDegree  = "Degree not specified"
)

// maxSkillLength excludes sentences that happen to sit in a skills section.
const maxSkillLength = 30

var (
	emailRegexp = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegexp = regexp.MustCompile(`(\+\d{1,3}[\s.-])?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	skillSplit  = regexp.MustCompile(`[,;•\n]`)

	month          = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|May|June|July|August|September|October|November|December)`
	rangeSep       = `(?:-|to|–|—)`
	dateRangeRegex = regexp.MustCompile(`(?i)\b` + month + `\s+\d{4}\s+` + rangeSep + `\s+` + month + `\s+\d{4}|\d{4}\s+` + rangeSep + `\s+\d{4}|\d{4}\s+` + rangeSep + `\s+Present\b`)

	degreeRegexp = regexp.MustCompile(`(?i)\b(?:Bachelor|Master|Associate|Ph\.D|(?:MBA|BS|BA|MS|MA)\b)`)
	yearRegexp   = regexp.MustCompile(`\b\d{4}\b`)
)

// Ensure Parser implements profscrape.ResumeParser at compile time.
var _ profscrape.ResumeParser = (*Parser)(nil)

// Parser extracts a document's text and segments it into a Resume.
type Parser struct {
	Extractor profscrape.TextExtractor
}

// NewParser returns a Parser that reads documents with extractor.
func NewParser(extractor profscrape.TextExtractor) *Parser {
	return &Parser{Extractor: extractor}
}

// ParseResume extracts the text of the document in r and parses it.
func (p *Parser) ParseResume(ctx context.Context, r io.ReaderAt, size int64) (*profscrape.Resume, error) {
	if size <= 0 {
		return nil, profscrape.Errorf(profscrape.EINVALID, "empty document")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text, err := p.Extractor.ExtractText(r, size)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// Parse segments resume text. It never fails; fields it cannot find are
// left empty or set to a placeholder.
func Parse(text string) *profscrape.Resume {
	lines := trimmedLines(text)

	r := &profscrape.Resume{
		RawText:    text,
		Name:       UnknownName,
		Skills:     []string{},
		Experience: []profscrape.ResumeExperience{},
		Education:  []profscrape.ResumeEducation{},
	}
	if len(lines) > 0 {
		r.Name = lines[0]
	}
	if m := emailRegexp.FindString(text); m != "" {
		r.Email = &m
	}
	if m := phoneRegexp.FindString(text); m != "" {
		r.Phone = &m
	}

	if section, ok := findSection(text, SkillsHeaders); ok {
		r.Skills = parseSkills(section)
	}
	if section, ok := findSection(text, ExperienceHeaders); ok {
		r.Experience = parseExperience(section)
	}
	if section, ok := findSection(text, EducationHeaders); ok {
		r.Education = parseEducation(section)
	}
	return r
}

func parseSkills(section string) []string {
	skills := []string{}
	for _, s := range skillSplit.Split(section, -1) {
		s = strings.TrimSpace(s)
		if s == "" || utf8.RuneCountInString(s) >= maxSkillLength {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}

// parseExperience reads blocks of at least two lines. The first line is
// either "Company - Title" or the company alone with the title below it.
func parseExperience(section string) []profscrape.ResumeExperience {
	entries := []profscrape.ResumeExperience{}
	for _, block := range blocks(section) {
		lines := trimmedLines(block)
		if len(lines) < 2 {
			continue
		}

		parts := strings.Split(lines[0], "-")
		company := strings.TrimSpace(parts[0])
		if company == "" {
			company = UnknownCompany
		}
		title := lines[1]
		if len(parts) > 1 {
			title = strings.TrimSpace(parts[1])
		}

		date := dateRangeRegex.FindString(block)
		if date == "" {
			date = UnknownDate
		}

		entries = append(entries, profscrape.ResumeExperience{
			Company:     company,
			Title:       title,
			Date:        date,
			Description: strings.Join(lines[2:], " "),
		})
	}
	return entries
}

func parseEducation(section string) []profscrape.ResumeEducation {
	entries := []profscrape.ResumeEducation{}
	for _, block := range blocks(section) {
		lines := trimmedLines(block)
		if len(lines) == 0 {
			continue
		}

		degree := UnknownDegree
		if loc := degreeRegexp.FindStringIndex(block); loc != nil {
			rest := block[loc[0]:]
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				rest = rest[:i]
			}
			degree = strings.TrimSpace(rest)
		}

		entries = append(entries, profscrape.ResumeEducation{
			School: lines[0],
			Degree: degree,
			Date:   strings.Join(yearRegexp.FindAllString(block, -1), "-"),
		})
	}
	return entries
}
