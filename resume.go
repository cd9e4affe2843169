package profscrape

import (
	"context"
	"io"
)

// Resume holds the data recovered from an uploaded resume document.
// Parsing is a best-effort text heuristic; any field may be empty.
type Resume struct {
	RawText    string             `json:"rawText"`
	Name       string             `json:"name"`
	Email      *string            `json:"email"`
	Phone      *string            `json:"phone"`
	Skills     []string           `json:"skills"`
	Experience []ResumeExperience `json:"experience"`
	Education  []ResumeEducation  `json:"education"`
}

// ResumeExperience is one block of the resume's experience section.
type ResumeExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ResumeEducation is one block of the resume's education section.
type ResumeEducation struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Date   string `json:"date"`
}

// TextExtractor reads the text layer of a document.
type TextExtractor interface {
	// ExtractText returns the document's text, one line per text line and
	// pages separated by newlines. Returns EINVALID if the input cannot be
	// decoded.
	ExtractText(r io.ReaderAt, size int64) (string, error)
}

// ResumeParser turns an uploaded document into a Resume.
type ResumeParser interface {
	ParseResume(ctx context.Context, r io.ReaderAt, size int64) (*Resume, error)
}
