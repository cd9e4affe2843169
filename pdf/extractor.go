// Package pdf extracts the text layer of PDF documents using ledongthuc/pdf.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/profscrape"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements profscrape.TextExtractor at compile time.
var _ profscrape.TextExtractor = (*Extractor)(nil)

// Extractor reads the text of every page, one output line per text row,
// pages separated by a newline. Scanned documents without a text layer
// yield an empty string.
type Extractor struct{}

// NewExtractor returns an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the document's text. Returns EINVALID when r does not
// hold a readable PDF.
func (e *Extractor) ExtractText(r io.ReaderAt, size int64) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = profscrape.Errorf(profscrape.EINVALID, "malformed PDF: %v", rec)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", profscrape.Errorf(profscrape.EINVALID, "failed to read PDF: %v", err)
	}

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := pageText(page)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var line strings.Builder
		for _, t := range row.Content {
			line.WriteString(t.S)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n"), nil
}
