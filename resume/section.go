package resume

import (
	"regexp"
	"strings"
	"unicode"
)

var blankLineRegexp = regexp.MustCompile(`\n[ \t\r]*\n`)

// findSection returns the text under the first header from headers that
// appears in text. Text on the header line after the header itself (as in
// "SKILLS: Go, SQL") belongs to the section. The section runs until the next
// header line or the end of the text.
func findSection(text string, headers []string) (string, bool) {
	lines := strings.Split(text, "\n")
	for _, header := range headers {
		for i, line := range lines {
			rest, ok := cutHeader(line, header)
			if !ok {
				continue
			}
			body := []string{}
			if rest != "" {
				body = append(body, rest)
			}
			for _, next := range lines[i+1:] {
				if isHeaderLine(next) {
					break
				}
				body = append(body, next)
			}
			section := strings.TrimSpace(strings.Join(body, "\n"))
			return section, section != ""
		}
	}
	return "", false
}

// cutHeader reports whether line starts with header, ignoring case and
// surrounding space, and returns what follows it.
func cutHeader(line, header string) (string, bool) {
	line = strings.TrimSpace(line)
	if len(line) < len(header) || !strings.EqualFold(line[:len(header)], header) {
		return "", false
	}
	rest := line[len(header):]
	if rest != "" && !strings.HasPrefix(rest, ":") && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	rest = strings.TrimLeft(rest, ": \t")
	// "SKILLS AND INTERESTS" is a different header; "SKILLS: Go" is not.
	if rest != "" && isHeaderLine(rest) {
		return "", false
	}
	return rest, true
}

// isHeaderLine reports whether line looks like a section title: at least
// two letters, all of them upper case.
func isHeaderLine(line string) bool {
	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
			continue
		}
		if unicode.IsDigit(r) || r == '@' {
			return false
		}
	}
	return letters >= 2
}

// blocks splits a section on blank lines.
func blocks(section string) []string {
	var out []string
	for _, b := range blankLineRegexp.Split(section, -1) {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}

func trimmedLines(block string) []string {
	var out []string
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
