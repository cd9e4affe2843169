package scrape

import (
	"regexp"
	"strconv"
)

var digitsRegexp = regexp.MustCompile(`\d+`)

// ParseCount returns the first run of digits in a badge label such as
// "500+ connections". Returns nil when the text has no digits or the
// number does not fit in an int.
func ParseCount(text string) *int {
	m := digitsRegexp.FindString(text)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}
