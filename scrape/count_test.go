package scrape_test

import (
	"testing"

	"github.com/fwojciec/profscrape/scrape"
	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want *int
	}{
		{name: "plus suffix", text: "500+ connections", want: ptr(500)},
		{name: "plain number", text: "2450 followers", want: ptr(2450)},
		{name: "thousands separator stops at the comma", text: "1,200 followers", want: ptr(1)},
		{name: "leading text", text: "Followers: 87", want: ptr(87)},
		{name: "no digits", text: "many connections", want: nil},
		{name: "empty", text: "", want: nil},
		{name: "overflow", text: "99999999999999999999999 followers", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.ParseCount(tt.text))
		})
	}
}
