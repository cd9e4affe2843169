package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses a stored timestamp, naming the column on failure.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses when they are positive.
// SQLite requires a LIMIT before any OFFSET.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit <= 0 && offset > 0 {
		limit = -1
	}
	if limit != 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
