package repository

import (
	"time"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// parseTimestamp parses an RFC3339 column. Empty or malformed values yield
// the zero time.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// nowUTC returns the current UTC time truncated to what RFC3339 stores.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
