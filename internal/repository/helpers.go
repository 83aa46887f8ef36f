package repository

import (
	"time"
)

// timeLayout is a fixed-width RFC3339 format. Times are written in UTC so
// that stored strings sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// parseTime parses a stored time string
func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// formatTime formats t for storage
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
