package sqlite

import (
	"time"
)

// dbTimeLayout is the storage format for created_date values. The width is
// fixed and the zone is always UTC, so lexicographic order of stored strings
// matches chronological order and storage precision is exactly microseconds.
const dbTimeLayout = "2006-01-02 15:04:05.000000"

// FormatTimeForDB formats a time.Time value for database storage, normalizing
// to UTC and truncating to microseconds.
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

// ParseTimeFromDB parses a stored created_date value back into a UTC time.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(dbTimeLayout, s)
}
