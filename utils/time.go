// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCNowFormat returns the current UTC time formatted according to the given layout
func UTCNowFormat(layout string) string {
	return UTCNow().Format(layout)
}

// Today returns the current UTC date truncated to midnight.
func Today() time.Time {
	return DateOnly(UTCNow())
}

// DateOnly truncates t to midnight UTC so validity comparisons ignore the
// time-of-day component carried by some spreadsheet cells.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
