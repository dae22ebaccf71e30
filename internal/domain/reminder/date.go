// internal/domain/reminder/date.go
package reminder

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used on the CLI and in message headers.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a simulated date cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// DateOf strips the time-of-day and location from t, keeping only its calendar date.
// Guardrail arithmetic works on these UTC midnights so DST never shifts a day difference.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a reference date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q, expected YYYY-MM-DD: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}

// LastDayOfMonth returns the number of days in the given month, leap years included.
func LastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
