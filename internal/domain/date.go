package domain

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for all calendar dates in the API:
// ISO YYYY-MM-DD, no time-of-day, no timezone.
const DateFormat = "2006-01-02"

// ParseDate parses an ISO calendar date into a UTC-midnight time.Time.
// All availability and requested dates flow through this function so that
// date comparisons never trip over wall-clock or timezone components.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q (want YYYY-MM-DD)", ErrValidation, s)
	}
	return t, nil
}

// FormatDate renders a calendar date in the API wire format.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Date truncates an arbitrary time.Time to a UTC-midnight calendar date.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
