package utils

import "time"

// DateLayout is the wire format for calendar dates. The engine never deals
// in time-of-day; every date is midnight UTC.
const DateLayout = "2006-01-02"

// NormalizeDate strips the time-of-day component and pins the date to UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" string into a midnight-UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the current date at midnight UTC.
func Today() time.Time {
	return NormalizeDate(time.Now().UTC())
}
