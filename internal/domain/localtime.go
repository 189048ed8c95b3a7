package domain

import (
	"fmt"
	"strings"
	"time"
)

// Stored timestamps are wall-clock readings without a zone. They are parsed
// into time.UTC purely as a neutral carrier and never converted.
const (
	LocalDateTimeLayout = "2006-01-02 15:04:05"
	LocalDateLayout     = "2006-01-02"
)

// ParseLocalDateTime parses "YYYY-MM-DD HH:MM:SS". A bare date is accepted
// and read as midnight.
func ParseLocalDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(LocalDateTimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(LocalDateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parsing local datetime %q: want YYYY-MM-DD HH:MM:SS", s)
}

// FormatLocalDateTime renders the wall-clock fields of t in the canonical form.
func FormatLocalDateTime(t time.Time) string {
	return t.Format(LocalDateTimeLayout)
}

// ParseLocalDate parses "YYYY-MM-DD" to midnight of that day.
func ParseLocalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LocalDateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing local date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// DateKey returns the calendar date of t as "YYYY-MM-DD".
func DateKey(t time.Time) string {
	return t.Format(LocalDateLayout)
}

// StartOfDay truncates t to midnight, keeping its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WallClock reads the local clock fields of an instant and places them in the
// neutral carrier, so it compares directly against parsed stored values.
func WallClock(t time.Time) time.Time {
	t = t.Local()
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}
