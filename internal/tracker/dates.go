package tracker

import (
	"time"
)

const day = 24 * time.Hour

// DateKey is the local calendar date of t, as stored in the document.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// ParseDate reads the calendar date from a stored date or timestamp. The
// result is midnight UTC so that day arithmetic ignores DST shifts.
func ParseDate(s string) (time.Time, bool) {
	if len(s) < len(time.DateOnly) {
		return time.Time{}, false
	}
	d, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// civilDate drops the clock and zone of t, keeping its local calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of d's ISO week.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / day)
}
