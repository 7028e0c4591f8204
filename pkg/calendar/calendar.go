// Package calendar provides local-calendar day arithmetic. All computations
// operate on whole days in the local time zone so results stay stable across
// daylight-saving transitions.
package calendar

import (
	"fmt"
	"time"
)

const (
	layoutISO      = "2006-01-02"
	layoutFriendly = "Jan 2"
)

// Day is a calendar date pinned to local midnight.
type Day struct {
	time.Time
}

// Normalize strips the time-of-day from an instant using the local calendar.
func Normalize(instant time.Time) Day {
	local := instant.Local()
	return Day{time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)}
}

// Today is shorthand for Normalize(now).
func Today(now time.Time) Day {
	return Normalize(now)
}

// ParseISO parses a YYYY-MM-DD string into a Day at local midnight.
func ParseISO(s string) (Day, error) {
	t, err := time.ParseInLocation(layoutISO, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("calendar: parse %q: %w", s, err)
	}
	return Day{t}, nil
}

// ISO renders the day as YYYY-MM-DD.
func (d Day) ISO() string {
	return d.Format(layoutISO)
}

// Friendly renders the day as a short human date, e.g. "Oct 11".
func (d Day) Friendly() string {
	return d.Format(layoutFriendly)
}

// AddDays returns the day n calendar days away. Negative n walks backward.
func (d Day) AddDays(n int) Day {
	return Normalize(d.AddDate(0, 0, n))
}

// StartOfWeek returns the Monday on or before d.
func (d Day) StartOfWeek() Day {
	offset := (int(d.Weekday()) + 6) % 7 // Mon=0
	return d.AddDays(-offset)
}

// EndOfWeek returns the Sunday on or after d.
func (d Day) EndOfWeek() Day {
	return d.StartOfWeek().AddDays(6)
}

// DaysBetween returns the signed day count b - a at calendar-day granularity.
func DaysBetween(a, b Day) int {
	// Re-anchor both days in UTC so the division is not skewed by the two
	// 23h/25h days a DST transition produces locally.
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
