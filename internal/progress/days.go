// Package progress derives streaks, weekly frequency status, aggregate
// statistics and gamification state from a user's habits and completions.
//
// Every function here is pure: callers pass the collections and the reference
// date, nothing reads a clock or touches storage.
package progress

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD or RFC3339")

// Day truncates t to its calendar date. Time-of-day and zone are dropped, the
// Y/M/D seen in t's own location is kept.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay accepts plain dates as well as full ISO-8601 timestamps.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// DaysBetween returns how many calendar days lie from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	return int(dayNumber(b) - dayNumber(a))
}

func SameDay(a, b time.Time) bool {
	return dayNumber(a) == dayNumber(b)
}

func dayNumber(t time.Time) int64 {
	return Day(t).Unix() / 86400
}
