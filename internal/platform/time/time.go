// Package time contains time helpers shared across services
package time

import "time"

// Ptr returns a pointer to t, or nil when t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// DayStart truncates t to midnight UTC; the suppression day boundary
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day
func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}
