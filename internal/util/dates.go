package util

import "time"

// MonthStart returns midnight on the first day of t's month, keeping t's
// location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
