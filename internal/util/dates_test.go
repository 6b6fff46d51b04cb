package util

import (
	"testing"
	"time"
)

func TestMonthStart(t *testing.T) {
	start := MonthStart(time.Date(2024, 2, 20, 15, 30, 0, 0, time.UTC))

	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("MonthStart = %v, want %v", start, want)
	}
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)
	c := time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)

	if !SameMonth(a, b) {
		t.Error("expected dates in the same month to match")
	}
	if SameMonth(a, c) {
		t.Error("same month of a different year must not match")
	}
}
