package time

import (
	"testing"
	"time"
)

func TestDayStart(t *testing.T) {
	in := time.Date(2026, 8, 20, 23, 59, 59, 999, time.FixedZone("plus2", 2*3600))
	got := DayStart(in)

	// 23:59 +02:00 is 21:59 UTC, still the 20th
	want := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DayStart = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 8, 20, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 8, 20, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Errorf("same calendar day expected")
	}
	if SameDay(b, c) {
		t.Errorf("midnight starts a new day")
	}
}

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Errorf("zero time must map to nil")
	}
	now := time.Now()
	if p := Ptr(now); p == nil || !p.Equal(now) {
		t.Errorf("Ptr(%v) = %v", now, p)
	}
}
