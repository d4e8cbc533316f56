package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("empty timezone should map to Local, got %v, %v", loc, err)
	}
	loc, err = LoadLocation("UTC")
	if err != nil {
		t.Fatalf("failed to load UTC: %v", err)
	}
	if loc.String() != "UTC" {
		t.Errorf("expected UTC, got %s", loc)
	}
	if _, err := LoadLocation("Mars/Olympus"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestNowInTimezoneInvalid(t *testing.T) {
	if _, err := NowInTimezone("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestSecondOfDay(t *testing.T) {
	ts := time.Date(2025, 1, 1, 23, 3, 20, 0, time.UTC)
	if got := SecondOfDay(ts); got != 83000 {
		t.Errorf("SecondOfDay = %d, want 83000", got)
	}
	midnight := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := SecondOfDay(midnight); got != 0 {
		t.Errorf("SecondOfDay(midnight) = %d, want 0", got)
	}
}

func TestFormatDate(t *testing.T) {
	loc, err := LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	// 23:30 UTC is already the next day in Berlin.
	ts := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC).In(loc)
	if got := FormatDate(ts); got != "2025-03-10" {
		t.Errorf("FormatDate = %s, want 2025-03-10", got)
	}
}
