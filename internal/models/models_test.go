package models

import (
	"encoding/json"
	"testing"

	apperrors "github.com/julianstephens/salat/internal/errors"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input string
		want  PrayerSlot
	}{
		{"Morning", Morning},
		{"noon", Noon},
		{"  AFTERNOON ", Afternoon},
		{"Abend", Evening},
		{"nacht", Night},
		{"Fajr", Morning},
		{"dhuhr", Noon},
		{"Asr", Afternoon},
		{"Maghrib", Evening},
		{"Isha", Night},
		{"Nachmittag", Afternoon},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSlot(tt.input)
			if err != nil {
				t.Fatalf("ParseSlot(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSlot(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSlotInvalid(t *testing.T) {
	_, err := ParseSlot("Sunrise")
	if !apperrors.IsParseError(err) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestSlotNextWraps(t *testing.T) {
	want := []PrayerSlot{Noon, Afternoon, Evening, Night, Morning}
	for i, s := range Slots {
		if got := s.Next(); got != want[i] {
			t.Errorf("%v.Next() = %v, want %v", s, got, want[i])
		}
	}
}

func TestSlotJSON(t *testing.T) {
	entry := LedgerEntry{Date: "2025-01-01", Slot: Evening, Status: StatusDone}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("failed to marshal entry: %v", err)
	}

	var decoded LedgerEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal entry: %v", err)
	}
	if decoded.Slot != Evening {
		t.Errorf("expected Evening, got %v", decoded.Slot)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"open", StatusOpen},
		{"Done", StatusDone},
		{"offen", StatusOpen},
		{"erledigt", StatusDone},
		{"Nicht verrichtet", StatusOpen},
		{"verrichtet", StatusDone},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if err != nil {
			t.Fatalf("ParseStatus(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	// Cancel is a UI action, never a stored status.
	if _, err := ParseStatus("Abbrechen"); err == nil {
		t.Error("expected cancel to be rejected as a status")
	}
}

func TestDateRangeValidate(t *testing.T) {
	if err := (DateRange{From: "2025-01-01", To: "2025-01-31"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (DateRange{From: "2025-01-01", To: "2025-01-01"}).Validate(); err != nil {
		t.Errorf("single-day range should be valid: %v", err)
	}
	if err := (DateRange{From: "2025-02-01", To: "2025-01-01"}).Validate(); err == nil {
		t.Error("expected error for reversed range")
	}
	if err := (DateRange{From: "2025-02-30", To: "2025-03-01"}).Validate(); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-02-28", 1)
	if err != nil {
		t.Fatalf("AddDays returned error: %v", err)
	}
	if got != "2024-02-29" {
		t.Errorf("AddDays leap day = %s", got)
	}
	got, _ = AddDays("2024-12-31", 1)
	if got != "2025-01-01" {
		t.Errorf("AddDays year wrap = %s", got)
	}
}

func TestBoundaries(t *testing.T) {
	b := NewBoundaries()
	if b.Complete() {
		t.Error("fresh boundaries should not be complete")
	}
	for i := range b {
		b[i] = i * 3600
	}
	if !b.Complete() {
		t.Error("filled boundaries should be complete")
	}
}

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings invalid: %v", err)
	}
	s := DefaultSettings()
	s.Latitude = 91
	if err := s.Validate(); err == nil {
		t.Error("expected latitude error")
	}
}
