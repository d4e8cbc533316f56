package models

import (
	"strings"

	apperrors "github.com/julianstephens/salat/internal/errors"
)

// PrayerSlot is one of the five daily prayer periods. The order is fixed:
// Morning < Noon < Afternoon < Evening < Night, and Night wraps to the
// next day's Morning.
type PrayerSlot int

const (
	Morning PrayerSlot = iota
	Noon
	Afternoon
	Evening
	Night
)

// SlotCount is the number of daily slots.
const SlotCount = 5

// Slots lists every slot in canonical order.
var Slots = [SlotCount]PrayerSlot{Morning, Noon, Afternoon, Evening, Night}

var slotNames = [SlotCount]string{"Morning", "Noon", "Afternoon", "Evening", "Night"}

var displayNames = [SlotCount]string{"Morgen", "Mittag", "Nachmittag", "Abend", "Nacht"}

var providerNames = [SlotCount]string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// String returns the canonical storage name.
func (s PrayerSlot) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return slotNames[s]
}

// DisplayName returns the German label used on screen.
func (s PrayerSlot) DisplayName() string {
	if !s.Valid() {
		return "?"
	}
	return displayNames[s]
}

// ProviderName returns the key the timing provider uses for this slot.
func (s PrayerSlot) ProviderName() string {
	if !s.Valid() {
		return ""
	}
	return providerNames[s]
}

func (s PrayerSlot) Valid() bool {
	return s >= Morning && s <= Night
}

// Next returns the following slot, wrapping Night to Morning.
func (s PrayerSlot) Next() PrayerSlot {
	return (s + 1) % SlotCount
}

// ParseSlot translates any accepted name into a PrayerSlot. Canonical,
// display and provider vocabularies are accepted case-insensitively; this
// is the only place names are mapped.
func ParseSlot(name string) (PrayerSlot, error) {
	n := strings.TrimSpace(name)
	for i := 0; i < SlotCount; i++ {
		if strings.EqualFold(n, slotNames[i]) ||
			strings.EqualFold(n, displayNames[i]) ||
			strings.EqualFold(n, providerNames[i]) {
			return PrayerSlot(i), nil
		}
	}
	return 0, apperrors.NewParseError("slot", name, nil)
}

// MarshalText stores slots by canonical name.
func (s PrayerSlot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PrayerSlot) UnmarshalText(b []byte) error {
	v, err := ParseSlot(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
