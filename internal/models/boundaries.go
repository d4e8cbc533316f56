package models

// Unset marks a boundary that has not been supplied yet.
const Unset = -1

// DailyBoundaries holds each slot's start as seconds since local midnight,
// indexed by PrayerSlot.
type DailyBoundaries [SlotCount]int

// NewBoundaries returns a set with every boundary unset.
func NewBoundaries() DailyBoundaries {
	var b DailyBoundaries
	for i := range b {
		b[i] = Unset
	}
	return b
}

func (b DailyBoundaries) Get(s PrayerSlot) int {
	return b[s]
}

// Complete reports whether every slot has a boundary.
func (b DailyBoundaries) Complete() bool {
	for _, v := range b {
		if v == Unset {
			return false
		}
	}
	return true
}
