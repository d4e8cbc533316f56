package resolver

import (
	"github.com/julianstephens/salat/internal/constants"
	"github.com/julianstephens/salat/internal/models"
)

// Window describes the active prayer period at a given second of the day.
// When Loading is true no boundary set was usable: Current and Next carry
// no meaning and all times are zero.
type Window struct {
	Current         models.PrayerSlot
	Next            models.PrayerSlot
	CurrentBoundary int
	NextBoundary    int
	Remaining       int
	Loading         bool
}

// Loading is the window reported before boundaries are available.
func Loading() Window {
	return Window{Loading: true}
}

// Resolve finds the slot containing nowSeconds. Each slot owns
// [boundary(slot), boundary(next)); Night owns everything from its start
// through midnight up to Morning's start.
func Resolve(b models.DailyBoundaries, nowSeconds int) Window {
	if !b.Complete() || nowSeconds < 0 || nowSeconds >= constants.SecondsPerDay {
		return Loading()
	}

	for _, cur := range models.Slots {
		next := cur.Next()
		start, end := b.Get(cur), b.Get(next)

		var match bool
		if cur == models.Night {
			match = nowSeconds >= start || nowSeconds < end
		} else {
			match = nowSeconds >= start && nowSeconds < end
		}
		if !match {
			continue
		}

		return Window{
			Current:         cur,
			Next:            next,
			CurrentBoundary: start,
			NextBoundary:    end,
			Remaining:       remaining(end, nowSeconds),
		}
	}

	return Loading()
}

func remaining(next, now int) int {
	r := next - now
	if r < 0 {
		r += constants.SecondsPerDay
	}
	if r < 0 {
		return 0
	}
	return r
}
