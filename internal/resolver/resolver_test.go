package resolver

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/julianstephens/salat/internal/models"
)

func boundaries(vals ...int) models.DailyBoundaries {
	var b models.DailyBoundaries
	copy(b[:], vals)
	return b
}

func TestResolveTable(t *testing.T) {
	// 05:00, 13:00, 16:30, 19:45, 21:30
	b := boundaries(18000, 46800, 59400, 71100, 77400)

	tests := []struct {
		name      string
		now       int
		current   models.PrayerSlot
		next      models.PrayerSlot
		remaining int
	}{
		{"exactly morning start", 18000, models.Morning, models.Noon, 28800},
		{"mid morning", 30000, models.Morning, models.Noon, 16800},
		{"noon", 46800, models.Noon, models.Afternoon, 12600},
		{"just before afternoon", 59399, models.Noon, models.Afternoon, 1},
		{"evening", 71100, models.Evening, models.Night, 6300},
		{"night before midnight", 80000, models.Night, models.Morning, 24400},
		{"midnight", 0, models.Night, models.Morning, 18000},
		{"night after midnight", 17999, models.Night, models.Morning, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Resolve(b, tt.now)
			if w.Loading {
				t.Fatal("unexpected loading window")
			}
			if w.Current != tt.current || w.Next != tt.next {
				t.Errorf("got %v -> %v, want %v -> %v", w.Current, w.Next, tt.current, tt.next)
			}
			if w.Remaining != tt.remaining {
				t.Errorf("remaining = %d, want %d", w.Remaining, tt.remaining)
			}
		})
	}
}

func TestResolveNightWrap(t *testing.T) {
	b := boundaries(18000, 46800, 59400, 71100, 82800)

	w := Resolve(b, 83000)
	if w.Current != models.Night || w.Next != models.Morning {
		t.Fatalf("got %v -> %v, want Night -> Morning", w.Current, w.Next)
	}
	if w.Remaining != 21400 {
		t.Errorf("remaining = %d, want 21400", w.Remaining)
	}
	if w.CurrentBoundary != 82800 || w.NextBoundary != 18000 {
		t.Errorf("boundaries = %d/%d", w.CurrentBoundary, w.NextBoundary)
	}
}

func TestResolveLoading(t *testing.T) {
	if w := Resolve(models.NewBoundaries(), 3600); !w.Loading {
		t.Error("unset boundaries must resolve to loading, not Night")
	}

	partial := boundaries(18000, 46800, 59400, 71100, 82800)
	partial[models.Evening] = models.Unset
	if w := Resolve(partial, 3600); !w.Loading {
		t.Error("partially unset boundaries must resolve to loading")
	}

	full := boundaries(18000, 46800, 59400, 71100, 82800)
	if w := Resolve(full, -1); !w.Loading {
		t.Error("negative time must resolve to loading")
	}
	if w := Resolve(full, 86400); !w.Loading {
		t.Error("time past end of day must resolve to loading")
	}

	w := Loading()
	if w.Remaining != 0 || w.CurrentBoundary != 0 || w.NextBoundary != 0 {
		t.Errorf("loading window should carry zero times: %+v", w)
	}
}

func TestResolveEqualBoundaries(t *testing.T) {
	// Degenerate provider data: every interval but Night's is empty.
	b := boundaries(43200, 43200, 43200, 43200, 43200)
	for _, now := range []int{0, 43199, 43200, 86399} {
		w := Resolve(b, now)
		if w.Loading || w.Current != models.Night {
			t.Errorf("now %d: got %+v, want Night", now, w)
		}
	}
	if w := Resolve(b, 43200); w.Remaining != 0 {
		t.Errorf("remaining at the shared boundary = %d, want 0", w.Remaining)
	}
}

func TestResolveExactlyOneSlotForAllTimes(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		vals := make([]int, 5)
		for j := range vals {
			vals[j] = r.Intn(86400)
		}
		sort.Ints(vals)
		b := boundaries(vals...)

		for now := 0; now < 86400; now += 97 {
			w := Resolve(b, now)
			if w.Loading {
				t.Fatalf("boundaries %v now %d: unexpected loading", vals, now)
			}

			matches := 0
			for _, s := range models.Slots {
				start, end := b.Get(s), b.Get(s.Next())
				if s == models.Night {
					if now >= start || now < end {
						matches++
					}
				} else if now >= start && now < end {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("boundaries %v now %d: %d slots claim the time", vals, now, matches)
			}
			if w.Remaining < 0 || w.Remaining >= 86400 {
				t.Fatalf("boundaries %v now %d: remaining %d out of range", vals, now, w.Remaining)
			}
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	b := boundaries(18000, 46800, 59400, 71100, 82800)
	first := Resolve(b, 50000)
	for i := 0; i < 5; i++ {
		if got := Resolve(b, 50000); got != first {
			t.Fatalf("repeated resolve differs: %+v vs %+v", got, first)
		}
	}
}
