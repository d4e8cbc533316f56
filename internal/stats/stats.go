package stats

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/salat/internal/models"
)

// Counter is the read side of the store the aggregator needs. It must not
// seed any rows.
type Counter interface {
	CountByStatus(from, to string, status models.Status) (map[models.PrayerSlot]int, error)
}

// Counts maps a slot to its row count. Slots without rows are absent.
type Counts map[models.PrayerSlot]int

func (c Counts) Get(slot models.PrayerSlot) int {
	return c[slot]
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

type Aggregator struct {
	store Counter
}

func NewAggregator(store Counter) *Aggregator {
	return &Aggregator{store: store}
}

func (a *Aggregator) CountByStatus(r models.DateRange, status models.Status) (Counts, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	counts, err := a.store.CountByStatus(r.From, r.To, status)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s entries: %w", status, err)
	}
	return Counts(counts), nil
}

// Summary holds the done and open counts of one date range.
type Summary struct {
	Range models.DateRange
	Done  Counts
	Open  Counts
}

func (a *Aggregator) Summarize(r models.DateRange) (Summary, error) {
	done, err := a.CountByStatus(r, models.StatusDone)
	if err != nil {
		return Summary{}, err
	}
	open, err := a.CountByStatus(r, models.StatusOpen)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Range: r, Done: done, Open: open}, nil
}

// Progress is the share of done rows. NoData is set when the range holds
// no rows at all; Percent is zero then.
type Progress struct {
	Percent decimal.Decimal
	NoData  bool
}

// String renders the percentage with two decimals.
func (p Progress) String() string {
	if p.NoData {
		return "-"
	}
	return p.Percent.StringFixed(2) + "%"
}

func (s Summary) Progress() Progress {
	done := s.Done.Total()
	total := done + s.Open.Total()
	if total == 0 {
		return Progress{Percent: decimal.Zero, NoData: true}
	}
	pct := decimal.NewFromInt(int64(done)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
	return Progress{Percent: pct}
}

// ReferenceMax is the largest per-slot bar, used to scale every bar.
func (s Summary) ReferenceMax() int {
	maxDone, maxTotal := 0, 0
	for _, slot := range models.Slots {
		d := s.Done.Get(slot)
		if d > maxDone {
			maxDone = d
		}
		if t := d + s.Open.Get(slot); t > maxTotal {
			maxTotal = t
		}
	}
	return max(maxDone, maxTotal)
}

// Outstanding is the number of open rows for slot in the range.
func (s Summary) Outstanding(slot models.PrayerSlot) int {
	return s.Open.Get(slot)
}

// BarWidth scales value into paletteWidth columns relative to
// referenceMax, rounding down.
func BarWidth(paletteWidth, value, referenceMax int) int {
	if referenceMax <= 0 || paletteWidth <= 0 || value <= 0 {
		return 0
	}
	w := decimal.NewFromInt(int64(paletteWidth)).
		Mul(decimal.NewFromInt(int64(value))).
		Div(decimal.NewFromInt(int64(referenceMax))).
		Floor()
	return int(w.IntPart())
}
