// Package kaza marks the oldest outstanding prayers of one slot as made
// up, walking forward from a start date.
package kaza

import (
	"fmt"

	"github.com/julianstephens/salat/internal/logger"
	"github.com/julianstephens/salat/internal/models"
)

// Ledger is the subset of the status ledger the engine writes through.
// *ledger.Ledger satisfies it.
type Ledger interface {
	Seed(date string) error
	Status(date string, slot models.PrayerSlot) (models.Status, error)
	Upsert(date string, slot models.PrayerSlot, status models.Status) error
}

type Request struct {
	Slot  models.PrayerSlot
	Start string
	Count int
	// Until bounds the walk, inclusive. Empty means no bound and the
	// caller must keep Count within the outstanding total.
	Until string
}

func (r Request) validate() error {
	if !r.Slot.Valid() {
		return fmt.Errorf("invalid slot %d", int(r.Slot))
	}
	if _, err := models.ParseDate(r.Start); err != nil {
		return err
	}
	if r.Until != "" {
		if err := (models.DateRange{From: r.Start, To: r.Until}).Validate(); err != nil {
			return err
		}
	}
	return nil
}

type Engine struct {
	ledger Ledger
}

func NewEngine(l Ledger) *Engine {
	return &Engine{ledger: l}
}

// Backfill marks up to Count open occurrences of the slot as done and
// returns their dates in ascending order. Each day is committed on its
// own, so a failed run can be resumed by running it again.
func (e *Engine) Backfill(req Request) ([]string, error) {
	if req.Count <= 0 {
		return []string{}, nil
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	touched := make([]string, 0, req.Count)
	date := req.Start
	for len(touched) < req.Count {
		if req.Until != "" && date > req.Until {
			break
		}

		if err := e.ledger.Seed(date); err != nil {
			return touched, fmt.Errorf("seeding %s: %w", date, err)
		}
		status, err := e.ledger.Status(date, req.Slot)
		if err != nil {
			return touched, fmt.Errorf("reading %s %s: %w", date, req.Slot, err)
		}
		if status == models.StatusOpen {
			if err := e.ledger.Upsert(date, req.Slot, models.StatusDone); err != nil {
				return touched, fmt.Errorf("marking %s %s: %w", date, req.Slot, err)
			}
			touched = append(touched, date)
		}

		next, err := models.AddDays(date, 1)
		if err != nil {
			return touched, err
		}
		date = next
	}

	logger.Info("kaza backfill", "slot", req.Slot.String(), "requested", req.Count, "marked", len(touched))
	return touched, nil
}
