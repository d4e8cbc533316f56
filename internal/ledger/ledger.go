// Package ledger is the status ledger service used by the CLI and TUI.
// It validates input, retries once after reopening a closed store, and
// keeps the first-write seeding rule in one place.
package ledger

import (
	"errors"
	"fmt"

	apperrors "github.com/julianstephens/salat/internal/errors"
	"github.com/julianstephens/salat/internal/logger"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/storage"
)

type Ledger struct {
	store storage.Provider
}

func New(store storage.Provider) *Ledger {
	return &Ledger{store: store}
}

// DayView holds the five statuses of one date. Slots without a row read
// as Open.
type DayView struct {
	Date     string
	Statuses [models.SlotCount]models.Status
	// Seeded is false when the date has never been written.
	Seeded bool
}

func (d DayView) Done() int {
	n := 0
	for _, st := range d.Statuses {
		if st == models.StatusDone {
			n++
		}
	}
	return n
}

func (l *Ledger) Upsert(date string, slot models.PrayerSlot, status models.Status) error {
	if err := validate(date, &slot, &status); err != nil {
		return err
	}
	err := l.retry("upsert", func() error {
		return l.store.UpsertStatus(date, slot, status)
	})
	if err == nil {
		logger.Debug("ledger upsert", "date", date, "slot", slot.String(), "status", string(status))
	}
	return err
}

func (l *Ledger) UpsertAll(date string, status models.Status) error {
	if err := validate(date, nil, &status); err != nil {
		return err
	}
	err := l.retry("upsert all", func() error {
		return l.store.UpsertAllStatuses(date, status)
	})
	if err == nil {
		logger.Debug("ledger upsert all", "date", date, "status", string(status))
	}
	return err
}

// Seed creates the five Open rows for date if it has none.
func (l *Ledger) Seed(date string) error {
	if err := validate(date, nil, nil); err != nil {
		return err
	}
	err := l.retry("seed", func() error {
		return l.store.SeedDay(date)
	})
	if err == nil {
		logger.Debug("ledger seed", "date", date)
	}
	return err
}

// Status reads one slot. A missing row is Open and nothing is written.
func (l *Ledger) Status(date string, slot models.PrayerSlot) (models.Status, error) {
	if err := validate(date, &slot, nil); err != nil {
		return "", err
	}
	status := models.StatusOpen
	err := l.retry("status", func() error {
		st, found, err := l.store.GetStatus(date, slot)
		if err != nil {
			return err
		}
		if found {
			status = st
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

func (l *Ledger) Day(date string) (DayView, error) {
	if err := validate(date, nil, nil); err != nil {
		return DayView{}, err
	}
	view := DayView{Date: date}
	for i := range view.Statuses {
		view.Statuses[i] = models.StatusOpen
	}

	err := l.retry("day", func() error {
		entries, err := l.store.GetDay(date)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.Slot.Valid() {
				view.Statuses[e.Slot] = e.Status
				view.Seeded = true
			}
		}
		return nil
	})
	if err != nil {
		return DayView{}, err
	}
	return view, nil
}

// retry runs fn and, if the store reports it is not open, loads it and
// runs fn one more time.
func (l *Ledger) retry(op string, fn func() error) error {
	err := fn()
	if errors.Is(err, apperrors.ErrStoreUnavailable) {
		logger.Warn("store unavailable, reloading", "op", op)
		if loadErr := l.store.Load(); loadErr != nil {
			return fmt.Errorf("%s: %w", op, loadErr)
		}
		err = fn()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func validate(date string, slot *models.PrayerSlot, status *models.Status) error {
	if _, err := models.ParseDate(date); err != nil {
		return err
	}
	if slot != nil && !slot.Valid() {
		return apperrors.NewParseError("slot", fmt.Sprint(int(*slot)), nil)
	}
	if status != nil && !status.Valid() {
		return apperrors.NewParseError("status", string(*status), nil)
	}
	return nil
}
