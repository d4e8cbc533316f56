package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/salat/internal/constants"
	apperrors "github.com/julianstephens/salat/internal/errors"
)

// LedgerEntry is one (date, slot) row. At most one exists per pair.
type LedgerEntry struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"` // YYYY-MM-DD format
	Slot      PrayerSlot `json:"slot"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DateRange is inclusive on both ends.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r DateRange) Validate() error {
	from, err := ParseDate(r.From)
	if err != nil {
		return err
	}
	to, err := ParseDate(r.To)
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fmt.Errorf("date range end %s is before start %s", r.To, r.From)
	}
	return nil
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, apperrors.NewParseError("date", date, err)
	}
	return t, nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat), nil
}
