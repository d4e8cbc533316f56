package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/salat/internal/models"
)

const upsertStatusSQL = `
	INSERT INTO prayer_ledger (id, date, prayer_time, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $5)
	ON CONFLICT (date, prayer_time) DO UPDATE SET
		status = EXCLUDED.status,
		updated_at = EXCLUDED.updated_at`

// seedTx inserts five open rows for date when it has none.
func seedTx(tx *sql.Tx, date string) (bool, error) {
	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM prayer_ledger WHERE date = $1", date).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count rows for %s: %w", date, err)
	}
	if count > 0 {
		return false, nil
	}

	ts := time.Now().UTC()
	for _, slot := range models.Slots {
		_, err := tx.Exec(`
			INSERT INTO prayer_ledger (id, date, prayer_time, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (date, prayer_time) DO NOTHING`,
			uuid.New().String(), date, slot.String(), string(models.StatusOpen), ts)
		if err != nil {
			return false, fmt.Errorf("failed to seed %s %s: %w", date, slot, err)
		}
	}
	return true, nil
}

func (s *Store) SeedDay(date string) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := seedTx(tx, date); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) UpsertStatus(date string, slot models.PrayerSlot, status models.Status) error {
	return s.upsert(date, []models.PrayerSlot{slot}, status)
}

func (s *Store) UpsertAllStatuses(date string, status models.Status) error {
	return s.upsert(date, models.Slots[:], status)
}

func (s *Store) upsert(date string, slots []models.PrayerSlot, status models.Status) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := seedTx(tx, date); err != nil {
		return err
	}

	ts := time.Now().UTC()
	for _, slot := range slots {
		if _, err := tx.Exec(upsertStatusSQL, uuid.New().String(), date, slot.String(), string(status), ts); err != nil {
			return fmt.Errorf("failed to upsert %s %s: %w", date, slot, err)
		}
	}
	return tx.Commit()
}

func (s *Store) ImportEntry(e models.LedgerEntry) error {
	if err := s.ready(); err != nil {
		return err
	}

	id := e.ID
	if id == "" {
		id = uuid.New().String()
	}
	_, err := s.db.Exec(`
		INSERT INTO prayer_ledger (id, date, prayer_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date, prayer_time) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		id, e.Date, e.Slot.String(), string(e.Status), e.CreatedAt.UTC(), e.UpdatedAt.UTC())
	return err
}

func (s *Store) GetStatus(date string, slot models.PrayerSlot) (models.Status, bool, error) {
	if err := s.ready(); err != nil {
		return "", false, err
	}

	var status string
	err := s.db.QueryRow("SELECT status FROM prayer_ledger WHERE date = $1 AND prayer_time = $2", date, slot.String()).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StatusOpen, false, nil
		}
		return "", false, err
	}
	return models.Status(status), true, nil
}

func (s *Store) GetDay(date string) ([]models.LedgerEntry, error) {
	return s.ListEntries(date, date)
}

func (s *Store) ListEntries(from, to string) ([]models.LedgerEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, date, prayer_time, status, created_at, updated_at
		FROM prayer_ledger
		WHERE date >= $1 AND date <= $2
		ORDER BY date, CASE prayer_time
			WHEN 'Morning' THEN 0
			WHEN 'Noon' THEN 1
			WHEN 'Afternoon' THEN 2
			WHEN 'Evening' THEN 3
			ELSE 4 END`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		var slot, status string
		if err := rows.Scan(&e.ID, &e.Date, &slot, &status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if e.Slot, err = models.ParseSlot(slot); err != nil {
			return nil, err
		}
		e.Status = models.Status(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) CountByStatus(from, to string, status models.Status) (map[models.PrayerSlot]int, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT prayer_time, COUNT(*)
		FROM prayer_ledger
		WHERE status = $1 AND date >= $2 AND date <= $3
		GROUP BY prayer_time`, string(status), from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.PrayerSlot]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		slot, err := models.ParseSlot(name)
		if err != nil {
			return nil, err
		}
		counts[slot] = n
	}
	return counts, rows.Err()
}

func (s *Store) DuplicateCount() (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM (
			SELECT date, prayer_time FROM prayer_ledger
			GROUP BY date, prayer_time HAVING COUNT(*) > 1
		) AS dup`).Scan(&n)
	return n, err
}

func (s *Store) Wipe() error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM prayer_ledger")
	return err
}
