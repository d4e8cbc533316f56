package storage

import (
	"database/sql"

	"github.com/julianstephens/salat/internal/migration"
	"github.com/julianstephens/salat/internal/models"
)

// Provider is the single ledger store handle. Every method other than the
// lifecycle ones returns errors.ErrStoreUnavailable until Init or Load has
// succeeded.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Ledger writes. The first write touching a date seeds all five slots
	// as open before applying itself.
	SeedDay(date string) error
	UpsertStatus(date string, slot models.PrayerSlot, status models.Status) error
	UpsertAllStatuses(date string, status models.Status) error
	// ImportEntry copies a row verbatim, keeping its id and timestamps.
	ImportEntry(models.LedgerEntry) error

	// Ledger reads. None of these seed.
	GetStatus(date string, slot models.PrayerSlot) (models.Status, bool, error)
	GetDay(date string) ([]models.LedgerEntry, error)
	ListEntries(from, to string) ([]models.LedgerEntry, error)
	CountByStatus(from, to string, status models.Status) (map[models.PrayerSlot]int, error)
	// DuplicateCount reports (date, slot) pairs holding more than one row.
	DuplicateCount() (int, error)

	// Wipe deletes every ledger row. Settings are kept.
	Wipe() error

	// Utils
	GetConfigPath() string
}

// Migratable is implemented by SQL backends that can expose their schema
// runner to the migrate and doctor commands.
type Migratable interface {
	GetDB() *sql.DB
	Runner() (*migration.Runner, error)
}
