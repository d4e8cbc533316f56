package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/julianstephens/salat/internal/backup"
	"github.com/julianstephens/salat/internal/kaza"
	"github.com/julianstephens/salat/internal/ledger"
	"github.com/julianstephens/salat/internal/logger"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/stats"
	"github.com/julianstephens/salat/internal/storage"
	"github.com/julianstephens/salat/internal/storage/sqlite"
	"github.com/julianstephens/salat/internal/timings"
	"github.com/julianstephens/salat/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Timings timings.Fetcher
	// Clock defaults to time.Now; tests pin it.
	Clock func() time.Time
}

// PerformAutomaticBackup snapshots a SQLite store and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) Ledger() *ledger.Ledger {
	return ledger.New(c.Store)
}

func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// Now returns the current time in the configured timezone.
func (c *Context) Now(settings models.Settings) (time.Time, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().In(loc), nil
}

// ResolveDate validates date, or returns today when it is empty.
func (c *Context) ResolveDate(date string, settings models.Settings) (string, error) {
	if date == "" {
		now, err := c.Now(settings)
		if err != nil {
			return "", err
		}
		return utils.FormatDate(now), nil
	}
	if _, err := models.ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}

// ResolveRange fills an empty from with the statistics start date and an
// empty to with today.
func (c *Context) ResolveRange(from, to string, settings models.Settings) (models.DateRange, error) {
	if from == "" {
		from = settings.StatsStartDate
	}
	to, err := c.ResolveDate(to, settings)
	if err != nil {
		return models.DateRange{}, err
	}
	r := models.DateRange{From: from, To: to}
	if err := r.Validate(); err != nil {
		return models.DateRange{}, err
	}
	return r, nil
}

// FetchDay loads the boundaries for date from the timing provider.
func (c *Context) FetchDay(date string, settings models.Settings) (timings.Day, error) {
	if c.Timings == nil {
		return timings.Day{}, fmt.Errorf("no timing provider configured")
	}
	return c.Timings.Fetch(context.Background(), date, timings.LocationFromSettings(settings))
}

// KazaResult reports one backfill run.
type KazaResult struct {
	Range       models.DateRange
	Dates       []string
	Outstanding int
	// Clamped is set when the requested count exceeded Outstanding.
	Clamped bool
}

// Kaza clamps count to the open rows of slot in [from, until] and runs the
// backfill. An empty until means today. An empty from starts the walk at
// the oldest open row instead of the statistics start date, so untouched
// years are not seeded.
func (c *Context) Kaza(slot models.PrayerSlot, count int, from, until string) (KazaResult, error) {
	settings, err := c.Settings()
	if err != nil {
		return KazaResult{}, err
	}
	r, err := c.ResolveRange(from, until, settings)
	if err != nil {
		return KazaResult{}, err
	}
	res := KazaResult{Range: r, Dates: []string{}}

	summary, err := stats.NewAggregator(c.Store).Summarize(r)
	if err != nil {
		return res, err
	}
	res.Outstanding = summary.Outstanding(slot)
	if count > res.Outstanding {
		count = res.Outstanding
		res.Clamped = true
	}
	if count <= 0 {
		return res, nil
	}

	start := r.From
	if from == "" {
		if start, err = c.firstOpen(r, slot); err != nil {
			return res, err
		}
	}

	dates, err := kaza.NewEngine(c.Ledger()).Backfill(kaza.Request{
		Slot:  slot,
		Start: start,
		Count: count,
		Until: r.To,
	})
	if dates != nil {
		res.Dates = dates
	}
	return res, err
}

func (c *Context) firstOpen(r models.DateRange, slot models.PrayerSlot) (string, error) {
	entries, err := c.Store.ListEntries(r.From, r.To)
	if err != nil {
		return "", fmt.Errorf("failed to list ledger: %w", err)
	}
	for _, e := range entries {
		if e.Slot == slot && e.Status == models.StatusOpen {
			return e.Date, nil
		}
	}
	return r.From, nil
}

var (
	doneColor  = color.New(color.FgGreen)
	openColor  = color.New(color.FgRed)
	BoldColor  = color.New(color.Bold)
	FaintColor = color.New(color.Faint)
)

// StatusLabel renders a status for terminal output.
func StatusLabel(st models.Status) string {
	if st == models.StatusDone {
		return doneColor.Sprint("✓ " + st.Label())
	}
	return openColor.Sprint("✗ " + st.Label())
}

// StatusMark renders a status as a single coloured glyph.
func StatusMark(st models.Status) string {
	if st == models.StatusDone {
		return doneColor.Sprint("✓")
	}
	return openColor.Sprint("·")
}
