package prayers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/salat/internal/cli"
	apperrors "github.com/julianstephens/salat/internal/errors"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/storage/sqlite"
	"github.com/julianstephens/salat/internal/timings"
)

type fakeFetcher struct {
	err   error
	dates []string
}

func (f *fakeFetcher) Fetch(_ context.Context, date string, _ timings.Location) (timings.Day, error) {
	f.dates = append(f.dates, date)
	if f.err != nil {
		return timings.Day{}, f.err
	}
	return timings.Day{
		Date:       date,
		Boundaries: models.DailyBoundaries{18000, 45000, 55000, 63000, 82800},
		MethodName: "test method",
	}, nil
}

func setupTestContext(t *testing.T, fetcher *fakeFetcher) (*cli.Context, *sqlite.Store, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	ctx := &cli.Context{
		Store:   store,
		Timings: fetcher,
		Clock:   func() time.Time { return time.Date(2025, 1, 15, 23, 3, 20, 0, berlin) },
	}
	return ctx, store, func() { store.Close() }
}

func TestMarkCmd(t *testing.T) {
	ctx, store, cleanup := setupTestContext(t, &fakeFetcher{})
	defer cleanup()

	if err := (&MarkCmd{Slot: "Fajr", Status: "done"}).Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	st, found, err := store.GetStatus("2025-01-15", models.Morning)
	if err != nil || !found || st != models.StatusDone {
		t.Errorf("GetStatus = %s, %v, %v", st, found, err)
	}
	entries, _ := store.GetDay("2025-01-15")
	if len(entries) != models.SlotCount {
		t.Errorf("expected seeded day, got %d rows", len(entries))
	}
}

func TestMarkCmdExplicitDateAndAliases(t *testing.T) {
	ctx, store, cleanup := setupTestContext(t, &fakeFetcher{})
	defer cleanup()

	if err := (&MarkCmd{Slot: "abend", Status: "verrichtet", Date: "2024-02-29"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	st, _, _ := store.GetStatus("2024-02-29", models.Evening)
	if st != models.StatusDone {
		t.Errorf("got %s, want done", st)
	}
}

func TestMarkCmdRejectsBadInput(t *testing.T) {
	ctx, _, cleanup := setupTestContext(t, &fakeFetcher{})
	defer cleanup()

	bad := []MarkCmd{
		{Slot: "Brunch", Status: "done"},
		{Slot: "Noon", Status: "sort of"},
		{Slot: "Noon", Status: "done", Date: "2025-02-30"},
	}
	for _, cmd := range bad {
		if err := cmd.Run(ctx); !apperrors.IsParseError(err) {
			t.Errorf("%+v: expected ParseError, got %v", cmd, err)
		}
	}
}

func TestMarkAllCmd(t *testing.T) {
	ctx, store, cleanup := setupTestContext(t, &fakeFetcher{})
	defer cleanup()

	if err := (&MarkAllCmd{Status: "done", Date: "2025-03-10"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	counts, err := store.CountByStatus("2025-03-10", "2025-03-10", models.StatusDone)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != models.SlotCount {
		t.Errorf("expected five done slots, got %v", counts)
	}
}

func TestDayCmd(t *testing.T) {
	ctx, _, cleanup := setupTestContext(t, &fakeFetcher{})
	defer cleanup()

	if err := (&DayCmd{}).Run(ctx); err != nil {
		t.Errorf("day failed: %v", err)
	}
	if err := (&DayCmd{Date: "yesterday"}).Run(ctx); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestNowCmd(t *testing.T) {
	fetcher := &fakeFetcher{}
	ctx, _, cleanup := setupTestContext(t, fetcher)
	defer cleanup()

	if err := (&NowCmd{}).Run(ctx); err != nil {
		t.Fatalf("now failed: %v", err)
	}
	if len(fetcher.dates) != 1 || fetcher.dates[0] != "2025-01-15" {
		t.Errorf("fetched %v, want today in configured timezone", fetcher.dates)
	}
}

func TestNowCmdProviderDown(t *testing.T) {
	ctx, _, cleanup := setupTestContext(t, &fakeFetcher{err: apperrors.ErrProviderUnavailable})
	defer cleanup()

	err := (&NowCmd{}).Run(ctx)
	if !errors.Is(err, apperrors.ErrProviderUnavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestTimesCmd(t *testing.T) {
	fetcher := &fakeFetcher{}
	ctx, _, cleanup := setupTestContext(t, fetcher)
	defer cleanup()

	if err := (&TimesCmd{Date: "2025-06-01"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if fetcher.dates[0] != "2025-06-01" {
		t.Errorf("fetched %v", fetcher.dates)
	}
}

func TestMethodsAndQibla(t *testing.T) {
	ctx, _, cleanup := setupTestContext(t, &fakeFetcher{})
	defer cleanup()

	if err := (&MethodsCmd{}).Run(ctx); err != nil {
		t.Errorf("methods failed: %v", err)
	}
	if err := (&QiblaCmd{}).Run(ctx); err != nil {
		t.Errorf("qibla failed: %v", err)
	}
}
