package kaza

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/salat/internal/ledger"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/storage/sqlite"
)

func setupTestEngine(t *testing.T) (*Engine, *ledger.Ledger, *sqlite.Store, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	l := ledger.New(store)
	return NewEngine(l), l, store, func() { store.Close() }
}

func TestBackfillSkipsDoneDays(t *testing.T) {
	e, l, _, cleanup := setupTestEngine(t)
	defer cleanup()

	// 01 and 03 are already performed, so 02, 04 and 05 are open.
	for _, d := range []string{"2025-01-01", "2025-01-03"} {
		if err := l.Upsert(d, models.Morning, models.StatusDone); err != nil {
			t.Fatal(err)
		}
	}

	got, err := e.Backfill(Request{Slot: models.Morning, Start: "2025-01-01", Count: 3})
	if err != nil {
		t.Fatalf("Backfill failed: %v", err)
	}
	want := []string{"2025-01-02", "2025-01-04", "2025-01-05"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Backfill() = %v, want %v", got, want)
	}

	for _, d := range want {
		st, err := l.Status(d, models.Morning)
		if err != nil {
			t.Fatal(err)
		}
		if st != models.StatusDone {
			t.Errorf("%s: got %s, want done", d, st)
		}
	}
	// Other slots of touched days stay open.
	if st, _ := l.Status("2025-01-02", models.Noon); st != models.StatusOpen {
		t.Errorf("Noon on 2025-01-02 = %s, want open", st)
	}
}

func TestBackfillZeroCountWritesNothing(t *testing.T) {
	e, _, store, cleanup := setupTestEngine(t)
	defer cleanup()

	for _, n := range []int{0, -4} {
		got, err := e.Backfill(Request{Slot: models.Night, Start: "2025-01-01", Count: n})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("count %d: expected no dates, got %v", n, got)
		}
	}

	entries, err := store.ListEntries("2025-01-01", "2025-12-31")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no rows written, found %d", len(entries))
	}
}

func TestBackfillStopsAtUntil(t *testing.T) {
	e, _, store, cleanup := setupTestEngine(t)
	defer cleanup()

	got, err := e.Backfill(Request{Slot: models.Evening, Start: "2025-01-30", Count: 10, Until: "2025-02-01"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2025-01-30", "2025-01-31", "2025-02-01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Backfill() = %v, want %v", got, want)
	}

	entries, err := store.GetDay("2025-02-02")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Error("walk went past Until")
	}
}

func TestBackfillResumes(t *testing.T) {
	e, _, _, cleanup := setupTestEngine(t)
	defer cleanup()

	first, err := e.Backfill(Request{Slot: models.Noon, Start: "2025-06-01", Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Backfill(Request{Slot: models.Noon, Start: "2025-06-01", Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, []string{"2025-06-01", "2025-06-02"}) {
		t.Errorf("first run = %v", first)
	}
	if !reflect.DeepEqual(second, []string{"2025-06-03", "2025-06-04"}) {
		t.Errorf("second run = %v", second)
	}
}

func TestBackfillRejectsBadRequest(t *testing.T) {
	e, _, _, cleanup := setupTestEngine(t)
	defer cleanup()

	bad := []Request{
		{Slot: models.PrayerSlot(7), Start: "2025-01-01", Count: 1},
		{Slot: models.Morning, Start: "not-a-date", Count: 1},
		{Slot: models.Morning, Start: "2025-02-01", Until: "2025-01-01", Count: 1},
	}
	for _, req := range bad {
		if _, err := e.Backfill(req); err == nil {
			t.Errorf("expected error for %+v", req)
		}
	}
}
