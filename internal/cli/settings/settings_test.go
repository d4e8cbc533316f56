package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/constants"
	"github.com/julianstephens/salat/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{Store: store}
	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}
	return ctx, cleanup
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Errorf("settings without flags failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	lat, lon := 51.5072, -0.1276
	method := 3
	tz := "Europe/London"
	start := "2020-01-01"
	width := 30

	cmd := &SettingsCmd{
		Latitude:       &lat,
		Longitude:      &lon,
		Method:         &method,
		Timezone:       &tz,
		StatsStartDate: &start,
		BarWidth:       &width,
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got.Latitude != lat || got.Longitude != lon {
		t.Errorf("location = (%v, %v), want (%v, %v)", got.Latitude, got.Longitude, lat, lon)
	}
	if got.Method != method {
		t.Errorf("method = %d, want %d", got.Method, method)
	}
	if got.Timezone != tz {
		t.Errorf("timezone = %s, want %s", got.Timezone, tz)
	}
	if got.StatsStartDate != start {
		t.Errorf("stats start = %s, want %s", got.StatsStartDate, start)
	}
	if got.BarWidth != width {
		t.Errorf("bar width = %d, want %d", got.BarWidth, width)
	}
}

func TestSettingsCmd_RejectsInvalid(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	badLat := 123.0
	badMethod := 99
	badTZ := "Mars/Olympus"
	badDate := "2021-02-30"
	badWidth := 0

	cases := map[string]*SettingsCmd{
		"latitude":  {Latitude: &badLat},
		"method":    {Method: &badMethod},
		"timezone":  {Timezone: &badTZ},
		"date":      {StatsStartDate: &badDate},
		"bar width": {BarWidth: &badWidth},
	}
	for name, cmd := range cases {
		if err := cmd.Run(ctx); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	got, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.Latitude != constants.DefaultLatitude || got.Method != constants.DefaultMethod {
		t.Errorf("invalid update was persisted: %+v", got)
	}
}
