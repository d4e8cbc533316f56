package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"
	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/keyring"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/storage/sqlite"
)

type fakeProcess struct {
	pid  int
	exec string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return p.exec }

func withProcesses(t *testing.T, procs ...ps.Process) {
	t.Helper()
	old := listProcessesFunc
	listProcessesFunc = func() ([]ps.Process, error) { return procs, nil }
	t.Cleanup(func() { listProcessesFunc = old })
}

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	ctx := &cli.Context{Store: store}
	return ctx, store, func() { store.Close() }
}

func TestInitCmd_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "salat.db")
	store := sqlite.NewStore(dbPath)
	defer store.Close()

	if err := (&InitCmd{}).Run(&cli.Context{Store: store}); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
	if _, err := store.GetSettings(); err != nil {
		t.Errorf("default settings missing: %v", err)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		if err := (&InitCmd{}).Run(ctx); err != nil {
			t.Fatalf("init #%d failed: %v", i, err)
		}
	}
}

func TestInitCmd_ForceWipes(t *testing.T) {
	ctx, store, cleanup := setupTestDB(t)
	defer cleanup()

	if err := store.UpsertStatus("2025-01-01", models.Morning, models.StatusDone); err != nil {
		t.Fatal(err)
	}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	entries, err := store.GetDay("2025-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty ledger after --force, got %d rows", len(entries))
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.db")
	src := sqlite.NewStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatal(err)
	}
	settings := models.DefaultSettings()
	settings.Method = 3
	if err := src.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := src.UpsertAllStatuses("2024-12-01", models.StatusDone); err != nil {
		t.Fatal(err)
	}
	src.Close()

	dst := sqlite.NewStore(filepath.Join(t.TempDir(), "dest.db"))
	defer dst.Close()
	if err := (&InitCmd{Source: srcPath}).Run(&cli.Context{Store: dst}); err != nil {
		t.Fatalf("init --source failed: %v", err)
	}

	got, err := dst.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.Method != 3 {
		t.Errorf("method = %d, want 3", got.Method)
	}
	counts, err := dst.CountByStatus("2024-12-01", "2024-12-01", models.StatusDone)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != models.SlotCount {
		t.Errorf("expected all five slots copied, got %v", counts)
	}
}

func TestInitCmd_ForceSameSource(t *testing.T) {
	ctx, store, cleanup := setupTestDB(t)
	defer cleanup()

	err := (&InitCmd{Force: true, Source: store.GetConfigPath()}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "same") {
		t.Errorf("expected same-path error, got %v", err)
	}
}

func TestMigrateCmd_UpToDate(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&MigrateCmd{}).Run(ctx); err != nil {
		t.Errorf("migrate failed: %v", err)
	}
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	withProcesses(t)
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	// Missing backups is only a warning.
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_FutureSchema(t *testing.T) {
	withProcesses(t)
	ctx, store, cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := store.GetDB().Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected doctor to fail on a future schema version")
	}
}

func TestDoctorCmd_BadTimezone(t *testing.T) {
	withProcesses(t)
	ctx, store, cleanup := setupTestDB(t)
	defer cleanup()

	settings, _ := store.GetSettings()
	settings.Timezone = "Mars/Olympus_Mons"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("expected doctor to fail on an unknown timezone")
	}
}

func TestCheckOtherInstances(t *testing.T) {
	withProcesses(t,
		fakeProcess{pid: os.Getpid(), exec: "salat"},
		fakeProcess{pid: 4242, exec: "bash"},
	)
	if err := checkOtherInstances(); err != nil {
		t.Errorf("own process must be ignored: %v", err)
	}

	withProcesses(t, fakeProcess{pid: 4242, exec: "salat"})
	err := checkOtherInstances()
	if err == nil || !strings.Contains(err.Error(), "4242") {
		t.Errorf("expected running instance to be reported, got %v", err)
	}
}

func TestKeyringCmds(t *testing.T) {
	gokeyring.MockInit()
	defer func() { _ = keyring.DeleteConnectionString() }()

	tests := []struct {
		name      string
		connStr   string
		wantError bool
	}{
		{"valid postgres URL", "postgres://user@localhost:5432/salat?sslmode=disable", false},
		{"valid DSN", "host=localhost port=5432 dbname=salat user=salat", false},
		{"not a connection string", "not-a-valid-connection-string", true},
		{"embedded password warns but succeeds", "postgres://user:pw@localhost:5432/salat", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&KeyringSetCmd{ConnectionString: tt.connStr}).Run(&cli.Context{})
			if (err != nil) != tt.wantError {
				t.Fatalf("KeyringSetCmd.Run() error = %v, wantError %v", err, tt.wantError)
			}
			if !tt.wantError {
				got, err := keyring.GetConnectionString()
				if err != nil || got != tt.connStr {
					t.Errorf("stored %q, %v; want %q", got, err, tt.connStr)
				}
			}
		})
	}

	if err := (&KeyringGetCmd{}).Run(&cli.Context{}); err != nil {
		t.Errorf("get failed: %v", err)
	}
	if err := (&KeyringStatusCmd{}).Run(&cli.Context{}); err != nil {
		t.Errorf("status failed: %v", err)
	}
	if err := (&KeyringDeleteCmd{}).Run(&cli.Context{}); err != nil {
		t.Errorf("delete failed: %v", err)
	}
	if err := (&KeyringDeleteCmd{}).Run(&cli.Context{}); err == nil {
		t.Error("second delete should fail")
	}
}
