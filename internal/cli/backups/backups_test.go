package backups

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/salat/internal/backup"
	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/storage/postgres"
	"github.com/julianstephens/salat/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, *sqlite.Store, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "salat.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.UpsertStatus("2025-01-01", models.Morning, models.StatusDone); err != nil {
		t.Fatal(err)
	}
	ctx := &cli.Context{Store: store}
	return ctx, store, func() { store.Close() }
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, store, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list on empty dir failed: %v", err)
	}
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	backups, err := backup.NewManager(store.GetConfigPath()).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestBackupRestore(t *testing.T) {
	ctx, store, cleanup := setupTestDB(t)
	defer cleanup()

	mgr := backup.NewManager(store.GetConfigPath())
	snap, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}
	if err := store.UpsertStatus("2025-01-01", models.Morning, models.StatusOpen); err != nil {
		t.Fatal(err)
	}

	// Declining leaves the database alone.
	cancel := &BackupRestoreCmd{BackupFile: filepath.Base(snap), stdin: strings.NewReader("n\n")}
	if err := cancel.Run(ctx); err != nil {
		t.Fatalf("cancelled restore failed: %v", err)
	}
	if st, _, _ := store.GetStatus("2025-01-01", models.Morning); st != models.StatusOpen {
		t.Errorf("declined restore changed data: %s", st)
	}

	restore := &BackupRestoreCmd{BackupFile: filepath.Base(snap), stdin: strings.NewReader("y\n")}
	if err := restore.Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("reload after restore failed: %v", err)
	}
	if st, _, _ := store.GetStatus("2025-01-01", models.Morning); st != models.StatusDone {
		t.Errorf("restore did not bring back data: %s", st)
	}
}

func TestBackupRestoreMissingFile(t *testing.T) {
	ctx, _, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &BackupRestoreCmd{BackupFile: "salat-20000101-000000.db", Yes: true}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for missing backup")
	}
}

func TestBackupsRequireSQLite(t *testing.T) {
	ctx := &cli.Context{Store: postgres.New("postgres://localhost/salat")}
	if err := (&BackupCreateCmd{}).Run(ctx); err == nil {
		t.Error("expected error for postgres store")
	}
	if err := (&BackupListCmd{}).Run(ctx); err == nil {
		t.Error("expected error for postgres store")
	}
}

func TestResetCmd(t *testing.T) {
	ctx, store, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&ResetCmd{stdin: strings.NewReader("\n")}).Run(ctx); err != nil {
		t.Fatalf("cancelled reset failed: %v", err)
	}
	if _, found, _ := store.GetStatus("2025-01-01", models.Morning); !found {
		t.Fatal("declined reset wiped the ledger")
	}

	if err := (&ResetCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	entries, err := store.ListEntries("2000-01-01", "2030-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty ledger, got %d rows", len(entries))
	}
	if _, err := store.GetSettings(); err != nil {
		t.Errorf("settings lost on reset: %v", err)
	}

	backups, err := backup.NewManager(store.GetConfigPath()).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Errorf("expected a safety backup before reset, got %d", len(backups))
	}
}

func TestConfirm(t *testing.T) {
	cases := map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"":      false,
		"sure":  false,
	}
	for in, want := range cases {
		got, err := confirm(strings.NewReader(in), "")
		if err != nil {
			t.Fatalf("confirm(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("confirm(%q) = %v, want %v", in, got, want)
		}
	}
}
