package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/cli/backups"
	"github.com/julianstephens/salat/internal/cli/prayers"
	"github.com/julianstephens/salat/internal/cli/reports"
	"github.com/julianstephens/salat/internal/cli/settings"
	"github.com/julianstephens/salat/internal/cli/system"
	"github.com/julianstephens/salat/internal/constants"
	apperrors "github.com/julianstephens/salat/internal/errors"
	"github.com/julianstephens/salat/internal/keyring"
	"github.com/julianstephens/salat/internal/logger"
	"github.com/julianstephens/salat/internal/storage"
	"github.com/julianstephens/salat/internal/storage/postgres"
	"github.com/julianstephens/salat/internal/storage/sqlite"
	"github.com/julianstephens/salat/internal/timings"
)

type CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path, PostgreSQL connection string, or 'keyring' to read the connection string from the OS keyring or SALAT_DB_CONNECTION. Credentials must NOT be embedded in a connection string." type:"string" default:"${defaultConfig}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize salat storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Now     prayers.NowCmd     `cmd:"" help:"Show the current prayer window."`
	Times   prayers.TimesCmd   `cmd:"" help:"Show the prayer times of a day."`
	Mark    prayers.MarkCmd    `cmd:"" help:"Set the status of one prayer."`
	MarkAll prayers.MarkAllCmd `cmd:"" name:"mark-all" help:"Set the status of all five prayers of a day."`
	Day     prayers.DayCmd     `cmd:"" help:"Show the five prayers of a day."`
	Methods prayers.MethodsCmd `cmd:"" help:"List calculation methods."`
	Qibla   prayers.QiblaCmd   `cmd:"" help:"Show the qibla bearing from the configured location."`

	History reports.HistoryCmd `cmd:"" help:"Show a grid of recorded prayers."`
	Stats   reports.StatsCmd   `cmd:"" help:"Show prayer statistics."`
	Kaza    reports.KazaCmd    `cmd:"" help:"Record make-up prayers against the oldest open entries."`
	Export  reports.ExportCmd  `cmd:"" help:"Export the ledger as CSV or JSON."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups (SQLite only)."`
	Reset   backups.ResetCmd `cmd:"" help:"Back up, then delete every recorded prayer status."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Report whether the OS keyring is usable."`
	} `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// noStoreCommands run without loading an existing store.
var noStoreCommands = map[string]bool{
	"init":    true,
	"keyring": true,
	"methods": true,
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		apperrors.Fatal(err)
	}
}

func run(args []string) error {
	var cmdLine CLI
	parser, err := kong.New(&cmdLine,
		kong.Name(constants.AppName),
		kong.Description("Prayer times, status ledger and make-up tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":       constants.Version,
			"defaultConfig": constants.DefaultConfigPath,
		},
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	command := strings.Fields(ctx.Command())[0]

	store, configDir, err := openStore(cmdLine.Config, command == "keyring")
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{Debug: cmdLine.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store: store,
		Timings: timings.NewCachedClient(
			timings.NewClient(""),
			filepath.Join(configDir, constants.CacheDirName, constants.TimingsCacheDir),
		),
	}
	defer store.Close()

	if !noStoreCommands[command] {
		if err := store.Load(); err != nil {
			return err
		}
	}

	return ctx.Run(appCtx)
}

// openStore picks the backend for config and returns it along with the
// directory used for logs and the timings cache. With lenient set, a
// missing keyring entry yields a SQLite store at the default path so the
// keyring commands can still run.
func openStore(config string, lenient bool) (storage.Provider, string, error) {
	defaultDir, err := homedir.Expand(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	if config == "keyring" {
		connStr, source, err := keyring.Resolve()
		if err != nil {
			if lenient {
				path, _ := homedir.Expand(constants.DefaultConfigPath)
				return sqlite.NewStore(path), defaultDir, nil
			}
			return nil, "", fmt.Errorf("no connection string found in %s or the keyring: %w", constants.EnvConnectionString, err)
		}
		if !postgres.IsConnString(connStr) {
			return nil, "", fmt.Errorf("connection string from %s is not a PostgreSQL URL or DSN", source)
		}
		return postgres.New(connStr), defaultDir, nil
	}

	if postgres.IsConnString(config) {
		if postgres.HasEmbeddedCredentials(config) {
			return nil, "", fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; " +
				"store it with 'salat keyring set', export " + constants.EnvConnectionString +
				", or use a .pgpass file, then pass --config keyring")
		}
		return postgres.New(config), defaultDir, nil
	}

	path, err := homedir.Expand(config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to expand config path: %w", err)
	}
	return sqlite.NewStore(path), filepath.Dir(path), nil
}
