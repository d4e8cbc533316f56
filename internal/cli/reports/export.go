package reports

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/export"
)

type ExportCmd struct {
	Format string `help:"Output format (csv or json)." default:"csv" enum:"csv,json"`
	Output string `short:"o" help:"Output file. Defaults to stdout."`
	From   string `help:"First date (YYYY-MM-DD). Defaults to the stats_start_date setting."`
	To     string `help:"Last date (YYYY-MM-DD). Defaults to today."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	r, err := ctx.ResolveRange(c.From, c.To, settings)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.ListEntries(r.From, r.To)
	if err != nil {
		return fmt.Errorf("failed to list ledger: %w", err)
	}

	if c.Output == "" {
		if format == export.FormatJSON {
			return export.WriteJSON(os.Stdout, entries)
		}
		return export.WriteCSV(os.Stdout, entries)
	}

	path, err := homedir.Expand(c.Output)
	if err != nil {
		return fmt.Errorf("failed to expand output path: %w", err)
	}
	if err := export.ToFile(path, format, entries); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Exported %d entries to %s\n", len(entries), path)
	return nil
}
