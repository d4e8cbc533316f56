package backups

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/logger"
)

// ResetCmd deletes every ledger row. Settings survive.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`

	stdin io.Reader
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		fmt.Println("⚠️  WARNING: This deletes every recorded prayer status. Settings are kept.")
		in := c.stdin
		if in == nil {
			in = os.Stdin
		}
		ok, err := confirm(in, "Continue? [y/N]: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.Wipe(); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}
	logger.Info("ledger reset")
	fmt.Println("✓ Ledger reset.")
	return nil
}
