package prayers

import (
	"fmt"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
)

type MarkCmd struct {
	Slot   string `arg:"" help:"Prayer (Morning, Noon, Afternoon, Evening, Night or Fajr, Dhuhr, ...)."`
	Status string `arg:"" help:"done or open."`
	Date   string `help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	slot, err := models.ParseSlot(c.Slot)
	if err != nil {
		return err
	}
	status, err := models.ParseStatus(c.Status)
	if err != nil {
		return err
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, settings)
	if err != nil {
		return err
	}

	if err := ctx.Ledger().Upsert(date, slot, status); err != nil {
		return err
	}
	fmt.Printf("%s %s: %s\n", date, slot.DisplayName(), cli.StatusLabel(status))
	return nil
}

type MarkAllCmd struct {
	Status string `arg:"" help:"done or open."`
	Date   string `help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *MarkAllCmd) Run(ctx *cli.Context) error {
	status, err := models.ParseStatus(c.Status)
	if err != nil {
		return err
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, settings)
	if err != nil {
		return err
	}

	if err := ctx.Ledger().UpsertAll(date, status); err != nil {
		return err
	}
	fmt.Printf("%s all prayers: %s\n", date, cli.StatusLabel(status))
	return nil
}
