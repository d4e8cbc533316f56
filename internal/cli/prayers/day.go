package prayers

import (
	"fmt"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, settings)
	if err != nil {
		return err
	}

	view, err := ctx.Ledger().Day(date)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %d/%d performed\n\n", cli.BoldColor.Sprint(date), view.Done(), models.SlotCount)
	for _, slot := range models.Slots {
		fmt.Printf("  %-11s %s\n", slot.DisplayName(), cli.StatusLabel(view.Statuses[slot]))
	}
	if !view.Seeded {
		fmt.Println()
		fmt.Println(cli.FaintColor.Sprint("Nothing recorded for this day yet."))
	}
	return nil
}
