package reports

import (
	"fmt"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
)

type KazaCmd struct {
	Slot  string `arg:"" help:"Prayer to make up."`
	Count int    `arg:"" help:"Number of make-up prayers performed."`
	From  string `help:"Start walking from this date (YYYY-MM-DD). Defaults to the oldest open entry."`
	Until string `help:"Do not walk past this date (YYYY-MM-DD). Defaults to today."`
}

func (c *KazaCmd) Run(ctx *cli.Context) error {
	slot, err := models.ParseSlot(c.Slot)
	if err != nil {
		return err
	}
	if c.Count <= 0 {
		fmt.Println("Nothing to record.")
		return nil
	}

	res, err := ctx.Kaza(slot, c.Count, c.From, c.Until)
	if res.Clamped {
		fmt.Printf("Only %d open %s prayers between %s and %s; recording %d.\n",
			res.Outstanding, slot.DisplayName(), res.Range.From, res.Range.To, res.Outstanding)
	}
	if len(res.Dates) > 0 {
		fmt.Printf("Marked %d %s prayers as performed:\n", len(res.Dates), slot.DisplayName())
		for _, d := range res.Dates {
			fmt.Printf("  %s\n", d)
		}
	} else if err == nil {
		fmt.Println("No open prayers found.")
	}
	return err
}
