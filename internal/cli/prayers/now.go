package prayers

import (
	"fmt"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/resolver"
	"github.com/julianstephens/salat/internal/utils"
)

type NowCmd struct{}

func (c *NowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	now, err := ctx.Now(settings)
	if err != nil {
		return err
	}
	today := utils.FormatDate(now)

	day, err := ctx.FetchDay(today, settings)
	if err != nil {
		fmt.Println("Loading...")
		return fmt.Errorf("failed to load prayer times: %w", err)
	}

	w := resolver.Resolve(day.Boundaries, utils.SecondOfDay(now))
	if w.Loading {
		fmt.Println("Loading...")
		return nil
	}

	status, err := ctx.Ledger().Status(today, w.Current)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s\n", cli.BoldColor.Sprint(today), cli.FaintColor.Sprint(now.Format("15:04:05")))
	fmt.Printf("Current: %-10s since %s  %s\n", w.Current.DisplayName(), resolver.FormatClock(w.CurrentBoundary), cli.StatusLabel(status))
	fmt.Printf("Next:    %-10s at    %s  (in %s)\n", w.Next.DisplayName(), resolver.FormatClock(w.NextBoundary), resolver.FormatDuration(w.Remaining))
	return nil
}
