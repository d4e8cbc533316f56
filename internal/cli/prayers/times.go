package prayers

import (
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/resolver"
)

type TimesCmd struct {
	Date string `help:"Date (YYYY-MM-DD). Defaults to today."`
}

func (c *TimesCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date, settings)
	if err != nil {
		return err
	}

	day, err := ctx.FetchDay(date, settings)
	if err != nil {
		return fmt.Errorf("failed to load prayer times: %w", err)
	}

	fmt.Printf("Prayer times for %s", cli.BoldColor.Sprint(date))
	if day.Hijri != "" {
		fmt.Printf(" (%s)", day.Hijri)
	}
	fmt.Println()
	fmt.Println()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("PRAYER", "", "BEGINS")
	for _, slot := range models.Slots {
		tbl.AddRow(slot.DisplayName(), slot.ProviderName(), resolver.FormatClock(day.Boundaries.Get(slot)))
	}
	fmt.Println(tbl)

	if day.MethodName != "" {
		fmt.Println()
		fmt.Println(cli.FaintColor.Sprint("Method: " + day.MethodName))
	}
	return nil
}
