package reports

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
	"github.com/julianstephens/salat/internal/stats"
)

type StatsCmd struct {
	From string `help:"First date (YYYY-MM-DD). Defaults to the stats_start_date setting."`
	To   string `help:"Last date (YYYY-MM-DD). Defaults to today."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	r, err := ctx.ResolveRange(c.From, c.To, settings)
	if err != nil {
		return err
	}

	summary, err := stats.NewAggregator(ctx.Store).Summarize(r)
	if err != nil {
		return err
	}
	ref := summary.ReferenceMax()

	fmt.Printf("Statistics %s to %s\n\n", r.From, r.To)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("PRAYER", "DONE", "OPEN", "")
	for _, slot := range models.Slots {
		done := summary.Done.Get(slot)
		open := summary.Open.Get(slot)
		tbl.AddRow(slot.DisplayName(), done, open, renderBar(settings.BarWidth, done, open, ref))
	}
	tbl.AddRow("", "", "", "")
	tbl.AddRow(cli.BoldColor.Sprint("Total"), summary.Done.Total(), summary.Open.Total(), "")
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	fmt.Println(tbl)

	p := summary.Progress()
	fmt.Println()
	fmt.Printf("Progress: %s\n", cli.BoldColor.Sprint(p.String()))
	fmt.Println(stats.ProgressMessage(p))
	return nil
}

// renderBar draws the done part solid and the open remainder shaded.
func renderBar(palette, done, open, ref int) string {
	doneWidth := stats.BarWidth(palette, done, ref)
	totalWidth := stats.BarWidth(palette, done+open, ref)
	return strings.Repeat("█", doneWidth) + cli.FaintColor.Sprint(strings.Repeat("░", totalWidth-doneWidth))
}
