package reports

import (
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/models"
)

const defaultHistoryDays = 14

type HistoryCmd struct {
	From string `help:"First date (YYYY-MM-DD). Defaults to two weeks ago."`
	To   string `help:"Last date (YYYY-MM-DD). Defaults to today."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	to, err := ctx.ResolveDate(c.To, settings)
	if err != nil {
		return err
	}
	from := c.From
	if from == "" {
		if from, err = models.AddDays(to, -(defaultHistoryDays - 1)); err != nil {
			return err
		}
	}
	r := models.DateRange{From: from, To: to}
	if err := r.Validate(); err != nil {
		return err
	}

	entries, err := ctx.Store.ListEntries(r.From, r.To)
	if err != nil {
		return fmt.Errorf("failed to list ledger: %w", err)
	}
	byDate := make(map[string][models.SlotCount]models.Status)
	for _, e := range entries {
		row, ok := byDate[e.Date]
		if !ok {
			for i := range row {
				row[i] = models.StatusOpen
			}
		}
		row[e.Slot] = e.Status
		byDate[e.Date] = row
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{"DATE"}
	for _, slot := range models.Slots {
		header = append(header, slot.DisplayName())
	}
	header = append(header, "DONE")
	tbl.AddRow(header...)

	for date := r.To; date >= r.From; {
		row := []interface{}{date}
		statuses, seeded := byDate[date]
		done := 0
		for _, slot := range models.Slots {
			if !seeded {
				row = append(row, cli.FaintColor.Sprint("-"))
				continue
			}
			if statuses[slot] == models.StatusDone {
				done++
			}
			row = append(row, cli.StatusMark(statuses[slot]))
		}
		row = append(row, fmt.Sprintf("%d/%d", done, models.SlotCount))
		tbl.AddRow(row...)

		if date, err = models.AddDays(date, -1); err != nil {
			return err
		}
	}

	fmt.Println(tbl)
	return nil
}
