package prayers

import (
	"fmt"

	"github.com/gosuri/uitable"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/qibla"
	"github.com/julianstephens/salat/internal/timings"
)

type MethodsCmd struct{}

func (c *MethodsCmd) Run(ctx *cli.Context) error {
	current := -1
	if ctx.Store != nil {
		if settings, err := ctx.Store.GetSettings(); err == nil {
			current = settings.Method
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.RightAlign(0)
	tbl.AddRow("ID", "METHOD", "")
	for _, m := range timings.Methods() {
		marker := ""
		if m.ID == current {
			marker = cli.BoldColor.Sprint("(selected)")
		}
		tbl.AddRow(m.ID, m.Name, marker)
	}
	fmt.Println(tbl)
	return nil
}

type QiblaCmd struct{}

func (c *QiblaCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	deg, err := qibla.Bearing(settings.Latitude, settings.Longitude)
	if err != nil {
		return err
	}
	fmt.Printf("Qibla from %.4f, %.4f: %s (%s)\n",
		settings.Latitude, settings.Longitude,
		cli.BoldColor.Sprintf("%.1f°", deg), qibla.Compass(deg))
	return nil
}
