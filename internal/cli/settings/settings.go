package settings

import (
	"fmt"

	"github.com/julianstephens/salat/internal/cli"
	"github.com/julianstephens/salat/internal/timings"
	"github.com/julianstephens/salat/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Latitude       *float64 `help:"Latitude of the prayer location."`
	Longitude      *float64 `help:"Longitude of the prayer location."`
	Method         *int     `help:"Calculation method id (see 'salat methods')."`
	Timezone       *string  `help:"IANA timezone, e.g. Europe/Berlin."`
	StatsStartDate *string  `help:"First date counted by stats and kaza (YYYY-MM-DD)."`
	BarWidth       *int     `help:"Width of the stats bars in columns."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	if c.List {
		method, ok := timings.MethodName(settings.Method)
		if !ok {
			method = "unknown"
		}
		fmt.Println("Current Settings:")
		fmt.Printf("  Latitude:          %.6f\n", settings.Latitude)
		fmt.Printf("  Longitude:         %.6f\n", settings.Longitude)
		fmt.Printf("  Method:            %d (%s)\n", settings.Method, method)
		fmt.Printf("  Timezone:          %s\n", settings.Timezone)
		fmt.Println("\nStatistics:")
		fmt.Printf("  Stats Start Date:  %s\n", settings.StatsStartDate)
		fmt.Printf("  Bar Width:         %d\n", settings.BarWidth)
		return nil
	}

	updated := false
	if c.Latitude != nil {
		settings.Latitude = *c.Latitude
		updated = true
	}
	if c.Longitude != nil {
		settings.Longitude = *c.Longitude
		updated = true
	}
	if c.Method != nil {
		if _, ok := timings.MethodName(*c.Method); !ok {
			return fmt.Errorf("unknown calculation method %d", *c.Method)
		}
		settings.Method = *c.Method
		updated = true
	}
	if c.Timezone != nil {
		if _, err := utils.LoadLocation(*c.Timezone); err != nil {
			return err
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.StatsStartDate != nil {
		settings.StatsStartDate = *c.StatsStartDate
		updated = true
	}
	if c.BarWidth != nil {
		settings.BarWidth = *c.BarWidth
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
