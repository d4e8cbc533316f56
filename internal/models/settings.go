package models

import (
	"fmt"

	"github.com/julianstephens/salat/internal/constants"
)

// Settings are persisted in the store's key/value settings table.
type Settings struct {
	Latitude       float64
	Longitude      float64
	Method         int
	Timezone       string
	StatsStartDate string
	BarWidth       int
}

func DefaultSettings() Settings {
	return Settings{
		Latitude:       constants.DefaultLatitude,
		Longitude:      constants.DefaultLongitude,
		Method:         constants.DefaultMethod,
		Timezone:       constants.DefaultTimezone,
		StatsStartDate: constants.DefaultStatsStartDate,
		BarWidth:       constants.DefaultBarWidth,
	}
}

func (s Settings) Validate() error {
	if s.Latitude < -90 || s.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", s.Latitude)
	}
	if s.Longitude < -180 || s.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", s.Longitude)
	}
	if s.Method < 0 {
		return fmt.Errorf("calculation method must not be negative")
	}
	if s.BarWidth <= 0 {
		return fmt.Errorf("bar width must be positive")
	}
	if _, err := ParseDate(s.StatsStartDate); err != nil {
		return err
	}
	return nil
}
