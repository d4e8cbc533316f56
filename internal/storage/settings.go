package storage

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/salat/internal/constants"
	"github.com/julianstephens/salat/internal/models"
)

// SettingsToMap flattens settings into the key/value rows both SQL
// backends persist.
func SettingsToMap(s models.Settings) map[string]string {
	return map[string]string{
		constants.SettingLatitude:       strconv.FormatFloat(s.Latitude, 'f', -1, 64),
		constants.SettingLongitude:      strconv.FormatFloat(s.Longitude, 'f', -1, 64),
		constants.SettingMethod:         strconv.Itoa(s.Method),
		constants.SettingTimezone:       s.Timezone,
		constants.SettingStatsStartDate: s.StatsStartDate,
		constants.SettingBarWidth:       strconv.Itoa(s.BarWidth),
	}
}

// ApplySetting parses one stored key/value pair into s. Unknown keys are
// ignored so newer databases stay readable.
func ApplySetting(s *models.Settings, key, value string) error {
	var err error
	switch key {
	case constants.SettingLatitude:
		s.Latitude, err = strconv.ParseFloat(value, 64)
	case constants.SettingLongitude:
		s.Longitude, err = strconv.ParseFloat(value, 64)
	case constants.SettingMethod:
		s.Method, err = strconv.Atoi(value)
	case constants.SettingTimezone:
		s.Timezone = value
	case constants.SettingStatsStartDate:
		s.StatsStartDate = value
	case constants.SettingBarWidth:
		s.BarWidth, err = strconv.Atoi(value)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	return nil
}
