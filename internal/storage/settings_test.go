package storage

import (
	"testing"

	"github.com/julianstephens/salat/internal/models"
)

func TestSettingsRoundTripThroughMap(t *testing.T) {
	want := models.Settings{
		Latitude:       21.5,
		Longitude:      -0.127758,
		Method:         3,
		Timezone:       "Europe/London",
		StatsStartDate: "2020-01-01",
		BarWidth:       55,
	}

	var got models.Settings
	for k, v := range SettingsToMap(want) {
		if err := ApplySetting(&got, k, v); err != nil {
			t.Fatalf("ApplySetting(%s) failed: %v", k, err)
		}
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestApplySettingRejectsGarbage(t *testing.T) {
	var s models.Settings
	if err := ApplySetting(&s, "method", "thirteen"); err == nil {
		t.Error("expected error for non-numeric method")
	}
	if err := ApplySetting(&s, "unknown_key", "x"); err != nil {
		t.Errorf("unknown keys should be ignored, got %v", err)
	}
}
