package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/salat/internal/constants"
	apperrors "github.com/julianstephens/salat/internal/errors"
	"github.com/julianstephens/salat/internal/models"
)

// ParseClock converts "HH:MM" (optionally followed by a " (TZ)" suffix as
// the provider sends it) into seconds since midnight.
func ParseClock(value string) (int, error) {
	v := strings.TrimSpace(value)
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}

	hh, mm, ok := strings.Cut(v, ":")
	if !ok {
		return 0, apperrors.NewParseError("time", value, fmt.Errorf("missing colon"))
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, apperrors.NewParseError("time", value, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, apperrors.NewParseError("time", value, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, apperrors.NewParseError("time", value, fmt.Errorf("out of range"))
	}
	return h*constants.SecondsPerHour + m*constants.SecondsPerMinute, nil
}

// ParseBoundaries parses the provider's five time strings. A missing or
// malformed slot fails the whole set; callers show the loading state.
func ParseBoundaries(raw map[models.PrayerSlot]string) (models.DailyBoundaries, error) {
	b := models.NewBoundaries()
	for _, slot := range models.Slots {
		v, ok := raw[slot]
		if !ok {
			return models.NewBoundaries(), apperrors.NewParseError(slot.String(), "", fmt.Errorf("boundary missing"))
		}
		sec, err := ParseClock(v)
		if err != nil {
			return models.NewBoundaries(), fmt.Errorf("%s boundary: %w", slot, err)
		}
		b[slot] = sec
	}
	return b, nil
}

// FormatClock renders seconds since midnight as HH:MM.
func FormatClock(seconds int) string {
	seconds = ((seconds % constants.SecondsPerDay) + constants.SecondsPerDay) % constants.SecondsPerDay
	return fmt.Sprintf("%02d:%02d", seconds/constants.SecondsPerHour, seconds%constants.SecondsPerHour/constants.SecondsPerMinute)
}

// FormatDuration renders a non-negative second count as HH:MM:SS.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / constants.SecondsPerHour
	m := seconds % constants.SecondsPerHour / constants.SecondsPerMinute
	s := seconds % constants.SecondsPerMinute
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
