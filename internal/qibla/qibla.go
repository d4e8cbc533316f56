// Package qibla computes the initial great-circle bearing towards the Kaaba.
package qibla

import (
	"fmt"
	"math"

	"github.com/julianstephens/salat/internal/constants"
)

var compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Bearing returns degrees clockwise from true north, in [0, 360).
func Bearing(lat, lon float64) (float64, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, fmt.Errorf("coordinates out of range: %v, %v", lat, lon)
	}

	phi1 := lat * math.Pi / 180
	phi2 := constants.KaabaLatitude * math.Pi / 180
	dLambda := (constants.KaabaLongitude - lon) * math.Pi / 180

	y := math.Sin(dLambda)
	x := math.Cos(phi1)*math.Tan(phi2) - math.Sin(phi1)*math.Cos(dLambda)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360), nil
}

// Compass names the nearest of the eight principal directions.
func Compass(deg float64) string {
	idx := int(math.Round(math.Mod(deg+360, 360)/45)) % len(compassPoints)
	return compassPoints[idx]
}
