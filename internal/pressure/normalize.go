// Package pressure turns raw pillar records into 0-100 pressure scores and
// combines them into a profile and an overall momentum score.
package pressure

import "math"

const (
	// Min and Max bound every pressure and score.
	Min = 0
	Max = 100
)

// Normalize rounds a raw value and clamps it into [Min, Max].
// Normalize(float64(Normalize(x))) == Normalize(x) for every x.
func Normalize(raw float64) int {
	if math.IsNaN(raw) {
		return Min
	}
	r := math.Round(raw)
	if r < Min {
		return Min
	}
	if r > Max {
		return Max
	}
	return int(r)
}
