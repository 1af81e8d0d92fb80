package pressure

import "math"

// BlaeziScore is overall momentum: 100 minus the average pressure, floored
// at 0. No pressure data means full momentum.
func BlaeziScore(p Profile) int {
	if len(p) == 0 {
		return Max
	}
	return int(math.Max(0, math.Round(Max-p.Average())))
}
