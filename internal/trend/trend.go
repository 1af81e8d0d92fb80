// Package trend classifies how pressure moved between the two most recent
// history snapshots.
//
// Directions are pressure-centric: Up means pressure rose (worse), Down
// means it fell (better).
package trend

import (
	"github.com/blaezi/blaezi/internal/history"
	"github.com/blaezi/blaezi/internal/pillar"
)

// Direction is the movement of pressure between two snapshots.
type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Stable Direction = "stable"
)

// Overall selects the average of every pillar instead of a single one.
const Overall = "overall"

// Threshold is the change in pressure points that counts as movement.
const Threshold = 5.0

// Compute compares the last two snapshots for the given selector, either a
// pillar key or Overall. A pillar missing from either snapshot is Stable.
func Compute(snaps []history.Snapshot, selector string) Direction {
	if len(snaps) < 2 {
		return Stable
	}
	prev, last := snaps[len(snaps)-2], snaps[len(snaps)-1]

	var diff float64
	if selector == Overall {
		diff = average(last.Pressures) - average(prev.Pressures)
	} else {
		key := pillar.Key(selector)
		a, okA := prev.Pressures[key]
		b, okB := last.Pressures[key]
		if !okA || !okB {
			return Stable
		}
		diff = b - a
	}

	switch {
	case diff > Threshold:
		return Up
	case diff < -Threshold:
		return Down
	default:
		return Stable
	}
}

// ForPillars computes the direction of every pillar in pillar.All.
func ForPillars(snaps []history.Snapshot) map[pillar.Key]Direction {
	out := make(map[pillar.Key]Direction, len(pillar.All))
	for _, k := range pillar.All {
		out[k] = Compute(snaps, string(k))
	}
	return out
}

func average(m map[pillar.Key]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum / float64(len(m))
}
