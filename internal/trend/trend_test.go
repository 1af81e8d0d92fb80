package trend

import (
	"testing"

	"github.com/blaezi/blaezi/internal/history"
	"github.com/blaezi/blaezi/internal/pillar"
)

func snap(date string, projects, dsa, career float64) history.Snapshot {
	return history.Snapshot{Date: date, Pressures: map[pillar.Key]float64{
		pillar.Projects: projects,
		pillar.DSA:      dsa,
		pillar.Career:   career,
	}}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		snaps    []history.Snapshot
		selector string
		want     Direction
	}{
		{"no history", nil, Overall, Stable},
		{"single entry", []history.Snapshot{snap("d1", 10, 10, 10)}, string(pillar.DSA), Stable},
		{"overall up", []history.Snapshot{snap("d1", 10, 10, 10), snap("d2", 20, 20, 20)}, Overall, Up},
		{"overall down", []history.Snapshot{snap("d1", 40, 40, 40), snap("d2", 20, 20, 20)}, Overall, Down},
		{"overall within threshold", []history.Snapshot{snap("d1", 10, 10, 10), snap("d2", 15, 15, 15)}, Overall, Stable},
		{"pillar up", []history.Snapshot{snap("d1", 0, 10, 0), snap("d2", 0, 16, 0)}, string(pillar.DSA), Up},
		{"pillar exactly threshold", []history.Snapshot{snap("d1", 0, 10, 0), snap("d2", 0, 15, 0)}, string(pillar.DSA), Stable},
		{"pillar down", []history.Snapshot{snap("d1", 0, 0, 80), snap("d2", 0, 0, 20)}, string(pillar.Career), Down},
		{"uses last two only", []history.Snapshot{snap("d1", 90, 90, 90), snap("d2", 10, 10, 10), snap("d3", 12, 12, 12)}, Overall, Stable},
		{"unknown pillar", []history.Snapshot{snap("d1", 0, 0, 0), snap("d2", 50, 50, 50)}, "health", Stable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.snaps, tt.selector); got != tt.want {
				t.Errorf("Compute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompute_MissingPillarInPrevious(t *testing.T) {
	prev := history.Snapshot{Date: "d1", Pressures: map[pillar.Key]float64{pillar.DSA: 10}}
	last := snap("d2", 90, 10, 90)

	if got := Compute([]history.Snapshot{prev, last}, string(pillar.Career)); got != Stable {
		t.Errorf("missing previous value: got %q, want stable", got)
	}
	// Overall averages whatever values each snapshot holds: 10 then 63.3.
	if got := Compute([]history.Snapshot{prev, last}, Overall); got != Up {
		t.Errorf("overall: got %q, want up", got)
	}
}

func TestForPillars(t *testing.T) {
	got := ForPillars([]history.Snapshot{snap("d1", 50, 50, 50), snap("d2", 70, 50, 30)})
	want := map[pillar.Key]Direction{
		pillar.Projects: Up,
		pillar.DSA:      Stable,
		pillar.Career:   Down,
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("ForPillars()[%s] = %q, want %q", k, got[k], w)
		}
	}
}
