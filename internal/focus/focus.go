// Package focus recommends which pillar needs attention from a pressure
// profile.
package focus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/pressure"
)

// Level is the severity of a recommendation.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// ActionMaintain is the action when no pillar needs focus.
const ActionMaintain = "maintain"

const (
	// TieBreakWindow is how close DSA must be to the top pillar to win.
	TieBreakWindow = 5

	// AttentionThreshold is the minimum top pressure that warrants focus.
	AttentionThreshold = 30

	// DangerThreshold is the pressure above which focus is urgent.
	DangerThreshold = 70
)

// Recommendation tells the user what to work on next.
type Recommendation struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
	Action  string `json:"action"`
	Level   Level  `json:"level"`
}

const balancedTitle = "Balanced Progress Achieved"

func maintain(reason string) Recommendation {
	return Recommendation{
		Title:   balancedTitle,
		Message: "All pillars are stable. Maintain your current rhythm.",
		Reason:  reason,
		Action:  ActionMaintain,
		Level:   LevelSuccess,
	}
}

// Recommend picks the pillar under the most pressure. When DSA is within
// TieBreakWindow points of the top pillar, DSA is preferred.
func Recommend(profile pressure.Profile) Recommendation {
	if len(profile) == 0 {
		return maintain("No pressure data available.")
	}

	top, leader, tieBroken := rank(profile)

	if top.Pressure < AttentionThreshold {
		return maintain("No pillar shows significant pressure.")
	}

	level := LevelWarning
	if top.Pressure > DangerThreshold {
		level = LevelDanger
	}

	reason := fmt.Sprintf("%s pressure (%d) is currently the highest.", top.Label, top.Pressure)
	if tieBroken {
		reason = fmt.Sprintf("%s pressure (%d) is within %d points of %s (%d).",
			top.Label, top.Pressure, TieBreakWindow, leader.Label, leader.Pressure)
	}

	return Recommendation{
		Title:   fmt.Sprintf("%s Need Attention", top.Label),
		Message: fmt.Sprintf("Your %s pillar requires focus right now.", strings.ToLower(top.Label)),
		Reason:  reason,
		Action:  string(top.Pillar),
		Level:   level,
	}
}

// rank returns the reported top entry, the raw highest entry, and whether
// the DSA tie-break changed the outcome.
func rank(profile pressure.Profile) (top, leader pressure.Entry, tieBroken bool) {
	sorted := make(pressure.Profile, len(profile))
	copy(sorted, profile)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pressure > sorted[j].Pressure
	})

	leader = sorted[0]
	if leader.Pillar == pillar.DSA {
		return leader, leader, false
	}
	if dsa, ok := profile.Get(pillar.DSA); ok && leader.Pressure-dsa.Pressure <= TieBreakWindow {
		return dsa, leader, true
	}
	return leader, leader, false
}
