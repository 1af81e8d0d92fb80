package pressure

import (
	"time"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/timemath"
)

const (
	// SolvedPoints and RevisingPoints are the credit per problem status.
	SolvedPoints   = 1.0
	RevisingPoints = 0.5

	// StaleAfterDays is how long a problem may go unpracticed before it
	// costs StalePenalty points, regardless of status.
	StaleAfterDays = 7
	StalePenalty   = 0.25
)

// DSAScore computes practice proficiency in [0, 100]. An empty problem set
// scores 0.
func DSAScore(problems []pillar.PracticeProblem, now time.Time) int {
	if len(problems) == 0 {
		return 0
	}

	points := 0.0
	for _, p := range problems {
		switch p.Status {
		case pillar.StatusSolved:
			points += SolvedPoints
		case pillar.StatusRevising:
			points += RevisingPoints
		}
		if p.LastPracticedAt != nil && timemath.DaysSince(*p.LastPracticedAt, now) > StaleAfterDays {
			points -= StalePenalty
		}
	}

	if points < 0 {
		points = 0
	}
	return Normalize(points / float64(len(problems)) * 100)
}

// DSAPressure is the inverse of proficiency: a low score means high pressure.
func DSAPressure(score int) int {
	return Normalize(float64(Max - score))
}
