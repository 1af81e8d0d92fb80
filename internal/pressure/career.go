package pressure

import (
	"math"
	"time"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/timemath"
)

// urgencySteps maps days left (upper bound, inclusive) to time urgency.
var urgencySteps = []struct {
	maxDays int
	urgency int
}{
	{0, 100},
	{7, 90},
	{14, 75},
	{30, 50},
	{60, 30},
}

// distantUrgency applies to deadlines beyond the last step.
const distantUrgency = 15

// TimeUrgency maps days until a deadline to a step urgency in [15, 100].
func TimeUrgency(daysLeft int) int {
	for _, s := range urgencySteps {
		if daysLeft <= s.maxDays {
			return s.urgency
		}
	}
	return distantUrgency
}

// PrepFactor is the share of preparation still outstanding. Events without
// a checklist get no mitigation.
func PrepFactor(e pillar.CareerEvent) float64 {
	done, total := e.PreparationProgress()
	if total == 0 {
		return 1
	}
	return 1 - float64(done)/float64(total)
}

// EventPressure is the pressure of a single open career event.
func EventPressure(e pillar.CareerEvent, now time.Time) int {
	urgency := TimeUrgency(timemath.DaysUntil(e.Date, now))
	return int(math.Round(float64(urgency) * PrepFactor(e)))
}

// CareerPressure is the worst pressure across all open events. Completed
// events are ignored even when overdue.
func CareerPressure(events []pillar.CareerEvent, now time.Time) int {
	worst := 0
	for _, e := range events {
		if e.Completed {
			continue
		}
		if p := EventPressure(e, now); p > worst {
			worst = p
		}
	}
	return worst
}
