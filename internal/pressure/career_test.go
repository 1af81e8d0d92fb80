package pressure

import (
	"testing"
	"time"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/timemath"
)

func in(days int) time.Time {
	return now.Add(time.Duration(days) * timemath.Day)
}

func steps(done, total int) []pillar.PreparationStep {
	out := make([]pillar.PreparationStep, total)
	for i := range out {
		out[i].Done = i < done
	}
	return out
}

func TestTimeUrgency(t *testing.T) {
	tests := []struct{ days, want int }{
		{-5, 100},
		{0, 100},
		{1, 90},
		{7, 90},
		{8, 75},
		{14, 75},
		{15, 50},
		{30, 50},
		{31, 30},
		{60, 30},
		{61, 15},
		{365, 15},
	}
	for _, tt := range tests {
		if got := TimeUrgency(tt.days); got != tt.want {
			t.Errorf("TimeUrgency(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestCareerPressure_Empty(t *testing.T) {
	if got := CareerPressure(nil, now); got != 0 {
		t.Errorf("CareerPressure(nil) = %d, want 0", got)
	}
}

func TestCareerPressure_DueTodayUnprepared(t *testing.T) {
	events := []pillar.CareerEvent{{Title: "Placement form", Date: now}}
	if got := CareerPressure(events, now); got != 100 {
		t.Errorf("CareerPressure = %d, want 100", got)
	}
}

func TestCareerPressure_FullyPreparedNullifiesUrgency(t *testing.T) {
	e := pillar.CareerEvent{Date: in(10), Preparation: steps(4, 4)}
	if u := TimeUrgency(timemath.DaysUntil(e.Date, now)); u != 75 {
		t.Fatalf("urgency = %d, want 75", u)
	}
	if f := PrepFactor(e); f != 0 {
		t.Fatalf("prep factor = %v, want 0", f)
	}
	if got := CareerPressure([]pillar.CareerEvent{e}, now); got != 0 {
		t.Errorf("CareerPressure = %d, want 0", got)
	}
}

func TestCareerPressure_IgnoresCompleted(t *testing.T) {
	events := []pillar.CareerEvent{
		{Date: in(-3), Completed: true},
		{Date: in(0), Completed: true},
	}
	if got := CareerPressure(events, now); got != 0 {
		t.Errorf("CareerPressure = %d, want 0", got)
	}
}

func TestCareerPressure_WorstEventDominates(t *testing.T) {
	// Urgencies 15, 30, and 90 * 0.5; the completed event is skipped.
	events := []pillar.CareerEvent{
		{Date: in(90)},
		{Date: in(45)},
		{Date: in(5), Preparation: steps(1, 2)},
		{Date: in(2), Completed: true},
	}
	if got := CareerPressure(events, now); got != 45 {
		t.Errorf("CareerPressure = %d, want 45", got)
	}
}

func TestEventPressure_RoundsPartialPreparation(t *testing.T) {
	// 50 * (1 - 1/3) = 33.33 -> 33
	e := pillar.CareerEvent{Date: in(20), Preparation: steps(1, 3)}
	if got := EventPressure(e, now); got != 33 {
		t.Errorf("EventPressure = %d, want 33", got)
	}
}
