package pillar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blaezi/blaezi/internal/timemath"
)

// PreparationStep is one checklist item for a career event.
type PreparationStep struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Done  bool   `json:"done" yaml:"done"`
}

// CareerEvent is a dated career deadline: an exam, application, or interview.
type CareerEvent struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Date        time.Time         `json:"date" yaml:"date"`
	Type        string            `json:"type" yaml:"type"`
	Completed   bool              `json:"completed" yaml:"completed"`
	Preparation []PreparationStep `json:"preparation" yaml:"preparation"`
}

// NewCareerEvent creates an open event with a fresh ID.
func NewCareerEvent(title, eventType string, date time.Time) CareerEvent {
	return CareerEvent{
		ID:    uuid.NewString(),
		Title: title,
		Type:  eventType,
		Date:  date,
	}
}

// PreparationProgress returns the number of done steps and the total.
func (e *CareerEvent) PreparationProgress() (done, total int) {
	for _, s := range e.Preparation {
		if s.Done {
			done++
		}
	}
	return done, len(e.Preparation)
}

// AddStep appends a preparation step and returns it.
func (e *CareerEvent) AddStep(title string) PreparationStep {
	s := PreparationStep{ID: uuid.NewString(), Title: title}
	e.Preparation = append(e.Preparation, s)
	return s
}

// ToggleStep marks a preparation step done or undone.
func (e *CareerEvent) ToggleStep(stepID string, done bool) error {
	for i := range e.Preparation {
		if e.Preparation[i].ID == stepID {
			e.Preparation[i].Done = done
			return nil
		}
	}
	return fmt.Errorf("preparation step %q: %w", stepID, ErrNotFound)
}

// RemoveStep deletes a preparation step, keeping the order of the rest.
func (e *CareerEvent) RemoveStep(stepID string) error {
	for i := range e.Preparation {
		if e.Preparation[i].ID == stepID {
			e.Preparation = append(e.Preparation[:i], e.Preparation[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("preparation step %q: %w", stepID, ErrNotFound)
}

// SortByDeadline returns the events ordered by days left, soonest first.
// Ties keep their input order.
func SortByDeadline(events []CareerEvent, now time.Time) []CareerEvent {
	out := make([]CareerEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return timemath.DaysUntil(out[i].Date, now) < timemath.DaysUntil(out[j].Date, now)
	})
	return out
}

// dateLayouts are the accepted deadline formats, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	timemath.DayLayout,
}

// ParseDate parses a deadline or timestamp. Date-only values are read in
// local time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %q", ErrInvalidInput, s)
}
