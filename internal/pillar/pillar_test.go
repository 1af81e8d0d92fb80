package pillar

import (
	"errors"
	"testing"
	"time"

	"github.com/blaezi/blaezi/internal/timemath"
)

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func daysAgo(n int) *time.Time {
	t := now.Add(-time.Duration(n) * timemath.Day)
	return &t
}

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Projects, "Projects"},
		{DSA, "DSA"},
		{Career, "Career / Exams"},
		{Key("other"), "other"},
	}
	for _, tt := range tests {
		if got := tt.key.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseKey(t *testing.T) {
	if k, err := ParseKey("dsa"); err != nil || k != DSA {
		t.Errorf("ParseKey(dsa) = %q, %v", k, err)
	}
	if _, err := ParseKey("hobbies"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseKey(hobbies) error = %v, want ErrInvalidInput", err)
	}
}

func TestParseProblemStatus(t *testing.T) {
	for _, s := range []string{"none", "solved", "Revising", " weak "} {
		if _, err := ParseProblemStatus(s); err != nil {
			t.Errorf("ParseProblemStatus(%q): %v", s, err)
		}
	}
	if _, err := ParseProblemStatus("done"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty("hard"); err != nil || d != Hard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("extreme"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSetStatusStampsPracticeTime(t *testing.T) {
	p := NewProblem("Two Sum", Easy, "Arrays")
	if p.ID == "" {
		t.Fatal("expected generated ID")
	}
	if p.Status != StatusNone || p.LastPracticedAt != nil {
		t.Fatalf("new problem = %+v, want unattempted", p)
	}

	p.SetStatus(StatusSolved, now)
	if p.Status != StatusSolved {
		t.Errorf("status = %q, want solved", p.Status)
	}
	if p.LastPracticedAt == nil || !p.LastPracticedAt.Equal(now) {
		t.Errorf("LastPracticedAt = %v, want %v", p.LastPracticedAt, now)
	}
}

func TestByTopic(t *testing.T) {
	problems := []PracticeProblem{
		{Title: "Word Ladder", Topic: "Graphs", Status: StatusSolved},
		{Title: "Two Sum", Topic: "Arrays", Status: StatusSolved},
		{Title: "Dijkstra", Topic: "Graphs", Status: StatusWeak},
		{Title: "Misc", Topic: "  "},
	}

	got := ByTopic(problems)
	want := []TopicProgress{
		{Topic: "Arrays", Solved: 1, Total: 1},
		{Topic: "Graphs", Solved: 1, Total: 2},
		{Topic: Uncategorized, Solved: 0, Total: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("ByTopic = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ByTopic[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := ByTopic(nil); len(got) != 0 {
		t.Errorf("ByTopic(nil) = %+v, want empty", got)
	}
}

func TestProjectProgress(t *testing.T) {
	p := NewProject("Blaezi", "")
	if p.Progress() != 0 {
		t.Errorf("empty progress = %d, want 0", p.Progress())
	}

	a := p.AddMilestone("design")
	p.AddMilestone("build")
	p.AddMilestone("ship")

	if err := p.ToggleMilestone(a.ID, true, now); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := p.CompletedMilestones(); got != 1 {
		t.Errorf("completed = %d, want 1", got)
	}
	if got := p.Progress(); got != 33 {
		t.Errorf("progress = %d, want 33", got)
	}
	if p.LastWorkedAt == nil || !p.LastWorkedAt.Equal(now) {
		t.Errorf("LastWorkedAt = %v, want %v", p.LastWorkedAt, now)
	}
}

func TestToggleMilestone_Unknown(t *testing.T) {
	p := NewProject("Blaezi", "")
	err := p.ToggleMilestone("missing", true, now)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if p.LastWorkedAt != nil {
		t.Error("LastWorkedAt should not change on a failed toggle")
	}
}

func TestDeriveHealth(t *testing.T) {
	policy := DefaultHealthPolicy()

	tests := []struct {
		name    string
		project Project
		want    Health
	}{
		{"completed status wins", Project{Status: ProjectCompleted, Health: HealthDelayed}, HealthCompleted},
		{"explicit health kept", Project{Status: ProjectActive, Health: HealthAtRisk, LastWorkedAt: daysAgo(0)}, HealthAtRisk},
		{"never worked", Project{Status: ProjectActive}, HealthOnTrack},
		{"fresh", Project{LastWorkedAt: daysAgo(3)}, HealthOnTrack},
		{"seven days is still on track", Project{LastWorkedAt: daysAgo(7)}, HealthOnTrack},
		{"eight days at risk", Project{LastWorkedAt: daysAgo(8)}, HealthAtRisk},
		{"fourteen days at risk", Project{LastWorkedAt: daysAgo(14)}, HealthAtRisk},
		{"fifteen days delayed", Project{LastWorkedAt: daysAgo(15)}, HealthDelayed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveHealth(tt.project, now, policy); got != tt.want {
				t.Errorf("DeriveHealth = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveHealthDoesNotMutateInput(t *testing.T) {
	in := []Project{{ID: "a", LastWorkedAt: daysAgo(20)}}
	out := ResolveHealth(in, now, DefaultHealthPolicy())
	if out[0].Health != HealthDelayed {
		t.Errorf("resolved health = %q, want delayed", out[0].Health)
	}
	if in[0].Health != HealthUnknown {
		t.Errorf("input health mutated to %q", in[0].Health)
	}
}

func TestCareerEventSteps(t *testing.T) {
	e := NewCareerEvent("GATE", "exam", now.Add(30*timemath.Day))
	a := e.AddStep("syllabus")
	b := e.AddStep("mock test")
	e.AddStep("revision")

	if err := e.ToggleStep(a.ID, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	done, total := e.PreparationProgress()
	if done != 1 || total != 3 {
		t.Errorf("progress = %d/%d, want 1/3", done, total)
	}

	if err := e.RemoveStep(b.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(e.Preparation) != 2 || e.Preparation[0].ID != a.ID {
		t.Errorf("steps after remove = %+v", e.Preparation)
	}
	if err := e.RemoveStep(b.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second remove error = %v, want ErrNotFound", err)
	}
	if err := e.ToggleStep("nope", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("toggle missing error = %v, want ErrNotFound", err)
	}
}

func TestSortByDeadline(t *testing.T) {
	events := []CareerEvent{
		{ID: "late", Date: now.Add(40 * timemath.Day)},
		{ID: "overdue", Date: now.Add(-2 * timemath.Day)},
		{ID: "soon", Date: now.Add(3 * timemath.Day)},
	}
	sorted := SortByDeadline(events, now)
	want := []string{"overdue", "soon", "late"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].ID, id)
		}
	}
	if events[0].ID != "late" {
		t.Error("input slice was reordered")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-07-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.July || d.Day() != 1 {
		t.Errorf("ParseDate = %v", d)
	}
	if _, err := ParseDate("2025-07-01T09:00:00Z"); err != nil {
		t.Errorf("RFC3339: %v", err)
	}
	if _, err := ParseDate("next friday"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
