package pillar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Difficulty is a practice problem's difficulty rating.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// ProblemStatus is the user's current standing on a practice problem.
type ProblemStatus string

const (
	StatusNone     ProblemStatus = "none"
	StatusSolved   ProblemStatus = "solved"
	StatusRevising ProblemStatus = "revising"
	StatusWeak     ProblemStatus = "weak"
)

// PracticeProblem is a single DSA problem tracked by the user.
type PracticeProblem struct {
	ID              string        `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	Difficulty      Difficulty    `json:"difficulty" yaml:"difficulty"`
	Topic           string        `json:"topic" yaml:"topic"`
	Status          ProblemStatus `json:"status" yaml:"status"`
	LastPracticedAt *time.Time    `json:"lastPracticedAt,omitempty" yaml:"lastPracticedAt,omitempty"`
}

// NewProblem creates an unattempted problem with a fresh ID.
func NewProblem(title string, difficulty Difficulty, topic string) PracticeProblem {
	return PracticeProblem{
		ID:         uuid.NewString(),
		Title:      title,
		Difficulty: difficulty,
		Topic:      topic,
		Status:     StatusNone,
	}
}

// SetStatus records a status change and stamps the practice time.
func (p *PracticeProblem) SetStatus(status ProblemStatus, now time.Time) {
	p.Status = status
	p.LastPracticedAt = &now
}

// ParseProblemStatus validates a status string.
func ParseProblemStatus(s string) (ProblemStatus, error) {
	switch st := ProblemStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusNone, StatusSolved, StatusRevising, StatusWeak:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown problem status %q", ErrInvalidInput, s)
	}
}

// ParseDifficulty validates a difficulty string, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s)
	}
}

// Uncategorized is the topic of problems that have none.
const Uncategorized = "Uncategorized"

// TopicProgress counts solved problems within one topic.
type TopicProgress struct {
	Topic  string
	Solved int
	Total  int
}

// ByTopic groups problems by topic, sorted by topic name.
func ByTopic(problems []PracticeProblem) []TopicProgress {
	index := make(map[string]int)
	var out []TopicProgress
	for _, p := range problems {
		topic := strings.TrimSpace(p.Topic)
		if topic == "" {
			topic = Uncategorized
		}
		i, ok := index[topic]
		if !ok {
			i = len(out)
			index[topic] = i
			out = append(out, TopicProgress{Topic: topic})
		}
		out[i].Total++
		if p.Status == StatusSolved {
			out[i].Solved++
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Topic < out[b].Topic })
	return out
}
