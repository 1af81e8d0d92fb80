package pillar

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the explicit lifecycle status of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

// Health is a project's risk classification.
type Health string

const (
	HealthUnknown   Health = ""
	HealthOnTrack   Health = "on-track"
	HealthAtRisk    Health = "at-risk"
	HealthDelayed   Health = "delayed"
	HealthCompleted Health = "completed"
)

// Milestone is one ordered checkpoint of a project.
type Milestone struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Project is a side project with milestones and an activity timestamp.
type Project struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	Milestones   []Milestone   `json:"milestones" yaml:"milestones"`
	LastWorkedAt *time.Time    `json:"lastWorkedAt,omitempty" yaml:"lastWorkedAt,omitempty"`
	Status       ProjectStatus `json:"status" yaml:"status"`
	Health       Health        `json:"health,omitempty" yaml:"health,omitempty"`
}

// NewProject creates an active project with a fresh ID.
func NewProject(name, description string) Project {
	return Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Status:      ProjectActive,
	}
}

// IsCompleted reports whether the project is finished, by status or health.
func (p *Project) IsCompleted() bool {
	return p.Status == ProjectCompleted || p.Health == HealthCompleted
}

// CompletedMilestones returns the number of completed milestones.
func (p *Project) CompletedMilestones() int {
	n := 0
	for _, m := range p.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// Progress returns milestone completion as a rounded percentage.
// A project without milestones has zero progress.
func (p *Project) Progress() int {
	total := len(p.Milestones)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(p.CompletedMilestones()) / float64(total) * 100))
}

// AddMilestone appends a new milestone and returns it.
func (p *Project) AddMilestone(title string) Milestone {
	m := Milestone{ID: uuid.NewString(), Title: title}
	p.Milestones = append(p.Milestones, m)
	return m
}

// ToggleMilestone sets a milestone's completion and marks the project as
// worked on at now.
func (p *Project) ToggleMilestone(milestoneID string, completed bool, now time.Time) error {
	for i := range p.Milestones {
		if p.Milestones[i].ID == milestoneID {
			p.Milestones[i].Completed = completed
			p.LastWorkedAt = &now
			return nil
		}
	}
	return fmt.Errorf("milestone %q: %w", milestoneID, ErrNotFound)
}

// ParseHealth validates a health string. The empty string is accepted and
// means the health has not been resolved yet.
func ParseHealth(s string) (Health, error) {
	switch h := Health(s); h {
	case HealthUnknown, HealthOnTrack, HealthAtRisk, HealthDelayed, HealthCompleted:
		return h, nil
	default:
		return "", fmt.Errorf("%w: unknown project health %q", ErrInvalidInput, s)
	}
}
