package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blaezi/blaezi/internal/pillar"
)

// The raw shapes mirror the schema; dates stay strings until parsed.

type rawDocument struct {
	Problems     []rawProblem     `json:"problems"`
	Projects     []rawProject     `json:"projects"`
	CareerEvents []rawCareerEvent `json:"careerEvents"`
}

type rawProblem struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Difficulty      string `json:"difficulty"`
	Topic           string `json:"topic"`
	Status          string `json:"status"`
	LastPracticedAt string `json:"lastPracticedAt"`
}

type rawProject struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Status       string             `json:"status"`
	Health       string             `json:"health"`
	LastWorkedAt string             `json:"lastWorkedAt"`
	Milestones   []pillar.Milestone `json:"milestones"`
}

type rawCareerEvent struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Date        string                   `json:"date"`
	Type        string                   `json:"type"`
	Completed   bool                     `json:"completed"`
	Preparation []pillar.PreparationStep `json:"preparation"`
}

func (r rawDocument) toDocument() (*Document, error) {
	doc := &Document{}

	for _, p := range r.Problems {
		prob := pillar.PracticeProblem{
			ID:         orNewID(p.ID),
			Title:      p.Title,
			Difficulty: pillar.Difficulty(p.Difficulty),
			Topic:      p.Topic,
			Status:     pillar.ProblemStatus(p.Status),
		}
		if prob.Status == "" {
			prob.Status = pillar.StatusNone
		}
		t, err := optionalDate(p.LastPracticedAt)
		if err != nil {
			return nil, fmt.Errorf("problem %q: %w", p.Title, err)
		}
		prob.LastPracticedAt = t
		doc.Problems = append(doc.Problems, prob)
	}

	for _, p := range r.Projects {
		proj := pillar.Project{
			ID:          orNewID(p.ID),
			Name:        p.Name,
			Description: p.Description,
			Status:      pillar.ProjectStatus(p.Status),
			Health:      pillar.Health(p.Health),
			Milestones:  p.Milestones,
		}
		if proj.Status == "" {
			proj.Status = pillar.ProjectActive
		}
		for i := range proj.Milestones {
			proj.Milestones[i].ID = orNewID(proj.Milestones[i].ID)
		}
		t, err := optionalDate(p.LastWorkedAt)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Name, err)
		}
		proj.LastWorkedAt = t
		doc.Projects = append(doc.Projects, proj)
	}

	for _, e := range r.CareerEvents {
		date, err := pillar.ParseDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("career event %q: %w", e.Title, err)
		}
		ev := pillar.CareerEvent{
			ID:          orNewID(e.ID),
			Title:       e.Title,
			Date:        date,
			Type:        e.Type,
			Completed:   e.Completed,
			Preparation: e.Preparation,
		}
		for i := range ev.Preparation {
			ev.Preparation[i].ID = orNewID(ev.Preparation[i].ID)
		}
		doc.CareerEvents = append(doc.CareerEvents, ev)
	}

	return doc, nil
}

func orNewID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := pillar.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
