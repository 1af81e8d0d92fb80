package pillar

import (
	"time"

	"github.com/blaezi/blaezi/internal/timemath"
)

// HealthPolicy holds the inactivity thresholds used to classify projects
// that arrive without a precomputed health.
type HealthPolicy struct {
	AtRiskAfterDays  int `yaml:"at_risk_after_days"`
	DelayedAfterDays int `yaml:"delayed_after_days"`
}

// DefaultHealthPolicy returns the standard inactivity thresholds.
func DefaultHealthPolicy() HealthPolicy {
	return HealthPolicy{
		AtRiskAfterDays:  7,
		DelayedAfterDays: 14,
	}
}

// DeriveHealth resolves a project's health. Completed projects are always
// HealthCompleted; an explicit health is kept; otherwise health comes from
// the days since the project was last worked on.
func DeriveHealth(p Project, now time.Time, policy HealthPolicy) Health {
	if p.Status == ProjectCompleted {
		return HealthCompleted
	}
	if p.Health != HealthUnknown {
		return p.Health
	}
	if p.LastWorkedAt == nil {
		return HealthOnTrack
	}

	inactive := timemath.DaysSince(*p.LastWorkedAt, now)
	switch {
	case inactive > policy.DelayedAfterDays:
		return HealthDelayed
	case inactive > policy.AtRiskAfterDays:
		return HealthAtRisk
	default:
		return HealthOnTrack
	}
}

// ResolveHealth returns a copy of projects with every Health field resolved.
func ResolveHealth(projects []Project, now time.Time, policy HealthPolicy) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Health = DeriveHealth(p, now, policy)
		out[i] = p
	}
	return out
}
