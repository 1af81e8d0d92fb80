package pressure

import "github.com/blaezi/blaezi/internal/pillar"

const (
	// DelayedWeight and AtRiskWeight are the raw pressure per project.
	DelayedWeight = 40
	AtRiskWeight  = 20
)

// ProjectRisk counts projects by resolved health.
type ProjectRisk struct {
	Active    int
	Completed int
	Delayed   int
	AtRisk    int
}

// AssessProjects tallies projects whose Health has already been resolved.
func AssessProjects(projects []pillar.Project) ProjectRisk {
	var r ProjectRisk
	for _, p := range projects {
		if p.IsCompleted() {
			r.Completed++
			continue
		}
		r.Active++
		switch p.Health {
		case pillar.HealthDelayed:
			r.Delayed++
		case pillar.HealthAtRisk:
			r.AtRisk++
		}
	}
	return r
}

// Raw returns the unnormalized risk score.
func (r ProjectRisk) Raw() int {
	return r.Delayed*DelayedWeight + r.AtRisk*AtRiskWeight
}

// ProjectPressure computes project pressure from resolved health values.
// Without active projects there is no pressure.
func ProjectPressure(projects []pillar.Project) int {
	r := AssessProjects(projects)
	if r.Active == 0 {
		return 0
	}
	return Normalize(float64(r.Raw()))
}
