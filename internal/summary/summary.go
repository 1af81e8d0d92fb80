// Package summary builds the weekly activity rollup across all pillars.
package summary

import (
	"fmt"
	"time"

	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/timemath"
)

// Tone hints how the summary should be presented.
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
)

// Window is the look-back period in days.
const Window = 7

// PositiveThreshold is the number of solved problems plus worked projects
// that makes a week positive.
const PositiveThreshold = 5

// Input is the raw record set the summary reads.
type Input struct {
	Problems     []pillar.PracticeProblem
	Projects     []pillar.Project
	CareerEvents []pillar.CareerEvent
}

// Weekly is the rollup shown on the dashboard.
type Weekly struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Tone    Tone   `json:"tone"`

	SolvedThisWeek int `json:"solvedThisWeek"`
	WorkedProjects int `json:"workedProjects"`
	UpcomingCareer int `json:"upcomingCareer"`
}

// BuildWeekly counts the last week's activity.
//
// UpcomingCareer counts events whose date is at most Window days in the
// past, which includes every future event regardless of distance.
func BuildWeekly(in Input, now time.Time) Weekly {
	w := Weekly{}
	for _, p := range in.Problems {
		if p.Status == pillar.StatusSolved && p.LastPracticedAt != nil &&
			timemath.DaysSince(*p.LastPracticedAt, now) <= Window {
			w.SolvedThisWeek++
		}
	}
	for _, p := range in.Projects {
		if p.LastWorkedAt != nil && timemath.DaysSince(*p.LastWorkedAt, now) <= Window {
			w.WorkedProjects++
		}
	}
	for _, e := range in.CareerEvents {
		if timemath.DaysSince(e.Date, now) <= Window {
			w.UpcomingCareer++
		}
	}

	if w.SolvedThisWeek == 0 && w.WorkedProjects == 0 && w.UpcomingCareer == 0 {
		w.Title = "Quiet Week"
		w.Message = "This week was relatively quiet. A small restart plan can help regain momentum."
		w.Tone = ToneNeutral
		return w
	}

	w.Title = "Weekly Progress Summary"
	w.Message = fmt.Sprintf(
		"You solved %d DSA problems, worked on %d project(s), and have %d upcoming career item(s).",
		w.SolvedThisWeek, w.WorkedProjects, w.UpcomingCareer,
	)
	w.Tone = ToneWarning
	if w.SolvedThisWeek+w.WorkedProjects >= PositiveThreshold {
		w.Tone = TonePositive
	}
	return w
}
