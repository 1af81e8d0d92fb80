// Package dashboard runs the full recompute pipeline: resolve project
// health, score each pillar, record today's snapshot, and derive focus,
// momentum, trends, and the weekly summary.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/blaezi/blaezi/internal/focus"
	"github.com/blaezi/blaezi/internal/history"
	"github.com/blaezi/blaezi/internal/logger"
	"github.com/blaezi/blaezi/internal/metrics"
	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/pressure"
	"github.com/blaezi/blaezi/internal/store"
	"github.com/blaezi/blaezi/internal/summary"
	"github.com/blaezi/blaezi/internal/trend"
)

// Records is the raw input to a recompute.
type Records struct {
	Problems     []pillar.PracticeProblem
	Projects     []pillar.Project
	CareerEvents []pillar.CareerEvent
}

// Dashboard is everything computed from one set of records.
type Dashboard struct {
	ComputedAt time.Time

	// Projects carry their resolved health.
	Projects []pillar.Project
	Risk     pressure.ProjectRisk
	DSAScore int

	Profile pressure.Profile
	Score   int
	Focus   focus.Recommendation

	// Saved is false when today's snapshot could not be written.
	Saved        bool
	History      []history.Snapshot
	Trend        trend.Direction
	PillarTrends map[pillar.Key]trend.Direction

	Weekly summary.Weekly
}

// Service computes dashboards and records pressure history.
type Service struct {
	history *history.Store
	metrics *metrics.Metrics
	policy  pillar.HealthPolicy
	now     func() time.Time
	log     *logger.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics updates the given collectors on every compute.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithHealthPolicy sets the inactivity thresholds for derived health.
func WithHealthPolicy(p pillar.HealthPolicy) Option {
	return func(s *Service) { s.policy = p }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// NewService creates a dashboard service writing snapshots to hist.
func NewService(hist *history.Store, opts ...Option) *Service {
	s := &Service{
		history: hist,
		policy:  pillar.DefaultHealthPolicy(),
		now:     time.Now,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compute runs the pipeline over rec. A failed snapshot write is logged
// and reported through Dashboard.Saved; it does not fail the compute.
func (s *Service) Compute(ctx context.Context, rec Records) (*Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now()

	d := &Dashboard{ComputedAt: now}
	d.Projects = pillar.ResolveHealth(rec.Projects, now, s.policy)
	d.Risk = pressure.AssessProjects(d.Projects)
	d.DSAScore = pressure.DSAScore(rec.Problems, now)

	d.Profile = pressure.BuildProfile(pressure.Inputs{
		Projects: pressure.ProjectPressure(d.Projects),
		DSA:      pressure.DSAPressure(d.DSAScore),
		Career:   pressure.CareerPressure(rec.CareerEvents, now),
	})
	d.Score = pressure.BlaeziScore(d.Profile)
	d.Focus = focus.Recommend(d.Profile)

	if _, err := s.history.Save(ctx, d.Profile); err != nil {
		s.log.Warn("save pressure snapshot failed", "error", err)
	} else {
		d.Saved = true
	}
	d.History = s.history.History(ctx)
	d.Trend = trend.Compute(d.History, trend.Overall)
	d.PillarTrends = trend.ForPillars(d.History)

	d.Weekly = summary.BuildWeekly(summary.Input{
		Problems:     rec.Problems,
		Projects:     d.Projects,
		CareerEvents: rec.CareerEvents,
	}, now)

	s.observe(d)
	s.log.Debug("dashboard computed",
		"score", d.Score,
		"focus", d.Focus.Action,
		"trend", d.Trend,
		"snapshots", len(d.History),
	)
	return d, nil
}

func (s *Service) observe(d *Dashboard) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveProfile(d.Profile)
	s.metrics.BlaeziScore.Set(float64(d.Score))
	s.metrics.DSAScore.Set(float64(d.DSAScore))
	s.metrics.HistorySnapshots.Set(float64(len(d.History)))
	if d.Saved {
		s.metrics.SnapshotsSaved.Inc()
	}
}

// LoadRecords reads every record from the store.
func LoadRecords(ctx context.Context, st *store.Store) (Records, error) {
	var (
		rec Records
		err error
	)
	if rec.Problems, err = st.Problems().List(ctx); err != nil {
		return rec, fmt.Errorf("load problems: %w", err)
	}
	if rec.Projects, err = st.Projects().List(ctx); err != nil {
		return rec, fmt.Errorf("load projects: %w", err)
	}
	if rec.CareerEvents, err = st.Careers().List(ctx); err != nil {
		return rec, fmt.Errorf("load career events: %w", err)
	}
	return rec, nil
}
