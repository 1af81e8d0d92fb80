package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/blaezi/blaezi/internal/pillar"
)

// ProblemRepo manages practice problems.
type ProblemRepo interface {
	// List returns all problems in insertion order.
	List(ctx context.Context) ([]pillar.PracticeProblem, error)

	// Get returns one problem; the error wraps pillar.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*pillar.PracticeProblem, error)

	// Upsert inserts the problem or replaces the one with the same ID.
	Upsert(ctx context.Context, p *pillar.PracticeProblem) error
}

// ProjectRepo manages projects and their milestones.
type ProjectRepo interface {
	List(ctx context.Context) ([]pillar.Project, error)
	Get(ctx context.Context, id string) (*pillar.Project, error)
	Upsert(ctx context.Context, p *pillar.Project) error
}

// CareerRepo manages career events and their preparation steps.
type CareerRepo interface {
	List(ctx context.Context) ([]pillar.CareerEvent, error)
	Get(ctx context.Context, id string) (*pillar.CareerEvent, error)
	Upsert(ctx context.Context, e *pillar.CareerEvent) error
}

// Timestamps are stored as RFC 3339 text in UTC.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func timePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
