package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blaezi/blaezi/internal/pillar"
)

// problemRepo implements ProblemRepo with raw SQL.
type problemRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

const problemColumns = `id, title, difficulty, topic, status, last_practiced_at`

func (r *problemRepo) List(ctx context.Context) ([]pillar.PracticeProblem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+problemColumns+` FROM problems ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	defer rows.Close()

	var out []pillar.PracticeProblem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems: %w", err)
	}
	return out, nil
}

func (r *problemRepo) Get(ctx context.Context, id string) (*pillar.PracticeProblem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+problemColumns+` FROM problems WHERE id = ?`, id)
	p, err := scanProblem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("problem %s: %w", id, pillar.ErrNotFound)
	}
	return p, err
}

func (r *problemRepo) Upsert(ctx context.Context, p *pillar.PracticeProblem) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO problems (id, seq, title, difficulty, topic, status, last_practiced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			difficulty = excluded.difficulty,
			topic = excluded.topic,
			status = excluded.status,
			last_practiced_at = excluded.last_practiced_at`,
		p.ID, seq, p.Title, string(p.Difficulty), p.Topic, string(p.Status), nullTime(p.LastPracticedAt))
	if err != nil {
		return fmt.Errorf("upsert problem %s: %w", p.ID, err)
	}
	return nil
}

func scanProblem(row rowScanner) (*pillar.PracticeProblem, error) {
	var (
		p                  pillar.PracticeProblem
		difficulty, status string
		lastPracticed      sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Title, &difficulty, &p.Topic, &status, &lastPracticed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan problem: %w", err)
	}
	p.Difficulty = pillar.Difficulty(difficulty)
	p.Status = pillar.ProblemStatus(status)

	t, err := timePtr(lastPracticed)
	if err != nil {
		return nil, fmt.Errorf("problem %s last_practiced_at: %w", p.ID, err)
	}
	p.LastPracticedAt = t
	return &p, nil
}
