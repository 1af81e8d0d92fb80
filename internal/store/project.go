package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaezi/blaezi/internal/pillar"
)

// projectRepo implements ProjectRepo. Milestones are stored as a JSON
// array column since they are always read and written with their project.
type projectRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

const projectColumns = `id, name, description, status, health, last_worked_at, milestones`

func (r *projectRepo) List(ctx context.Context) ([]pillar.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var out []pillar.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

func (r *projectRepo) Get(ctx context.Context, id string) (*pillar.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, pillar.ErrNotFound)
	}
	return p, err
}

func (r *projectRepo) Upsert(ctx context.Context, p *pillar.Project) error {
	milestones := p.Milestones
	if milestones == nil {
		milestones = []pillar.Milestone{}
	}
	b, err := json.Marshal(milestones)
	if err != nil {
		return fmt.Errorf("marshal milestones: %w", err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO projects (id, seq, name, description, status, health, last_worked_at, milestones)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			status = excluded.status,
			health = excluded.health,
			last_worked_at = excluded.last_worked_at,
			milestones = excluded.milestones`,
		p.ID, seq, p.Name, p.Description, string(p.Status), string(p.Health),
		nullTime(p.LastWorkedAt), string(b))
	if err != nil {
		return fmt.Errorf("upsert project %s: %w", p.ID, err)
	}
	return nil
}

func scanProject(row rowScanner) (*pillar.Project, error) {
	var (
		p                     pillar.Project
		status, health, rawMs string
		lastWorked            sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &status, &health, &lastWorked, &rawMs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	p.Status = pillar.ProjectStatus(status)
	p.Health = pillar.Health(health)

	t, err := timePtr(lastWorked)
	if err != nil {
		return nil, fmt.Errorf("project %s last_worked_at: %w", p.ID, err)
	}
	p.LastWorkedAt = t

	if err := json.Unmarshal([]byte(rawMs), &p.Milestones); err != nil {
		return nil, fmt.Errorf("project %s milestones: %w", p.ID, err)
	}
	return &p, nil
}
