package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaezi/blaezi/internal/pillar"
)

// careerRepo implements CareerRepo. Preparation steps live in a JSON
// column alongside their event.
type careerRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

const careerColumns = `id, title, type, date, completed, preparation`

func (r *careerRepo) List(ctx context.Context) ([]pillar.CareerEvent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+careerColumns+` FROM career_events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query career events: %w", err)
	}
	defer rows.Close()

	var out []pillar.CareerEvent
	for rows.Next() {
		e, err := scanCareerEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate career events: %w", err)
	}
	return out, nil
}

func (r *careerRepo) Get(ctx context.Context, id string) (*pillar.CareerEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+careerColumns+` FROM career_events WHERE id = ?`, id)
	e, err := scanCareerEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("career event %s: %w", id, pillar.ErrNotFound)
	}
	return e, err
}

func (r *careerRepo) Upsert(ctx context.Context, e *pillar.CareerEvent) error {
	steps := e.Preparation
	if steps == nil {
		steps = []pillar.PreparationStep{}
	}
	b, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("marshal preparation: %w", err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO career_events (id, seq, title, type, date, completed, preparation)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			type = excluded.type,
			date = excluded.date,
			completed = excluded.completed,
			preparation = excluded.preparation`,
		e.ID, seq, e.Title, e.Type, formatTime(e.Date), e.Completed, string(b))
	if err != nil {
		return fmt.Errorf("upsert career event %s: %w", e.ID, err)
	}
	return nil
}

func scanCareerEvent(row rowScanner) (*pillar.CareerEvent, error) {
	var (
		e             pillar.CareerEvent
		date, rawPrep string
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Type, &date, &e.Completed, &rawPrep); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan career event: %w", err)
	}

	t, err := parseTime(date)
	if err != nil {
		return nil, fmt.Errorf("career event %s date: %w", e.ID, err)
	}
	e.Date = t

	if err := json.Unmarshal([]byte(rawPrep), &e.Preparation); err != nil {
		return nil, fmt.Errorf("career event %s preparation: %w", e.ID, err)
	}
	return &e, nil
}
