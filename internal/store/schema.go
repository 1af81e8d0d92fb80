package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS problems (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		title TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		topic TEXT NOT NULL,
		status TEXT NOT NULL,
		last_practiced_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL,
		health TEXT NOT NULL,
		last_worked_at TEXT,
		milestones TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS career_events (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		title TEXT NOT NULL,
		type TEXT NOT NULL,
		date TEXT NOT NULL,
		completed INTEGER NOT NULL,
		preparation TEXT NOT NULL
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// sequenceCounter hands out the insertion order shared by all record
// tables. Lists are returned in this order so records keep the position
// they were first added at, across updates.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
