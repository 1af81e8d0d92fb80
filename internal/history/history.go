// Package history keeps one pressure snapshot per calendar day in a
// key-value store.
//
// The read-modify-write in Save is serialized within a process but is not
// atomic across processes: two writers can race and one day's update may be
// lost. Strong consistency is not a goal for single-user local history.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/blaezi/blaezi/internal/logger"
	"github.com/blaezi/blaezi/internal/pillar"
	"github.com/blaezi/blaezi/internal/pressure"
	"github.com/blaezi/blaezi/internal/timemath"
)

// StorageKey is the single key the history list is stored under.
const StorageKey = "blaezi_pressure_history"

// DefaultRetention is the number of daily snapshots kept by default.
const DefaultRetention = 365

// KV is the durable key-value storage the history lives in.
type KV interface {
	// Get returns the value and true, or "" and false when the key is unset.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Snapshot is one day's recorded pressure profile.
type Snapshot struct {
	Date      string                 `json:"date"`
	Pressures map[pillar.Key]float64 `json:"pressures"`
}

// SnapshotOf converts a profile into a snapshot for the given day.
func SnapshotOf(day string, profile pressure.Profile) Snapshot {
	pressures := make(map[pillar.Key]float64, len(profile))
	for _, e := range profile {
		pressures[e.Pillar] = float64(e.Pressure)
	}
	return Snapshot{Date: day, Pressures: pressures}
}

// Store reads and writes the snapshot list.
type Store struct {
	mu        sync.Mutex
	kv        KV
	now       func() time.Time
	retention int
	log       *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to pick today's key.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRetention keeps only the newest n snapshots after each save.
// Zero keeps everything.
func WithRetention(n int) Option {
	return func(s *Store) { s.retention = n }
}

// WithLogger sets the logger used to report unreadable history.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore creates a history store over kv.
func NewStore(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:        kv,
		now:       time.Now,
		retention: DefaultRetention,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save records the profile as today's snapshot, replacing any earlier
// snapshot from the same day.
func (s *Store) Save(ctx context.Context, profile pressure.Profile) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SnapshotOf(timemath.CalendarDay(s.now()), profile)

	existing := s.load(ctx)
	kept := existing[:0]
	for _, e := range existing {
		if e.Date != snap.Date {
			kept = append(kept, e)
		}
	}
	kept = append(kept, snap)

	if s.retention > 0 && len(kept) > s.retention {
		kept = kept[len(kept)-s.retention:]
	}

	b, err := json.Marshal(kept)
	if err != nil {
		return Snapshot{}, fmt.Errorf("marshal history: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(b)); err != nil {
		return Snapshot{}, fmt.Errorf("write history: %w", err)
	}
	return snap, nil
}

// History returns all snapshots, oldest first. Missing, unreadable, or
// corrupt history reads as empty.
func (s *Store) History(ctx context.Context) []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) []Snapshot {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warn("read pressure history failed; treating as empty", "error", err)
		return []Snapshot{}
	}
	if !ok || raw == "" {
		return []Snapshot{}
	}

	var snaps []Snapshot
	if err := json.Unmarshal([]byte(raw), &snaps); err != nil {
		s.log.Warn("pressure history is corrupt; treating as empty", "error", err)
		return []Snapshot{}
	}
	if snaps == nil {
		return []Snapshot{}
	}
	return snaps
}
