// Package kvstore provides key-value backends for the pressure history:
// in-memory, Redis, and PostgreSQL. The default SQLite backend lives in
// internal/store next to the record tables.
package kvstore

import (
	"context"
	"sync"
)

// Memory is a process-local KV, used for dry runs and tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
