package hintstore

import (
	"context"
	"sync"
)

// MemoryStore keeps the hint in process memory. Suitable for tests and for
// embedded clients that do not survive restarts anyway.
type MemoryStore struct {
	mu    sync.RWMutex
	value bool
}

// NewMemoryStore creates an in-memory hint store with the hint unset.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, nil
}

func (m *MemoryStore) Set(ctx context.Context, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	return m.Set(ctx, false)
}

var _ Store = (*MemoryStore)(nil)
