package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store for tests and throwaway sessions. Update is
// serialized by the mutex but individual writes inside fn are applied
// immediately, so a failed fn leaves earlier writes in place; the record
// stores sequence their writes accordingly (dependents first).
type Memory struct {
	mu    sync.Mutex
	slots map[string]string
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *Memory) RemoveMany(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.slots, k)
	}
	return nil
}

func (m *Memory) Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return fn(ctx, unlocked{m})
}

// unlocked bypasses nothing for Memory; it exists so the Store passed to
// Update satisfies the interface without re-entering Update.
type unlocked struct{ *Memory }

func (u unlocked) Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return fn(ctx, u)
}
