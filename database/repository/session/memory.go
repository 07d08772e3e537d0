package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryRepo is an in-process repository used for local runs and tests.
type MemoryRepo struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *MemoryRepo) get(key string) ([]byte, bool) {
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, false
	}
	return e.data, true
}

func (m *MemoryRepo) put(key string, data []byte, ttl time.Duration) {
	e := memoryEntry{data: data}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = e
}

func (m *MemoryRepo) Load(_ context.Context, key string, dest any) error {
	m.mu.Lock()
	data, ok := m.get(key)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse session %s: %w", key, err)
	}
	return nil
}

func (m *MemoryRepo) Save(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", key, err)
	}
	m.mu.Lock()
	m.put(key, data, ttl)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepo) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepo) SetFlag(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	m.put(key, []byte("1"), ttl)
	m.mu.Unlock()
	return nil
}

func (m *MemoryRepo) HasFlag(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.get(key)
	return ok, nil
}
