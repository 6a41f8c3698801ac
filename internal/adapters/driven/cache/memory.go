package cache

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/postnav/internal/core/ports/driven"
)

var _ driven.ResultCache = (*Memory)(nil)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process result cache. A zero TTL keeps entries until
// the process exits.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates an in-process cache.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value stored under group and key.
func (m *Memory) Get(_ context.Context, group, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[memoryKey(group, key)]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		m.mu.Lock()
		delete(m.entries, memoryKey(group, key))
		m.mu.Unlock()
		return nil, false, nil
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

// Set stores value under group and key.
func (m *Memory) Set(_ context.Context, group, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	e := entry{value: stored}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[memoryKey(group, key)] = e
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func memoryKey(group, key string) string {
	return group + "\x00" + key
}

// Nop never stores anything. Every lookup is a miss.
type Nop struct{}

var _ driven.ResultCache = Nop{}

// Get always misses.
func (Nop) Get(context.Context, string, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the value.
func (Nop) Set(context.Context, string, string, []byte) error { return nil }
