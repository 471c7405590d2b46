package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
	sliding   time.Duration
	deadline  time.Time // zero when the entry has no absolute bound
}

// MemoryStore is an in-process Store. Every call holds a single mutex, so
// per-key get, set and delete are atomic. Expired entries are dropped lazily
// on Get and in bulk by Janitor.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, mainly for tests that step through expiry.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryStore) { m.now = now }
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	now := m.now()
	if !now.Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, false, nil
	}
	if e.sliding > 0 {
		next := now.Add(e.sliding)
		if !e.deadline.IsZero() && next.After(e.deadline) {
			next = e.deadline
		}
		e.expiresAt = next
	}
	return e.value, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, exp Expiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if exp.IsZero() {
		delete(m.entries, key)
		return nil
	}
	now := m.now()
	e := &memoryEntry{
		value:     value,
		expiresAt: now.Add(exp.initialTTL()),
		sliding:   exp.Sliding,
	}
	if exp.Absolute > 0 {
		e.deadline = now.Add(exp.Absolute)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

// Len returns the number of entries, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Purge drops every expired entry and returns how many were removed.
func (m *MemoryStore) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	n := 0
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
			n++
		}
	}
	return n
}

// Janitor calls Purge every interval until ctx is done.
func (m *MemoryStore) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Purge()
		}
	}
}
