package cache

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryStore_Absolute(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	s := NewMemoryStore(WithClock(clock.Now))

	if err := s.Set(ctx, "k", []byte("v"), AbsoluteExpiry(30*time.Second)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	clock.Advance(29 * time.Second)
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatal("expected hit before deadline")
	}

	// Hits do not extend an absolute entry.
	clock.Advance(time.Second)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("expected miss at deadline")
	}
	if s.Len() != 0 {
		t.Fatalf("expired entry not dropped, Len = %d", s.Len())
	}
}

func TestMemoryStore_Sliding(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	s := NewMemoryStore(WithClock(clock.Now))

	_ = s.Set(ctx, "k", []byte("v"), SlidingExpiry(10*time.Minute))

	for range 5 {
		clock.Advance(9 * time.Minute)
		if _, ok, _ := s.Get(ctx, "k"); !ok {
			t.Fatal("expected sliding entry to be renewed by each hit")
		}
	}

	clock.Advance(10 * time.Minute)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("expected miss after an idle window")
	}
}

func TestMemoryStore_SlidingCappedByAbsolute(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	s := NewMemoryStore(WithClock(clock.Now))

	_ = s.Set(ctx, "k", []byte("v"), Expiry{Sliding: time.Minute, Absolute: 90 * time.Second})

	clock.Advance(50 * time.Second)
	if _, ok, _ := s.Get(ctx, "k"); !ok {
		t.Fatal("expected hit")
	}
	clock.Advance(50 * time.Second)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("sliding renewal must not pass the absolute deadline")
	}
}

func TestMemoryStore_ZeroExpiryNotStored(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Set(ctx, "k", []byte("old"), AbsoluteExpiry(time.Minute))
	_ = s.Set(ctx, "k", []byte("new"), Expiry{})

	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("zero expiry should remove the key")
	}
}

func TestMemoryStore_DeleteAndPurge(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	s := NewMemoryStore(WithClock(clock.Now))

	_ = s.Set(ctx, "a", []byte("1"), AbsoluteExpiry(time.Second))
	_ = s.Set(ctx, "b", []byte("2"), AbsoluteExpiry(time.Hour))
	_ = s.Set(ctx, "c", []byte("3"), AbsoluteExpiry(time.Hour))

	if err := s.Delete(ctx, "c", "missing"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	clock.Advance(2 * time.Second)
	if n := s.Purge(); n != 1 {
		t.Fatalf("Purge removed %d, want 1", n)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestMemoryStore_JanitorStopsOnCancel(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Janitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
