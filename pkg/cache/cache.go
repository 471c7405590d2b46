// Package cache implements the process-wide read-through cache that sits in
// front of the relational store.
//
// Reads go through GetOrLoad: a hit inside the entry's lifetime returns the
// stored value without calling the loader; a miss calls the loader, stores the
// result and returns it. Writers call Evict synchronously after committing so
// collection reads never observe a write that already returned success.
//
// Concurrent misses on one key may each run the loader; the last Set wins.
// Every value a loader can produce is individually correct, so the only cost
// is a duplicate store read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/logitrack/logitrack/pkg/apperr"
	"github.com/logitrack/logitrack/pkg/logger"
)

// Expiry describes how long an entry lives.
//
// Sliding resets the lifetime on every hit. Absolute is a fixed deadline
// measured from the write. When both are set the sliding window never extends
// past the absolute deadline. A zero Expiry means the entry expires
// immediately and is never served.
type Expiry struct {
	Sliding  time.Duration
	Absolute time.Duration
}

// SlidingExpiry returns an Expiry whose lifetime restarts on each hit.
func SlidingExpiry(d time.Duration) Expiry { return Expiry{Sliding: d} }

// AbsoluteExpiry returns an Expiry with a fixed deadline d after the write.
func AbsoluteExpiry(d time.Duration) Expiry { return Expiry{Absolute: d} }

// IsZero reports whether the entry would expire immediately.
func (e Expiry) IsZero() bool { return e.Sliding <= 0 && e.Absolute <= 0 }

// initialTTL is the lifetime granted at write time.
func (e Expiry) initialTTL() time.Duration {
	switch {
	case e.Sliding > 0 && e.Absolute > 0:
		return min(e.Sliding, e.Absolute)
	case e.Sliding > 0:
		return e.Sliding
	default:
		return e.Absolute
	}
}

// Store is the per-key storage behind a Cache. Each call must be atomic with
// respect to the key it touches; no multi-key atomicity is expected.
type Store interface {
	// Get returns the stored bytes and true on a live hit. Sliding entries
	// have their lifetime renewed by a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, exp Expiry) error
	Delete(ctx context.Context, keys ...string) error
}

// Cache is the read-through layer. Construct once at process start with New
// and inject it into every service that reads or mutates cached resources.
type Cache struct {
	store     Store
	log       logger.Logger
	hits      metric.Int64Counter
	misses    metric.Int64Counter
	evictions metric.Int64Counter
}

// New returns a Cache over store. Metric instruments come from the global
// OTel meter provider, so call it after telemetry.Setup.
func New(store Store, log logger.Logger) *Cache {
	meter := otel.Meter("github.com/logitrack/logitrack/pkg/cache")
	hits, _ := meter.Int64Counter("cache.hits", metric.WithDescription("Cache lookups served from the store"))
	misses, _ := meter.Int64Counter("cache.misses", metric.WithDescription("Cache lookups that invoked the loader"))
	evictions, _ := meter.Int64Counter("cache.evictions", metric.WithDescription("Keys evicted by writes"))
	return &Cache{
		store:     store,
		log:       log.With("component", "cache"),
		hits:      hits,
		misses:    misses,
		evictions: evictions,
	}
}

// Loader reads a value from the backing store on a cache miss.
type Loader[T any] func(ctx context.Context) (T, error)

// GetOrLoad returns the value cached under key, or runs load on a miss and
// caches its result with exp.
//
// Loader errors are returned unchanged and never cached. A loader reporting
// apperr.ErrNotFound additionally removes the key, so an absence is never
// pinned. Store failures degrade to a miss and are only logged.
func GetOrLoad[T any](ctx context.Context, c *Cache, key string, exp Expiry, load Loader[T]) (T, error) {
	attrs := metric.WithAttributes(attribute.String("cache.key_family", family(key)))

	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.WarnContext(ctx, "cache read failed, loading from store", "key", key, "error", err)
	}
	if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			c.hits.Add(ctx, 1, attrs)
			return v, nil
		}
		c.log.WarnContext(ctx, "cache entry undecodable, reloading", "key", key, "error", err)
	}
	c.misses.Add(ctx, 1, attrs)

	v, err := load(ctx)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			if derr := c.store.Delete(context.WithoutCancel(ctx), key); derr != nil {
				c.log.WarnContext(ctx, "cache delete after miss failed", "key", key, "error", derr)
			}
		}
		return v, err
	}
	if exp.IsZero() {
		return v, nil
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return v, nil
	}
	// The load already succeeded; a caller abandoning the request must not
	// prevent the write from landing.
	if err := c.store.Set(context.WithoutCancel(ctx), key, encoded, exp); err != nil {
		c.log.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return v, nil
}

// Evict removes keys synchronously. Call it after a successful commit and
// before reporting success to the caller.
func (c *Cache) Evict(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.store.Delete(context.WithoutCancel(ctx), keys...); err != nil {
		return fmt.Errorf("cache evict %v: %w", keys, err)
	}
	for _, k := range keys {
		c.evictions.Add(ctx, 1, metric.WithAttributes(attribute.String("cache.key_family", family(k))))
	}
	c.log.DebugContext(ctx, "cache evicted", "keys", keys)
	return nil
}

// family returns the key prefix before the first ':' for metric attributes.
func family(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
