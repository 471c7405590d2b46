package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps redis.Client with pooled, bounded-timeout settings.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient parses url, applies pool settings and verifies connectivity
// via Ping.
func NewRedisClient(url string) (*RedisClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	opts.PoolSize = 10
	opts.MinIdleConns = 2
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisClient{client: rdb}, nil
}

// Ping checks the Redis connection health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client returns the underlying redis.Client.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// redisEnvelope carries the expiry policy next to the value so a hit can
// renew a sliding entry without a second key.
type redisEnvelope struct {
	Value    json.RawMessage `json:"v"`
	SlideMS  int64           `json:"s,omitempty"`
	Deadline int64           `json:"d,omitempty"` // unix ms
}

// RedisStore is a Store backed by Redis. Keys are namespaced with prefix so
// several deployments can share one server.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisStore returns a RedisStore using rdb. prefix may be empty.
func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, now: time.Now}
}

func (s *RedisStore) key(k string) string { return s.prefix + k }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var env redisEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false, fmt.Errorf("redis decode %s: %w", key, err)
	}

	if env.SlideMS > 0 {
		ttl := time.Duration(env.SlideMS) * time.Millisecond
		if env.Deadline > 0 {
			remaining := time.UnixMilli(env.Deadline).Sub(s.now())
			if remaining <= 0 {
				return nil, false, nil
			}
			ttl = min(ttl, remaining)
		}
		// PEXPIRE on a key deleted since the GET is a no-op.
		if err := s.rdb.PExpire(ctx, s.key(key), ttl).Err(); err != nil {
			return nil, false, fmt.Errorf("redis renew %s: %w", key, err)
		}
	}
	return env.Value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, exp Expiry) error {
	if exp.IsZero() {
		return s.Delete(ctx, key)
	}
	env := redisEnvelope{Value: value, SlideMS: exp.Sliding.Milliseconds()}
	if exp.Absolute > 0 {
		env.Deadline = s.now().Add(exp.Absolute).UnixMilli()
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, s.key(key), raw, exp.initialTTL()).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
