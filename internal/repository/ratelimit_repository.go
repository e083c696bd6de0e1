package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimitRepository counts hits per key in Redis so that limits are
// shared by every API replica.
type RedisRateLimitRepository struct {
	client *redis.Client
}

// NewRedisRateLimitRepository constructs the Redis-backed counter store.
func NewRedisRateLimitRepository(client *redis.Client) *RedisRateLimitRepository {
	return &RedisRateLimitRepository{client: client}
}

// Hit increments key and returns the new count. Keys carry their window
// index, so refreshing the TTL on every hit never extends a window.
func (r *RedisRateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis rate limit %s: %w", key, err)
	}
	return incr.Val(), nil
}

// MemoryRateLimitRepository is the single-process fallback used when Redis
// is disabled.
type MemoryRateLimitRepository struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]*memoryCounter
	hits    uint64
}

type memoryCounter struct {
	count     int64
	expiresAt time.Time
}

// sweepEvery controls how often expired counters are purged.
const sweepEvery = 1024

// NewMemoryRateLimitRepository constructs the in-memory counter store.
func NewMemoryRateLimitRepository() *MemoryRateLimitRepository {
	return &MemoryRateLimitRepository{now: time.Now, entries: make(map[string]*memoryCounter)}
}

// Hit increments key and returns the new count.
func (r *MemoryRateLimitRepository) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.hits++
	if r.hits%sweepEvery == 0 {
		for k, e := range r.entries {
			if !now.Before(e.expiresAt) {
				delete(r.entries, k)
			}
		}
	}

	entry, ok := r.entries[key]
	if !ok || !now.Before(entry.expiresAt) {
		entry = &memoryCounter{expiresAt: now.Add(window)}
		r.entries[key] = entry
	}
	entry.count++
	return entry.count, nil
}

// Len returns the number of live counters.
func (r *MemoryRateLimitRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
