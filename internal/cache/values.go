// Package cache provides best-effort value caches keyed by player name.
// The cache is an optimization only: every caller must behave identically
// with caching disabled.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/models"
)

const keyPrefix = "player_value:"

// RedisClient is the narrow slice of the redis client the cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type cachedValue struct {
	Value  int                    `json:"value"`
	Source models.ValueSourceKind `json:"source"`
}

// RedisValueCache stores resolved values in Redis with a TTL. All Redis
// failures are swallowed after logging; a miss is always a safe answer.
type RedisValueCache struct {
	client RedisClient
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewRedisValueCache(client RedisClient, ttl time.Duration, logger *zap.Logger) *RedisValueCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisValueCache{
		client: client,
		ttl:    ttl,
		logger: logger.Sugar(),
	}
}

func (c *RedisValueCache) Get(ctx context.Context, name string) (int, models.ValueSourceKind, bool) {
	data, err := c.client.Get(ctx, keyPrefix+name).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("Value cache read failed", "player", name, "error", err)
		}
		return 0, "", false
	}

	var cv cachedValue
	if err := json.Unmarshal(data, &cv); err != nil {
		c.logger.Warnw("Value cache entry corrupt, ignoring", "player", name, "error", err)
		return 0, "", false
	}
	return cv.Value, cv.Source, true
}

func (c *RedisValueCache) Set(ctx context.Context, name string, value int, source models.ValueSourceKind) {
	data, _ := json.Marshal(cachedValue{Value: value, Source: source})
	if err := c.client.Set(ctx, keyPrefix+name, data, c.ttl).Err(); err != nil {
		c.logger.Warnw("Value cache write failed", "player", name, "error", err)
	}
}

// MemoryValueCache is a process-local cache for runs without Redis.
// Races are benign: last write wins.
type MemoryValueCache struct {
	mu      sync.RWMutex
	entries map[string]cachedValue
}

func NewMemoryValueCache() *MemoryValueCache {
	return &MemoryValueCache{entries: make(map[string]cachedValue)}
}

func (c *MemoryValueCache) Get(_ context.Context, name string) (int, models.ValueSourceKind, bool) {
	c.mu.RLock()
	cv, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return 0, "", false
	}
	return cv.Value, cv.Source, true
}

func (c *MemoryValueCache) Set(_ context.Context, name string, value int, source models.ValueSourceKind) {
	c.mu.Lock()
	c.entries[name] = cachedValue{Value: value, Source: source}
	c.mu.Unlock()
}
