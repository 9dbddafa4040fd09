package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCache is a JSON-backed Redis cache for one value type. Cache failures never
// fail the caller: reads degrade to a miss and writes are logged.
type ViewCache[T any] struct {
	client redis.UniversalClient
	logger *slog.Logger
	prefix string
	ttl    time.Duration
}

// NewViewCache creates a ViewCache storing values under prefix+key. A zero ttl
// keeps entries until evicted.
func NewViewCache[T any](client redis.UniversalClient, prefix string, ttl time.Duration, logger *slog.Logger) *ViewCache[T] {
	return &ViewCache[T]{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

// Get returns the cached value and true, or nil and false on a miss
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", "key", c.prefix+key, "error", err)
		}
		return nil, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		c.logger.Warn("cache entry is not decodable", "key", c.prefix+key, "error", err)
		return nil, false
	}
	return &v, true
}

// Set stores value under key
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", c.prefix+key, "error", err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", c.prefix+key, "error", err)
	}
}
