// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go provides a Valkey-backed cache for rendered product-grid
// fragments. The catalog only changes through an out-of-band admin
// process, so a short TTL is the sole invalidation mechanism. Cart
// fragments are never cached — they are per-session state.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// gridKeyPrefix is the Valkey key prefix for cached grid fragments.
	gridKeyPrefix = "grid:"

	// DefaultGridTTL is how long a rendered product grid stays cached.
	DefaultGridTTL = 5 * time.Minute
)

// CatalogCache stores rendered product-grid HTML in Valkey, keyed by
// the active category filter. Any cache failure degrades to a miss.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a catalog cache backed by the given Valkey client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl == 0 {
		ttl = DefaultGridTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a grid key. Returns false on miss.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, gridKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("catalog cache hit", "key", key)
	return val, true
}

// Set stores rendered HTML for a grid key with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, key string, html []byte) {
	if err := c.client.Set(ctx, gridKeyPrefix+key, html, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes all cached grid fragments by scanning for the
// prefix. Exposed for operational use when the catalog is reloaded.
func (c *CatalogCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, gridKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("catalog cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("catalog cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("catalog cache cleared", "deleted", deleted)
	}
}

// AllProductsKey returns the cache key for the unfiltered grid.
func AllProductsKey() string {
	return "_all"
}

// CategoryKey returns the cache key for a category-filtered grid.
func CategoryKey(categoryID string) string {
	return categoryID
}
