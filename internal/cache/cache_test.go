// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Integration tests for the catalog cache. Tests are skipped if Valkey
// is not available.
package cache

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testClient connects to the test Valkey instance, skipping the test if
// it is unreachable.
func testClient(t *testing.T) *redis.Client {
	t.Helper()

	client, err := ConnectValkey(
		envOr("VALKEY_HOST", "localhost"),
		envOr("VALKEY_PORT", "6379"),
		os.Getenv("VALKEY_PASSWORD"),
	)
	if err != nil {
		t.Skipf("skipping integration test: valkey not reachable: %v", err)
	}

	t.Cleanup(func() { client.Close() })
	return client
}

func TestCatalogCacheSetGet(t *testing.T) {
	client := testClient(t)
	c := NewCatalogCache(client, time.Minute)
	ctx := context.Background()

	key := "test-" + t.Name()
	t.Cleanup(func() { client.Del(ctx, gridKeyPrefix+key) })

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("unexpected hit before set")
	}

	html := []byte("<div>cached grid</div>")
	c.Set(ctx, key, html)

	got, ok := c.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if !bytes.Equal(got, html) {
		t.Errorf("cached value: got %q", got)
	}
}

func TestCatalogCacheTTLExpiry(t *testing.T) {
	client := testClient(t)
	c := NewCatalogCache(client, time.Second)
	ctx := context.Background()

	key := "test-" + t.Name()
	c.Set(ctx, key, []byte("short-lived"))

	if _, ok := c.Get(ctx, key); !ok {
		t.Fatal("expected hit inside TTL")
	}

	time.Sleep(1500 * time.Millisecond)

	if _, ok := c.Get(ctx, key); ok {
		t.Error("expected miss after TTL expiry")
	}
}

func TestCatalogCacheInvalidateAll(t *testing.T) {
	client := testClient(t)
	c := NewCatalogCache(client, time.Minute)
	ctx := context.Background()

	c.Set(ctx, AllProductsKey(), []byte("all"))
	c.Set(ctx, CategoryKey("test-category-id"), []byte("filtered"))

	c.InvalidateAll(ctx)

	if _, ok := c.Get(ctx, AllProductsKey()); ok {
		t.Error("unfiltered grid survived invalidation")
	}
	if _, ok := c.Get(ctx, CategoryKey("test-category-id")); ok {
		t.Error("filtered grid survived invalidation")
	}
}

func TestCatalogCacheDefaultTTL(t *testing.T) {
	c := NewCatalogCache(nil, 0)
	if c.ttl != DefaultGridTTL {
		t.Errorf("ttl: got %v, want %v", c.ttl, DefaultGridTTL)
	}
}
