// Package cache keeps rendered views in Redis so repeat reads skip the
// database. Mutation pipelines invalidate entries fire-and-forget; a reader
// may briefly see a stale page between a write and its invalidation.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type ViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ViewCache {
	return &ViewCache{rdb: rdb, ttl: ttl}
}

func key(viewPath string) string {
	return "view:" + viewPath
}

// Get returns the cached rendering of the view, if any. Cache errors are
// treated as misses so pages still render when Redis is down.
func (c *ViewCache) Get(ctx context.Context, viewPath string) ([]byte, bool) {
	body, err := c.rdb.Get(ctx, key(viewPath)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("reading view cache", "view", viewPath, "error", err)
		}

		return nil, false
	}

	return body, true
}

// Set stores a rendered view. Best effort only.
func (c *ViewCache) Set(ctx context.Context, viewPath string, body []byte) {
	if err := c.rdb.Set(ctx, key(viewPath), body, c.ttl).Err(); err != nil {
		slog.Warn("writing view cache", "view", viewPath, "error", err)
	}
}

// Invalidate drops the cached rendering of the view.
func (c *ViewCache) Invalidate(ctx context.Context, viewPath string) error {
	if err := c.rdb.Del(ctx, key(viewPath)).Err(); err != nil {
		return fmt.Errorf("invalidating view %s: %w", viewPath, err)
	}

	return nil
}
