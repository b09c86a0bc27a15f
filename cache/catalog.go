package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"musicgraph/logger"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "musicgraph"
	generationKey = keyPrefix + ":generation"
)

// Catalog is a read-through cache for catalog reads. Every entry lives under
// the current catalog generation; bumping the generation after a write makes
// all older entries unreachable until they expire.
//
// A nil *Catalog is valid and caches nothing.
type Catalog struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalog returns nil when client is nil.
func NewCatalog(client *redis.Client, ttl time.Duration) *Catalog {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Catalog{client: client, ttl: ttl}
}

// Fetch returns the cached value for name or calls load and caches its
// result. Redis failures are logged and fall through to load.
func Fetch[T any](ctx context.Context, c *Catalog, name string, load func(ctx context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	gen, err := c.generation(ctx)
	if err != nil {
		logger.Warn("Catalog cache unavailable, reading store", logger.String("entry", name), logger.ErrorField(err))
		return load(ctx)
	}
	key := entryKey(gen, name)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		logger.Warn("Dropping undecodable cache entry", logger.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.Warn("Failed to read cache entry", logger.String("key", key), logger.ErrorField(err))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("Failed to encode cache entry", logger.String("key", key), logger.ErrorField(err))
		return v, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn("Failed to write cache entry", logger.String("key", key), logger.ErrorField(err))
	}
	return v, nil
}

// Invalidate drops every cached read by moving to a new generation.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		logger.Warn("Failed to invalidate catalog cache", logger.ErrorField(err))
	}
}

func (c *Catalog) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func entryKey(gen int64, name string) string {
	return fmt.Sprintf("%s:g%d:%s", keyPrefix, gen, name)
}
