package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/profitlens/storefront-analytics-api/internal/config"
	"github.com/profitlens/storefront-analytics-api/pkg/log"
)

// Cache stores serialized analytics responses keyed per store so that
// recomputations can invalidate everything a store has cached.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	InvalidateStore(ctx context.Context, storeID string)
	Close() error
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(ctx context.Context, cfg config.Redis) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisCache{
		client: client,
		ttl:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}, nil
}

// Key builds the cache key for a store-scoped analytics query.
func Key(storeID, query string) string {
	return fmt.Sprintf("analytics:%s:%s", storeID, query)
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.L.WithField("key", key).Warnf("cache get failed: %v", err)
		}
		return nil, false
	}

	return value, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		log.L.WithField("key", key).Warnf("cache set failed: %v", err)
	}
}

// InvalidateStore removes every cached entry belonging to the store. Called
// after recomputations so clients never read stale aggregates.
func (c *redisCache) InvalidateStore(ctx context.Context, storeID string) {
	pattern := Key(storeID, "*")

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.L.WithField("key", iter.Val()).Warnf("cache invalidation failed: %v", err)
		}
	}

	if err := iter.Err(); err != nil {
		log.L.WithField("store_id", storeID).Warnf("cache scan failed: %v", err)
	}
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// noopCache is used when Redis is disabled by configuration.
type noopCache struct{}

func NewNoopCache() Cache { return noopCache{} }

func (noopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopCache) Set(context.Context, string, []byte)       {}
func (noopCache) InvalidateStore(context.Context, string)   {}
func (noopCache) Close() error                              { return nil }
