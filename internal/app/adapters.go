package app

import (
	"context"
	"errors"

	"github.com/secposture/console-api/internal/infra/redis"
	"github.com/secposture/console-api/pkg/domain/module"
)

// RedisSnapshotCache adapts the generic Redis cache to the SnapshotCache
// interface, translating cache misses into (nil, false, nil).
type RedisSnapshotCache struct {
	cache *redis.Cache[[]module.Entitlement]
}

// NewRedisSnapshotCache creates a SnapshotCache backed by Redis.
func NewRedisSnapshotCache(cache *redis.Cache[[]module.Entitlement]) *RedisSnapshotCache {
	return &RedisSnapshotCache{cache: cache}
}

// Get returns the cached records for a tenant, ok=false on a miss.
func (c *RedisSnapshotCache) Get(ctx context.Context, tenantID string) ([]module.Entitlement, bool, error) {
	records, err := c.cache.Get(ctx, tenantID)
	if errors.Is(err, redis.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return *records, true, nil
}

// Set stores the records for a tenant.
func (c *RedisSnapshotCache) Set(ctx context.Context, tenantID string, records []module.Entitlement) error {
	return c.cache.Set(ctx, tenantID, records)
}

// Delete drops the cached records for a tenant.
func (c *RedisSnapshotCache) Delete(ctx context.Context, tenantID string) error {
	return c.cache.Delete(ctx, tenantID)
}
