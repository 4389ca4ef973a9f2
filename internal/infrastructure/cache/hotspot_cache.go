package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"shuddhify/internal/usecase"
	"shuddhify/pkg/logger"
)

const (
	hotspotKey = "hotspots:v1"
	hotspotTTL = 60 * time.Second
)

// RedisHotspotCache caches hotspot aggregation results. Cache failures are
// logged and treated as misses; the aggregator recomputes instead.
type RedisHotspotCache struct {
	client *redis.Client
}

// NewRedisHotspotCache returns nil when no address is configured, which the
// geo use case treats as "no cache".
func NewRedisHotspotCache(addr, password string) *RedisHotspotCache {
	if addr == "" {
		return nil
	}
	return &RedisHotspotCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (c *RedisHotspotCache) Get(ctx context.Context) ([]usecase.Hotspot, bool) {
	data, err := c.client.Get(ctx, hotspotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("hotspot cache read failed: %v", err)
		}
		return nil, false
	}

	var hotspots []usecase.Hotspot
	if err := json.Unmarshal(data, &hotspots); err != nil {
		logger.Warn("hotspot cache entry corrupt, dropping: %v", err)
		c.client.Del(ctx, hotspotKey)
		return nil, false
	}

	return hotspots, true
}

func (c *RedisHotspotCache) Set(ctx context.Context, hotspots []usecase.Hotspot) {
	data, err := json.Marshal(hotspots)
	if err != nil {
		logger.Warn("hotspot cache marshal failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, hotspotKey, data, hotspotTTL).Err(); err != nil {
		logger.Warn("hotspot cache write failed: %v", err)
	}
}

func (c *RedisHotspotCache) Close() error {
	return c.client.Close()
}
