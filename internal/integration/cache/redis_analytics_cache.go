// Package cache memoizes derived analytics in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/integration/metrics"
)

type redisAnalyticsCache struct {
	client *redis.Client
}

// NewRedisAnalyticsCache creates an analytics cache on client.
func NewRedisAnalyticsCache(client *redis.Client) adapter.AnalyticsCache {
	return &redisAnalyticsCache{client: client}
}

func (c *redisAnalyticsCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.TrackCacheLookup("miss")
		return nil, false, nil
	}
	if err != nil {
		metrics.TrackCacheLookup("error")
		return nil, false, fmt.Errorf("failed to read analytics cache: %w", err)
	}
	metrics.TrackCacheLookup("hit")
	return payload, true, nil
}

func (c *redisAnalyticsCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write analytics cache: %w", err)
	}
	return nil
}
