// Package cache holds the Redis read-through cache for analytics responses.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"progress-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache caches computed analytics per user and timeframe. The
// service runs without Redis: a nil cache is a no-op, matching how the event
// publisher is optional at startup.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalyticsCache(client *redis.Client) *AnalyticsCache {
	return &AnalyticsCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *AnalyticsCache) key(userID, timeframe string) string {
	return fmt.Sprintf("analytics:%s:%s", userID, timeframe)
}

// Get returns the cached analytics for the user and timeframe, or nil on a
// miss.
func (c *AnalyticsCache) Get(ctx context.Context, userID, timeframe string) (*models.Analytics, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, c.key(userID, timeframe)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analytics models.Analytics
	if err := json.Unmarshal([]byte(data), &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, userID string, analytics *models.Analytics) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(analytics)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID, analytics.Timeframe), data, c.ttl).Err()
}

// InvalidateUser drops every cached timeframe for the user. Called after
// each submission so fresh events show up within one request.
func (c *AnalyticsCache) InvalidateUser(ctx context.Context, userID string) {
	if c == nil || c.client == nil {
		return
	}
	keys := make([]string, 0, 3)
	for _, timeframe := range []string{"7d", "30d", "90d"} {
		keys = append(keys, c.key(userID, timeframe))
	}
	c.client.Del(ctx, keys...)
}
