// Package cache provides an advisory Redis cache for computed progress
// summaries. The cache is never authoritative: any miss or Redis failure
// falls back to recomputation from raw record arrays.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/models"
)

// InsightsCache caches progress summaries keyed by user and range. A nil
// *InsightsCache is valid and disables caching.
type InsightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightsCache connects to Redis and returns the cache, or nil when no
// address is configured.
func NewInsightsCache(addr, password string, db int, ttl time.Duration) (*InsightsCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &InsightsCache{client: client, ttl: ttl}, nil
}

func summaryKey(userID string, rng models.InsightRange) string {
	return fmt.Sprintf("insights:summary:%s:%s", userID, rng)
}

// Get returns a cached summary, or (nil, false) on miss or error.
func (c *InsightsCache) Get(ctx context.Context, userID string, rng models.InsightRange) (*models.ProgressSummary, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, summaryKey(userID, rng)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Ctx(ctx).Warn("insights cache read failed", logger.Err(err))
		return nil, false
	}

	var summary models.ProgressSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		logger.Ctx(ctx).Warn("insights cache entry corrupt, ignoring", logger.Err(err))
		return nil, false
	}
	return &summary, true
}

// Set stores a summary. Failures are logged and swallowed.
func (c *InsightsCache) Set(ctx context.Context, userID string, rng models.InsightRange, summary *models.ProgressSummary) {
	if c == nil || summary == nil {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		logger.Ctx(ctx).Warn("failed to marshal summary for cache", logger.Err(err))
		return
	}

	if err := c.client.Set(ctx, summaryKey(userID, rng), data, c.ttl).Err(); err != nil {
		logger.Ctx(ctx).Warn("insights cache write failed", logger.Err(err))
	}
}

// Invalidate drops all cached ranges for a user.
func (c *InsightsCache) Invalidate(ctx context.Context, userID string) {
	if c == nil {
		return
	}

	keys := []string{
		summaryKey(userID, models.RangeWeek),
		summaryKey(userID, models.RangeMonth),
		summaryKey(userID, models.RangeAll),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Ctx(ctx).Warn("insights cache invalidation failed", logger.Err(err))
	}
}
