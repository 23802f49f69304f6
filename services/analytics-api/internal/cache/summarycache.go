package cache

import (
	"context"
	"encoding/json"
	"time"

	"link-analytics/services/analytics-api/internal/stats"

	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	summaryCachePrefix = "analytics:summary:"
	defaultSummaryTTL  = time.Minute
)

// SummaryCache holds recently computed aggregation summaries. A miss and a
// cache error look the same to callers: both read through to the store.
type SummaryCache interface {
	// Get returns the cached summary for a short code, or nil on a miss.
	Get(ctx context.Context, shortCode string) *stats.Summary

	// Set stores a summary; failures are logged and swallowed.
	Set(ctx context.Context, shortCode string, summary *stats.Summary)
}

// Compile-time interface checks
var (
	_ SummaryCache = (*RedisSummaryCache)(nil)
	_ SummaryCache = (*noopSummaryCache)(nil)
)

// New creates a Redis-backed summary cache, or a no-op cache when no Redis
// client is configured.
func New(rdb *redis.Client, ttl time.Duration) SummaryCache {
	if rdb == nil {
		return &noopSummaryCache{}
	}
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &RedisSummaryCache{rdb: rdb, ttl: ttl}
}

// RedisSummaryCache implements SummaryCache using Redis.
type RedisSummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func (c *RedisSummaryCache) cacheKey(shortCode string) string {
	return summaryCachePrefix + shortCode
}

func (c *RedisSummaryCache) Get(ctx context.Context, shortCode string) *stats.Summary {
	data, err := c.rdb.Get(ctx, c.cacheKey(shortCode)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.WithContext(ctx).Errorf("summary cache read failed: %v", err)
		}
		return nil
	}

	var summary stats.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		logx.WithContext(ctx).Errorf("summary cache entry corrupt, ignoring: %v", err)
		return nil
	}
	return &summary
}

func (c *RedisSummaryCache) Set(ctx context.Context, shortCode string, summary *stats.Summary) {
	data, err := json.Marshal(summary)
	if err != nil {
		logx.WithContext(ctx).Errorf("failed to marshal summary for cache: %v", err)
		return
	}

	if err := c.rdb.Set(ctx, c.cacheKey(shortCode), data, c.ttl).Err(); err != nil {
		logx.WithContext(ctx).Errorf("summary cache write failed: %v", err)
	}
}

// noopSummaryCache is used when Redis is not configured.
type noopSummaryCache struct{}

func (c *noopSummaryCache) Get(context.Context, string) *stats.Summary { return nil }

func (c *noopSummaryCache) Set(context.Context, string, *stats.Summary) {}
