//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"link-analytics/services/analytics-api/internal/stats"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisSummaryCache_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	defer func() { _ = redisContainer.Terminate(ctx) }()

	endpoint, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	summaryCache := New(rdb, time.Minute)

	assert.Nil(t, summaryCache.Get(ctx, "abc12345"), "cold cache must miss")

	summary := &stats.Summary{
		TotalClicks: 2,
		Browsers:    map[string]int64{"Chrome": 2},
		Os:          map[string]int64{"Windows": 2},
		Locations:   map[string]int64{"1.2.3.4": 2},
		Timeline:    []int64{1700000000, 1700000003},
	}
	summaryCache.Set(ctx, "abc12345", summary)

	cached := summaryCache.Get(ctx, "abc12345")
	require.NotNil(t, cached)
	assert.Equal(t, summary, cached)

	assert.Nil(t, summaryCache.Get(ctx, "other999"), "keys are per short code")
}

func TestNoopSummaryCache(t *testing.T) {
	summaryCache := New(nil, time.Minute)

	ctx := context.Background()
	summaryCache.Set(ctx, "abc12345", &stats.Summary{TotalClicks: 1})
	assert.Nil(t, summaryCache.Get(ctx, "abc12345"))
}
