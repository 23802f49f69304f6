package stats

import (
	"database/sql"
	"testing"
	"time"

	"link-analytics/services/analytics-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"
	firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/118.0"
)

func record(ua, ip string, clickedAt time.Time) *model.ClickEvents {
	return &model.ClickEvents{
		Id:        "id",
		ShortCode: "abc12345",
		ClickedAt: clickedAt,
		UserAgent: ua,
		IpAddress: sql.NullString{String: ip, Valid: ip != ""},
	}
}

func TestAggregate_EmptyPartition(t *testing.T) {
	summary := Aggregate(nil)

	require.NotNil(t, summary)
	assert.Equal(t, int64(0), summary.TotalClicks)
	assert.Empty(t, summary.Browsers)
	assert.Empty(t, summary.Os)
	assert.Empty(t, summary.Locations)
	assert.Empty(t, summary.Timeline)
	// Empty maps and slice must still marshal as {} and [], not null.
	assert.NotNil(t, summary.Browsers)
	assert.NotNil(t, summary.Timeline)
}

func TestAggregate_Browsers(t *testing.T) {
	now := time.Now()
	summary := Aggregate([]*model.ClickEvents{
		record(chromeUA, "1.2.3.4", now),
		record(firefoxUA, "1.2.3.4", now),
	})

	assert.Equal(t, int64(2), summary.TotalClicks)
	assert.Equal(t, map[string]int64{"Chrome": 1, "Firefox": 1}, summary.Browsers)
	assert.Equal(t, map[string]int64{"Windows": 2}, summary.Os)
}

func TestAggregate_UnknownUserAgent(t *testing.T) {
	now := time.Now()
	summary := Aggregate([]*model.ClickEvents{
		record("", "1.2.3.4", now),
		record("definitely not a browser", "1.2.3.4", now),
	})

	// Junk must not surface as a browser bucket named after its first token.
	assert.Equal(t, map[string]int64{Unknown: 2}, summary.Browsers)
	assert.Equal(t, int64(2), summary.Os[Unknown])
}

func TestAggregate_Locations(t *testing.T) {
	now := time.Now()
	summary := Aggregate([]*model.ClickEvents{
		record(chromeUA, "1.2.3.4", now),
		record(chromeUA, "1.2.3.4", now),
		record(chromeUA, "", now),
	})

	assert.Equal(t, map[string]int64{"1.2.3.4": 2, Unknown: 1}, summary.Locations)
}

func TestAggregate_TimelinePreservesOrder(t *testing.T) {
	base := time.Unix(1700000000, 0)
	summary := Aggregate([]*model.ClickEvents{
		record(chromeUA, "1.2.3.4", base.Add(2*time.Hour)),
		record(chromeUA, "1.2.3.4", base),
		record(chromeUA, "1.2.3.4", base.Add(time.Hour)),
	})

	require.Equal(t, int(summary.TotalClicks), len(summary.Timeline))
	// One entry per record in input order, deliberately not time-sorted.
	assert.Equal(t, []int64{
		base.Add(2 * time.Hour).Unix(),
		base.Unix(),
		base.Add(time.Hour).Unix(),
	}, summary.Timeline)
}
