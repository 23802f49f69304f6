package stats

import (
	"link-analytics/services/analytics-api/model"

	"github.com/mssola/useragent"
	"github.com/samber/lo"
)

// Unknown is the bucket for values that are missing or unparseable. It is a
// valid aggregation result, never an error.
const Unknown = "Unknown"

// Summary holds the aggregated statistics for one short code partition.
// The json tags are the public API contract and double as the cache format.
type Summary struct {
	TotalClicks int64            `json:"totalClicks"`
	Browsers    map[string]int64 `json:"browsers"`
	Os          map[string]int64 `json:"os"`
	Locations   map[string]int64 `json:"locations"`
	Timeline    []int64          `json:"timeline"`
}

// Aggregate folds a full partition of click events into summary statistics.
// Every record contributes exactly one increment per dimension and one
// timeline entry, in scan order. An empty partition yields a zeroed summary
// with empty maps and an empty timeline.
func Aggregate(records []*model.ClickEvents) *Summary {
	summary := &Summary{
		TotalClicks: int64(len(records)),
		Browsers:    make(map[string]int64),
		Os:          make(map[string]int64),
		Locations:   make(map[string]int64),
	}

	for _, record := range records {
		browser, osName := parseUserAgent(record.UserAgent)
		summary.Browsers[browser]++
		summary.Os[osName]++
		summary.Locations[location(record)]++
	}

	summary.Timeline = lo.Map(records, func(record *model.ClickEvents, _ int) int64 {
		return record.ClickedAt.Unix()
	})

	return summary
}

// parseUserAgent extracts best-effort browser and OS names from a raw
// user-agent string.
func parseUserAgent(raw string) (string, string) {
	browser, osName := Unknown, Unknown
	if raw == "" {
		return browser, osName
	}

	ua := useragent.New(raw)
	// The parser echoes the first token of arbitrary strings as a browser
	// name with no version. Require a version so junk stays in Unknown.
	if name, version := ua.Browser(); name != "" && version != "" {
		browser = name
	}
	if info := ua.OSInfo(); info.Name != "" {
		osName = info.Name
	}
	return browser, osName
}

func location(record *model.ClickEvents) string {
	if record.IpAddress.Valid && record.IpAddress.String != "" {
		return record.IpAddress.String
	}
	return Unknown
}
