// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type AnalyticsRequest struct {
	ShortCode string `path:"shortCode"`
}

type AnalyticsResponse struct {
	TotalClicks int64            `json:"totalClicks"`
	Browsers    map[string]int64 `json:"browsers"`
	Os          map[string]int64 `json:"os"`
	Locations   map[string]int64 `json:"locations"`
	Timeline    []int64          `json:"timeline"`
}
