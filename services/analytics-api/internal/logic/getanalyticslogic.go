// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"link-analytics/pkg/problemdetails"
	"link-analytics/services/analytics-api/internal/stats"
	"link-analytics/services/analytics-api/internal/svc"
	"link-analytics/services/analytics-api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetAnalyticsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Get aggregated click analytics for a short code
func NewGetAnalyticsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetAnalyticsLogic {
	return &GetAnalyticsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetAnalyticsLogic) GetAnalytics(req *types.AnalyticsRequest) (*types.AnalyticsResponse, error) {
	logx.WithContext(l.ctx).Infow("get analytics", logx.Field("short_code", req.ShortCode))

	if cached := l.svcCtx.SummaryCache.Get(l.ctx, req.ShortCode); cached != nil {
		return toResponse(cached), nil
	}

	records, findErr := l.svcCtx.ClickEventsModel.FindByShortCode(l.ctx, req.ShortCode)
	if findErr != nil {
		// A store failure is a service failure, never an empty summary.
		logx.WithContext(l.ctx).Errorw("failed to read click events",
			logx.Field("short_code", req.ShortCode),
			logx.Field("error", findErr.Error()),
		)
		return nil, problemdetails.New(500, problemdetails.TypeInternalError, "Internal Error",
			"failed to fetch analytics data")
	}

	// A short code with no recorded events is a valid query: zeroed summary.
	summary := stats.Aggregate(records)
	l.svcCtx.SummaryCache.Set(l.ctx, req.ShortCode, summary)

	return toResponse(summary), nil
}

func toResponse(summary *stats.Summary) *types.AnalyticsResponse {
	return &types.AnalyticsResponse{
		TotalClicks: summary.TotalClicks,
		Browsers:    summary.Browsers,
		Os:          summary.Os,
		Locations:   summary.Locations,
		Timeline:    summary.Timeline,
	}
}
