// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"link-analytics/services/analytics-api/internal/logic"
	"link-analytics/services/analytics-api/internal/svc"
	"link-analytics/services/analytics-api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Get aggregated click analytics for a short code
func GetAnalyticsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AnalyticsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewGetAnalyticsLogic(r.Context(), svcCtx)
		resp, err := l.GetAnalytics(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
