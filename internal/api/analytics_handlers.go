package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Pranav212nair/xeno/internal/analytics"
	"github.com/Pranav212nair/xeno/internal/auth"
)

type analyticsResponse struct {
	ChannelPerformance map[string]analytics.ChannelStats `json:"channelPerformance"`
	TopCampaigns       []analytics.TopCampaign           `json:"topCampaigns"`
	TotalRevenue       float64                           `json:"totalRevenue"`
	TotalCost          float64                           `json:"totalCost"`
	AvgROI             float64                           `json:"avgROI"`
}

// @Summary Channel-level campaign analytics
// @Tags Analytics
// @Security ApiKeyAuth
// @Produce json
// @Param days query int false "Window in days (default 30)"
// @Success 200 {object} analyticsResponse
// @Router /api/analytics [get]
func (a *API) Analytics(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	days := queryInt(r, "days", 30)

	cacheKey := fmt.Sprintf("analytics:%s:%d", claims.TenantID, days)
	if cached, ok := a.Cache.Get(r.Context(), cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	campaigns, err := a.Storage.ListCampaigns(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch analytics", err)
		return
	}

	resp := analyticsResponse{
		ChannelPerformance: analytics.ChannelPerformance(campaigns),
		TopCampaigns:       analytics.TopCampaigns(campaigns, 5),
		TotalRevenue:       analytics.TotalRevenue(campaigns),
		TotalCost:          analytics.TotalCost(campaigns),
		AvgROI:             analytics.AvgROI(campaigns),
	}

	if body, err := json.Marshal(resp); err == nil {
		a.Cache.Set(r.Context(), cacheKey, body, statsCacheTTL)
	}
	a.writeJSON(w, http.StatusOK, resp)
}
