package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/analytics"
	"github.com/Pranav212nair/xeno/internal/auth"
)

const statsCacheTTL = 60 * time.Second

// Engagement KPIs the platform does not compute yet; served as constants like
// the rest of the kpi block.
const (
	kpiRepeatRate        = 42
	kpiLoyaltyEngagement = 61
	kpiTopChannel        = "WhatsApp"
)

type dashboardKPIs struct {
	RevenueInfluenced float64 `json:"revenueInfluenced"`
	ActiveCampaigns   int     `json:"activeCampaigns"`
	TotalCustomers    int     `json:"totalCustomers"`
	TotalOrders       int     `json:"totalOrders"`
	RepeatRate        int     `json:"repeatRate"`
	LoyaltyEngagement int     `json:"loyaltyEngagement"`
	CustomerGrowth    int     `json:"customerGrowth"`
	TopChannel        string  `json:"topChannel"`
}

// campaignStats is a campaign row with its derived ratios.
type campaignStats struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Channel   string    `json:"channel"`
	Status    string    `json:"status"`
	Revenue   float64   `json:"revenue"`
	ROI       float64   `json:"roi"`
	CTR       float64   `json:"ctr"`
	Sent      int       `json:"sent"`
	Opened    int       `json:"opened"`
	Clicked   int       `json:"clicked"`
	Converted int       `json:"converted"`
}

type segmentSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CustomerCount int       `json:"customerCount"`
	Type          string    `json:"type"`
}

type journeySummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	EnrolledCount  int       `json:"enrolledCount"`
	ConversionRate float64   `json:"conversionRate"`
}

type dashboardResponse struct {
	KPIs      dashboardKPIs              `json:"kpis"`
	Campaigns []campaignStats            `json:"campaigns"`
	Lifecycle analytics.LifecycleBuckets `json:"lifecycle"`
	Segments  []segmentSummary           `json:"segments"`
	Journeys  []journeySummary           `json:"journeys"`
}

// @Summary Dashboard statistics
// @Tags Dashboard
// @Security ApiKeyAuth
// @Produce json
// @Param days query int false "Order window in days (default 30)"
// @Success 200 {object} dashboardResponse
// @Router /api/dashboard/stats [get]
func (a *API) DashboardStats(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	days := queryInt(r, "days", 30)

	cacheKey := fmt.Sprintf("dashboard:%s:%d", claims.TenantID, days)
	if cached, ok := a.Cache.Get(r.Context(), cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	campaigns, err := a.Storage.ListCampaigns(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch stats", err)
		return
	}
	lifecycleCounts, err := a.Storage.LifecycleCounts(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch stats", err)
		return
	}
	since := time.Now().AddDate(0, 0, -days)
	orderCount, _, err := a.Storage.OrderStats(r.Context(), claims.TenantID, since)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch stats", err)
		return
	}
	totalCustomers, err := a.Storage.CountCustomers(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch stats", err)
		return
	}
	segments, err := a.Storage.ListSegments(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch stats", err)
		return
	}
	journeys, err := a.Storage.ListJourneys(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch stats", err)
		return
	}

	lifecycle := analytics.Lifecycle(lifecycleCounts)

	resp := dashboardResponse{
		KPIs: dashboardKPIs{
			RevenueInfluenced: analytics.TotalRevenue(campaigns),
			ActiveCampaigns:   analytics.ActiveCount(campaigns),
			TotalCustomers:    totalCustomers,
			TotalOrders:       orderCount,
			RepeatRate:        kpiRepeatRate,
			LoyaltyEngagement: kpiLoyaltyEngagement,
			CustomerGrowth:    lifecycle.New,
			TopChannel:        kpiTopChannel,
		},
		Campaigns: make([]campaignStats, 0, len(campaigns)),
		Lifecycle: lifecycle,
		Segments:  make([]segmentSummary, 0, len(segments)),
		Journeys:  make([]journeySummary, 0, len(journeys)),
	}

	for _, c := range campaigns {
		resp.Campaigns = append(resp.Campaigns, campaignStats{
			ID:        c.ID,
			Name:      c.Name,
			Channel:   c.Channel,
			Status:    c.Status,
			Revenue:   c.Revenue,
			ROI:       analytics.CampaignROI(c),
			CTR:       analytics.CampaignCTR(c),
			Sent:      c.Sent,
			Opened:    c.Opened,
			Clicked:   c.Clicked,
			Converted: c.Converted,
		})
	}
	for _, sg := range segments {
		resp.Segments = append(resp.Segments, segmentSummary{
			ID:            sg.ID,
			Name:          sg.Name,
			Description:   sg.Description,
			CustomerCount: sg.CustomerCount,
			Type:          sg.Type,
		})
	}
	for _, j := range journeys {
		resp.Journeys = append(resp.Journeys, journeySummary{
			ID:             j.ID,
			Name:           j.Name,
			Status:         j.Status,
			EnrolledCount:  j.EnrolledCount,
			ConversionRate: j.ConversionRate,
		})
	}

	if body, err := json.Marshal(resp); err == nil {
		a.Cache.Set(r.Context(), cacheKey, body, statsCacheTTL)
	}
	a.writeJSON(w, http.StatusOK, resp)
}
