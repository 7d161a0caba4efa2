package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/model"
	"github.com/Pranav212nair/xeno/internal/storage"
)

// @Summary List campaigns
// @Tags Campaigns
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} model.Campaign
// @Router /api/campaigns [get]
func (a *API) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	campaigns, err := a.Storage.ListCampaigns(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch campaigns", err)
		return
	}
	if campaigns == nil {
		campaigns = []model.Campaign{}
	}
	a.writeJSON(w, http.StatusOK, campaigns)
}

// @Summary Create a campaign
// @Tags Campaigns
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} model.Campaign
// @Router /api/campaigns [post]
func (a *API) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "validation failed", err)
		return
	}

	now := time.Now()
	campaign := &model.Campaign{
		ID:       uuid.New(),
		TenantID: claims.TenantID, // always from the verified claims
		Name:     req.Name,
		Channel:  req.Channel,
		Status:   model.CampaignStatusLive,
		StartedAt: &now,
		CreatedAt: now,
	}
	if req.Budget != nil {
		campaign.Cost = *req.Budget
	}
	if req.SegmentID != nil {
		id, _ := uuid.Parse(*req.SegmentID)
		campaign.SegmentID = &id
	}

	if err := a.Storage.CreateCampaign(r.Context(), campaign); err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to create campaign", err)
		return
	}
	a.writeJSON(w, http.StatusOK, campaign)
}

// @Summary Update a campaign
// @Tags Campaigns
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Campaign UUID"
// @Success 200 {object} model.Campaign
// @Router /api/campaigns/{id} [put]
func (a *API) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid campaign id", err)
		return
	}

	var req updateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "validation failed", err)
		return
	}

	upd := storage.CampaignUpdate{
		Name:    req.Name,
		Channel: req.Channel,
		Status:  req.Status,
	}
	if req.SegmentID != nil {
		sid, _ := uuid.Parse(*req.SegmentID)
		upd.SegmentID = &sid
	}

	campaign, err := a.Storage.UpdateCampaign(r.Context(), claims.TenantID, id, upd)
	if errors.Is(err, storage.ErrNotFound) {
		// Foreign-tenant ids land here too; 404 does not confirm existence.
		a.writeError(w, r, http.StatusNotFound, "campaign not found", nil)
		return
	}
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to update campaign", err)
		return
	}
	a.writeJSON(w, http.StatusOK, campaign)
}

// @Summary Delete a campaign
// @Tags Campaigns
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Campaign UUID"
// @Success 200 {object} map[string]string
// @Router /api/campaigns/{id} [delete]
func (a *API) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid campaign id", err)
		return
	}

	err = a.Storage.DeleteCampaign(r.Context(), claims.TenantID, id)
	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, r, http.StatusNotFound, "campaign not found", nil)
		return
	}
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to delete campaign", err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted successfully"})
}
