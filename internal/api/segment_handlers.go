package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/model"
)

// @Summary List segments
// @Tags Segments
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} model.Segment
// @Router /api/segments [get]
func (a *API) ListSegments(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	segments, err := a.Storage.ListSegments(r.Context(), claims.TenantID)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch segments", err)
		return
	}
	if segments == nil {
		segments = []model.Segment{}
	}
	a.writeJSON(w, http.StatusOK, segments)
}

// @Summary Create a segment
// @Tags Segments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} model.Segment
// @Router /api/segments [post]
func (a *API) CreateSegment(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var req createSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "validation failed", err)
		return
	}

	segment := &model.Segment{
		ID:          uuid.New(),
		TenantID:    claims.TenantID,
		Name:        req.Name,
		Description: req.Description,
		Type:        req.typeOrDefault(),
		CreatedAt:   time.Now(),
	}
	if err := a.Storage.CreateSegment(r.Context(), segment); err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to create segment", err)
		return
	}
	a.writeJSON(w, http.StatusOK, segment)
}
