package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/auth"
)

type syncResponse struct {
	Message   string    `json:"message"`
	SyncLogID uuid.UUID `json:"syncLogId"`
	Note      string    `json:"note"`
}

// @Summary Start a Shopify data sync
// @Tags Shopify
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Success 200 {object} syncResponse
// @Router /api/shopify/sync [post]
func (a *API) ShopifySync(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	var req shopifySyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "validation failed", err)
		return
	}

	if err := a.Storage.UpdateTenantCredentials(r.Context(), claims.TenantID, req.AccessToken, req.ShopDomain); err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to sync shopify data", err)
		return
	}

	logID, err := a.Sync.Start(r.Context(), claims.TenantID, "all")
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to sync shopify data", err)
		return
	}

	a.writeJSON(w, http.StatusOK, syncResponse{
		Message:   "Sync initiated",
		SyncLogID: logID,
		Note:      "In production, this would sync data from the Shopify API",
	})
}
