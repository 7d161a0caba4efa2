package api

import (
	"net/http"
	"time"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/model"
)

// @Summary List orders
// @Tags Orders
// @Security ApiKeyAuth
// @Produce json
// @Param from query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Window end"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} model.Order
// @Router /api/orders [get]
func (a *API) ListOrders(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	limit := queryInt(r, "limit", 100)

	// The window only applies when both bounds parse.
	from := queryTime(r, "from")
	to := queryTime(r, "to")
	if from == nil || to == nil {
		from, to = nil, nil
	}

	orders, err := a.Storage.ListOrders(r.Context(), claims.TenantID, from, to, limit)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch orders", err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	a.writeJSON(w, http.StatusOK, orders)
}

func queryTime(r *http.Request, key string) *time.Time {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
