package api

import (
	"net/http"
	"time"
)

// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := a.Storage.DB.PingContext(r.Context()); err != nil {
		database = "down"
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
		"version":   Version,
	})
}

// Index lists the available endpoints.
func (a *API) Index(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Xeno Marketing Platform API",
		"version": Version,
		"endpoints": map[string][]string{
			"auth":      {"POST /api/auth/register", "POST /api/auth/login", "GET /api/auth/me"},
			"dashboard": {"GET /api/dashboard/stats"},
			"campaigns": {"GET /api/campaigns", "POST /api/campaigns", "PUT /api/campaigns/{id}", "DELETE /api/campaigns/{id}"},
			"customers": {"GET /api/customers", "GET /api/customers/top"},
			"segments":  {"GET /api/segments", "POST /api/segments"},
			"orders":    {"GET /api/orders"},
			"analytics": {"GET /api/analytics"},
			"shopify":   {"POST /api/shopify/sync"},
		},
	})
}
