package api

import (
	"net/http"
	"strconv"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/model"
)

// @Summary List customers
// @Tags Customers
// @Security ApiKeyAuth
// @Produce json
// @Param lifecycle query string false "Lifecycle stage filter"
// @Param limit query int false "Max rows (default 100)"
// @Success 200 {array} model.Customer
// @Router /api/customers [get]
func (a *API) ListCustomers(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	lifecycle := r.URL.Query().Get("lifecycle")
	limit := queryInt(r, "limit", 100)

	customers, err := a.Storage.ListCustomers(r.Context(), claims.TenantID, lifecycle, limit)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch customers", err)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	a.writeJSON(w, http.StatusOK, customers)
}

// @Summary Top customers by total spend
// @Tags Customers
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Max rows (default 10)"
// @Success 200 {array} model.Customer
// @Router /api/customers/top [get]
func (a *API) TopCustomers(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	limit := queryInt(r, "limit", 10)

	customers, err := a.Storage.ListTopCustomers(r.Context(), claims.TenantID, limit)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to fetch top customers", err)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	a.writeJSON(w, http.StatusOK, customers)
}

// queryInt parses an integer query parameter, falling back to def for
// missing or malformed values.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
