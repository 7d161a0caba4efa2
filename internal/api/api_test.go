package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/config"
	"github.com/Pranav212nair/xeno/internal/storage"
	"github.com/Pranav212nair/xeno/internal/sync"
)

func newTestAPI(t *testing.T) (*API, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := &storage.Storage{DB: db}
	issuer := auth.NewIssuer("test-secret", time.Hour)
	cfg := &config.Config{}

	return NewAPI(store, issuer, nil, &sync.NoOpProvider{Storage: store}, cfg), mock
}

func doRequest(t *testing.T, a *API, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	a, _ := newTestAPI(t)

	for _, path := range []string{
		"/api/auth/me",
		"/api/dashboard/stats",
		"/api/campaigns",
		"/api/customers",
		"/api/segments",
		"/api/orders",
		"/api/analytics",
	} {
		rec := doRequest(t, a, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, "path %s should require a token", path)
		require.JSONEq(t, `{"error":"access token required"}`, rec.Body.String())
	}
}

func TestHealthIsPublic(t *testing.T) {
	a, _ := newTestAPI(t)

	rec := doRequest(t, a, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}
