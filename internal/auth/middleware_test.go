package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, sawClaims **Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sawClaims = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareMissingHeader(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	var claims *Claims
	handler := Middleware(issuer)(protectedHandler(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"access token required"}`, rec.Body.String())
	require.Nil(t, claims)
}

func TestMiddlewareInvalidToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	var claims *Claims
	handler := Middleware(issuer)(protectedHandler(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
	require.Nil(t, claims)
}

func TestMiddlewareExpiredToken(t *testing.T) {
	expired := NewIssuer("test-secret", -time.Minute)
	token, err := expired.GenerateToken(uuid.New(), uuid.New(), "a@x.com", "admin")
	require.NoError(t, err)

	issuer := NewIssuer("test-secret", time.Hour)
	var claims *Claims
	handler := Middleware(issuer)(protectedHandler(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Nil(t, claims)
}

func TestMiddlewareAttachesClaims(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	userID := uuid.New()
	tenantID := uuid.New()
	token, err := issuer.GenerateToken(userID, tenantID, "a@x.com", "admin")
	require.NoError(t, err)

	var claims *Claims
	handler := Middleware(issuer)(protectedHandler(t, &claims))

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, claims)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, tenantID, claims.TenantID)
}
