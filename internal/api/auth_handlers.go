package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/metrics"
	"github.com/Pranav212nair/xeno/internal/model"
	"github.com/Pranav212nair/xeno/internal/storage"
)

// userPayload is the user summary returned by register, login and me.
type userPayload struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	TenantID uuid.UUID `json:"tenantId"`
	Company  string    `json:"company"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

// @Summary Register a new tenant account
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} authResponse
// @Router /api/auth/register [post]
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "validation failed", err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "registration failed", err)
		return
	}

	now := time.Now()
	tenant := &model.Tenant{
		ID:          uuid.New(),
		ShopDomain:  req.shopDomainOrDefault(),
		CompanyName: req.companyNameOrDefault(),
		Email:       req.Email,
		IsActive:    true,
		CreatedAt:   now,
	}
	user := &model.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    now,
	}

	// One transaction: a duplicate email leaves neither a tenant nor a user
	// behind.
	if err := a.Storage.CreateTenantAndUser(r.Context(), tenant, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			a.writeError(w, r, http.StatusBadRequest, "email already registered", nil)
			return
		}
		a.writeError(w, r, http.StatusInternalServerError, "registration failed", err)
		return
	}

	token, err := a.Issuer.GenerateToken(user.ID, user.TenantID, user.Email, user.Role)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "registration failed", err)
		return
	}

	a.writeJSON(w, http.StatusOK, authResponse{
		Token: token,
		User: userPayload{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Role:     user.Role,
			TenantID: user.TenantID,
			Company:  tenant.CompanyName,
		},
	})
}

// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} authResponse
// @Router /api/auth/login [post]
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeError(w, r, http.StatusBadRequest, "validation failed", err)
		return
	}

	user, company, err := a.Storage.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, storage.ErrNotFound) {
		// Same response as a bad password so callers cannot probe for
		// registered emails.
		metrics.Logins.WithLabelValues("failure").Inc()
		a.writeError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "login failed", err)
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		metrics.Logins.WithLabelValues("failure").Inc()
		a.writeError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if err := a.Storage.TouchLastLogin(r.Context(), user.ID, time.Now()); err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "login failed", err)
		return
	}

	token, err := a.Issuer.GenerateToken(user.ID, user.TenantID, user.Email, user.Role)
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "login failed", err)
		return
	}

	metrics.Logins.WithLabelValues("success").Inc()
	a.writeJSON(w, http.StatusOK, authResponse{
		Token: token,
		User: userPayload{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Role:     user.Role,
			TenantID: user.TenantID,
			Company:  company,
		},
	})
}

// @Summary Current user profile
// @Tags Auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} userPayload
// @Router /api/auth/me [get]
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	user, company, err := a.Storage.GetUserByID(r.Context(), claims.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, r, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		a.writeError(w, r, http.StatusInternalServerError, "failed to get user", err)
		return
	}

	a.writeJSON(w, http.StatusOK, userPayload{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		TenantID: user.TenantID,
		Company:  company,
	})
}
