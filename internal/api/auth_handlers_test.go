package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/Pranav212nair/xeno/internal/auth"
)

func userRow(userID, tenantID uuid.UUID, email, hash string) *sqlmock.Rows {
	cols := []string{"id", "tenant_id", "email", "name", "password_hash", "role", "last_login_at", "created_at", "company_name"}
	return sqlmock.NewRows(cols).
		AddRow(userID, tenantID, email, "Acme Admin", hash, "admin", nil, time.Now(), "Acme")
}

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	a, mock := newTestAPI(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := doRequest(t, a, http.MethodPost, "/api/auth/register", "",
		`{"email":"a@x.com","name":"Acme Admin","password":"pw12345","companyName":"Acme"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "a@x.com", resp.User.Email)
	require.Equal(t, "admin", resp.User.Role)
	require.Equal(t, "Acme", resp.User.Company)

	// The token must validate against the same issuer and carry the tenant id.
	claims, err := a.Issuer.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.TenantID, claims.TenantID)
	require.Equal(t, resp.User.ID, claims.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a, mock := newTestAPI(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	mock.ExpectRollback()

	rec := doRequest(t, a, http.MethodPost, "/api/auth/register", "",
		`{"email":"a@x.com","name":"Acme Admin","password":"pw12345"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"email already registered"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterValidation(t *testing.T) {
	a, _ := newTestAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"A","password":"pw12345"}`},
		{"malformed email", `{"email":"nope","name":"A","password":"pw12345"}`},
		{"missing name", `{"email":"a@x.com","password":"pw12345"}`},
		{"short password", `{"email":"a@x.com","name":"A","password":"pw"}`},
		{"not json", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, a, http.MethodPost, "/api/auth/register", "", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	a, mock := newTestAPI(t)

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	// Unknown email.
	mock.ExpectQuery("FROM users u").WithArgs("ghost@x.com").WillReturnError(sql.ErrNoRows)
	unknown := doRequest(t, a, http.MethodPost, "/api/auth/login", "",
		`{"email":"ghost@x.com","password":"password123"}`)

	// Known email, wrong password.
	mock.ExpectQuery("FROM users u").WithArgs("a@x.com").
		WillReturnRows(userRow(uuid.New(), uuid.New(), "a@x.com", hash))
	wrongPw := doRequest(t, a, http.MethodPost, "/api/auth/login", "",
		`{"email":"a@x.com","password":"wrongpass"}`)

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	require.JSONEq(t, unknown.Body.String(), wrongPw.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSuccess(t *testing.T) {
	a, mock := newTestAPI(t)

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	userID := uuid.New()
	tenantID := uuid.New()

	mock.ExpectQuery("FROM users u").WithArgs("a@x.com").
		WillReturnRows(userRow(userID, tenantID, "a@x.com", hash))
	mock.ExpectExec("UPDATE users SET last_login_at").
		WithArgs(userID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(t, a, http.MethodPost, "/api/auth/login", "",
		`{"email":"a@x.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, tenantID, resp.User.TenantID)
	require.Equal(t, "Acme", resp.User.Company)

	claims, err := a.Issuer.ValidateToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, tenantID, claims.TenantID)
	require.NoError(t, mock.ExpectationsWereMet())
}
