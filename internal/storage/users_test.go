package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/Pranav212nair/xeno/internal/model"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Storage{DB: db}, mock
}

func testTenantAndUser() (*model.Tenant, *model.User) {
	now := time.Now()
	tenant := &model.Tenant{
		ID:          uuid.New(),
		ShopDomain:  "acme.myshopify.com",
		CompanyName: "Acme",
		Email:       "a@x.com",
		IsActive:    true,
		CreatedAt:   now,
	}
	user := &model.User{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		Email:        "a@x.com",
		Name:         "Acme Admin",
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role:         "admin",
		CreatedAt:    now,
	}
	return tenant, user
}

func TestCreateTenantAndUserCommits(t *testing.T) {
	s, mock := newMockStorage(t)
	tenant, user := testTenantAndUser()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").
		WithArgs(tenant.ID, tenant.ShopDomain, tenant.CompanyName, tenant.Email, tenant.IsActive, tenant.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.TenantID, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.CreateTenantAndUser(context.Background(), tenant, user)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTenantAndUserDuplicateEmailRollsBack(t *testing.T) {
	s, mock := newMockStorage(t)
	tenant, user := testTenantAndUser()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	mock.ExpectRollback()

	err := s.CreateTenantAndUser(context.Background(), tenant, user)
	require.ErrorIs(t, err, ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTenantAndUserTenantFailureRollsBack(t *testing.T) {
	s, mock := newMockStorage(t)
	tenant, user := testTenantAndUser()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tenants").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "tenants_shop_domain_key"})
	mock.ExpectRollback()

	err := s.CreateTenantAndUser(context.Background(), tenant, user)
	require.ErrorIs(t, err, ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	s, mock := newMockStorage(t)
	userID := uuid.New()
	tenantID := uuid.New()
	now := time.Now()

	cols := []string{"id", "tenant_id", "email", "name", "password_hash", "role", "last_login_at", "created_at", "company_name"}
	mock.ExpectQuery("FROM users u").
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(userID, tenantID, "a@x.com", "Acme Admin", "$2a$10$hash", "admin", nil, now, "Acme"))

	user, company, err := s.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.Equal(t, tenantID, user.TenantID)
	require.Equal(t, "Acme", company)
	require.Nil(t, user.LastLoginAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("FROM users u").
		WithArgs("missing@x.com").
		WillReturnError(sql.ErrNoRows)

	_, _, err := s.GetUserByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
