// internal/storage/users.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/model"
)

// CreateTenantAndUser registers a new account: the tenant row and its admin
// user are written in one transaction so a failure leaves no orphan tenant.
// A duplicate user email surfaces as ErrDuplicate with zero rows committed.
func (s *Storage) CreateTenantAndUser(ctx context.Context, tenant *model.Tenant, user *model.User) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tenants (id, shop_domain, company_name, email, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`, tenant.ID, tenant.ShopDomain, tenant.CompanyName, tenant.Email, tenant.IsActive, tenant.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, tenant_id, email, name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.TenantID, user.Email, user.Name, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return tx.Commit()
}

// GetUserByEmail loads a user and the company name of its tenant. Email is
// unique across all tenants.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, string, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT u.id, u.tenant_id, u.email, u.name, u.password_hash, u.role, u.last_login_at, u.created_at,
		       t.company_name
		FROM users u
		JOIN tenants t ON t.id = u.tenant_id
		WHERE u.email = $1
	`, email)
	return scanUserWithCompany(row)
}

// GetUserByID loads a user scoped to its tenant.
func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, string, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT u.id, u.tenant_id, u.email, u.name, u.password_hash, u.role, u.last_login_at, u.created_at,
		       t.company_name
		FROM users u
		JOIN tenants t ON t.id = u.tenant_id
		WHERE u.id = $1
	`, id)
	return scanUserWithCompany(row)
}

func scanUserWithCompany(row *sql.Row) (*model.User, string, error) {
	var u model.User
	var company string
	err := row.Scan(&u.ID, &u.TenantID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.LastLoginAt, &u.CreatedAt, &company)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("scan user: %w", err)
	}
	return &u, company, nil
}

// TouchLastLogin records a successful login.
func (s *Storage) TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := s.DB.ExecContext(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, userID, at)
	return err
}
