// internal/storage/tenants.go
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

func (s *Storage) GetTenant(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	var t model.Tenant
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, shop_domain, company_name, email, is_active, access_token, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`, id).Scan(&t.ID, &t.ShopDomain, &t.CompanyName, &t.Email, &t.IsActive, &t.AccessToken, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan tenant: %w", err)
	}
	return &t, nil
}

// UpdateTenantCredentials stores the commerce-platform credential for a tenant.
func (s *Storage) UpdateTenantCredentials(ctx context.Context, id uuid.UUID, accessToken, shopDomain string) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE tenants
		SET access_token = $2, shop_domain = $3, updated_at = $4
		WHERE id = $1
	`, id, accessToken, shopDomain, time.Now())
	if err != nil {
		return fmt.Errorf("update tenant credentials: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
