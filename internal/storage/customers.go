// internal/storage/customers.go
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/model"
)

// ListCustomers returns the tenant's customers ordered by lifetime value.
// An optional lifecycle filter narrows the result set within the tenant.
func (s *Storage) ListCustomers(ctx context.Context, tenantID uuid.UUID, lifecycle string, limit int) ([]model.Customer, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, tenant_id, email, first_name, last_name, total_spent, orders_count,
		       lifetime_value, lifecycle, email_engaged, created_at
		FROM customers
		WHERE tenant_id = $1
		  AND ($2 = '' OR lifecycle = $2)
		ORDER BY lifetime_value DESC
		LIMIT $3
	`, tenantID, lifecycle, limit)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// ListTopCustomers returns the tenant's biggest spenders.
func (s *Storage) ListTopCustomers(ctx context.Context, tenantID uuid.UUID, limit int) ([]model.Customer, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, tenant_id, email, first_name, last_name, total_spent, orders_count,
		       lifetime_value, lifecycle, email_engaged, created_at
		FROM customers
		WHERE tenant_id = $1
		ORDER BY total_spent DESC
		LIMIT $2
	`, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("query top customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func scanCustomers(rows *sql.Rows) ([]model.Customer, error) {
	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Email, &c.FirstName, &c.LastName,
			&c.TotalSpent, &c.OrdersCount, &c.LifetimeValue, &c.Lifecycle, &c.EmailEngaged, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// CountCustomers counts all customers belonging to the tenant.
func (s *Storage) CountCustomers(ctx context.Context, tenantID uuid.UUID) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers WHERE tenant_id = $1`, tenantID).Scan(&n)
	return n, err
}

// LifecycleCounts buckets the tenant's customers by lifecycle stage.
func (s *Storage) LifecycleCounts(ctx context.Context, tenantID uuid.UUID) (map[string]int, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT lifecycle, COUNT(*) FROM customers WHERE tenant_id = $1 GROUP BY lifecycle
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query lifecycle counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var stage string
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return nil, fmt.Errorf("scan lifecycle count: %w", err)
		}
		counts[stage] = n
	}
	return counts, rows.Err()
}

// CreateCustomer inserts a customer row for the tenant.
func (s *Storage) CreateCustomer(ctx context.Context, c *model.Customer) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO customers (id, tenant_id, email, first_name, last_name, total_spent,
		                       orders_count, lifetime_value, lifecycle, email_engaged, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, c.ID, c.TenantID, c.Email, c.FirstName, c.LastName, c.TotalSpent,
		c.OrdersCount, c.LifetimeValue, c.Lifecycle, c.EmailEngaged, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}
