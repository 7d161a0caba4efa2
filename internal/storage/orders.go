// internal/storage/orders.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Pranav212nair/xeno/internal/model"
)

// ListOrders returns the tenant's orders, newest first, with the customer
// summary joined and line items attached. The from/to window is applied only
// when both bounds are given.
func (s *Storage) ListOrders(ctx context.Context, tenantID uuid.UUID, from, to *time.Time, limit int) ([]model.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT o.id, o.tenant_id, o.customer_id, o.total_price, o.created_at,
		       COALESCE(c.email, ''), COALESCE(c.first_name, ''), COALESCE(c.last_name, '')
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.tenant_id = $1
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at <= $3)
		ORDER BY o.created_at DESC
		LIMIT $4
	`, tenantID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	var ids []uuid.UUID
	for rows.Next() {
		var o model.Order
		var cust model.OrderCustomer
		if err := rows.Scan(&o.ID, &o.TenantID, &o.CustomerID, &o.TotalPrice, &o.CreatedAt,
			&cust.Email, &cust.FirstName, &cust.LastName); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.CustomerID != nil {
			o.Customer = &cust
		}
		o.Items = []model.OrderItem{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err := s.attachOrderItems(ctx, orders, ids); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Storage) attachOrderItems(ctx context.Context, orders []model.Order, ids []uuid.UUID) error {
	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, order_id, title, quantity, price
		FROM order_items
		WHERE order_id = ANY($1)
	`, pq.Array(idStrs))
	if err != nil {
		return fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]model.OrderItem, len(orders))
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Title, &it.Quantity, &it.Price); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		if items, ok := byOrder[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}
	return nil
}

// OrderStats sums the tenant's order revenue inside the window.
func (s *Storage) OrderStats(ctx context.Context, tenantID uuid.UUID, since time.Time) (count int, total float64, err error) {
	err = s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_price), 0)
		FROM orders
		WHERE tenant_id = $1 AND created_at >= $2
	`, tenantID, since).Scan(&count, &total)
	if err != nil && err != sql.ErrNoRows {
		return 0, 0, fmt.Errorf("query order stats: %w", err)
	}
	return count, total, nil
}

// CreateOrder inserts an order and its line items in one transaction.
func (s *Storage) CreateOrder(ctx context.Context, o *model.Order) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, tenant_id, customer_id, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, o.ID, o.TenantID, o.CustomerID, o.TotalPrice, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, title, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, it.ID, o.ID, it.Title, it.Quantity, it.Price)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}
