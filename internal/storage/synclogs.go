// internal/storage/synclogs.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/model"
)

func (s *Storage) CreateSyncLog(ctx context.Context, l *model.SyncLog) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO sync_logs (id, tenant_id, resource_type, status, records_processed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, l.ID, l.TenantID, l.ResourceType, l.Status, l.RecordsProcessed, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sync log: %w", err)
	}
	return nil
}

// UpdateSyncLogStatus transitions a sync log; scoped by tenant like every
// other mutation.
func (s *Storage) UpdateSyncLogStatus(ctx context.Context, tenantID, id uuid.UUID, status string, records int) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE sync_logs
		SET status = $3, records_processed = $4
		WHERE id = $1 AND tenant_id = $2
	`, id, tenantID, status, records)
	if err != nil {
		return fmt.Errorf("update sync log: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) GetSyncLog(ctx context.Context, tenantID, id uuid.UUID) (*model.SyncLog, error) {
	var l model.SyncLog
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, tenant_id, resource_type, status, records_processed, created_at
		FROM sync_logs
		WHERE id = $1 AND tenant_id = $2
	`, id, tenantID).Scan(&l.ID, &l.TenantID, &l.ResourceType, &l.Status, &l.RecordsProcessed, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan sync log: %w", err)
	}
	return &l, nil
}
