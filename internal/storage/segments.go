// internal/storage/segments.go
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/model"
)

func (s *Storage) ListSegments(ctx context.Context, tenantID uuid.UUID) ([]model.Segment, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, tenant_id, name, description, type, customer_count, created_at
		FROM segments
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query segments: %w", err)
	}
	defer rows.Close()

	var segments []model.Segment
	for rows.Next() {
		var sg model.Segment
		if err := rows.Scan(&sg.ID, &sg.TenantID, &sg.Name, &sg.Description, &sg.Type, &sg.CustomerCount, &sg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		segments = append(segments, sg)
	}
	return segments, rows.Err()
}

func (s *Storage) CreateSegment(ctx context.Context, sg *model.Segment) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO segments (id, tenant_id, name, description, type, customer_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, sg.ID, sg.TenantID, sg.Name, sg.Description, sg.Type, sg.CustomerCount, sg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert segment: %w", err)
	}
	return nil
}
