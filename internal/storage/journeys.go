// internal/storage/journeys.go
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/model"
)

func (s *Storage) ListJourneys(ctx context.Context, tenantID uuid.UUID) ([]model.Journey, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, tenant_id, name, description, status, enrolled_count, completed_count, conversion_rate, created_at
		FROM journeys
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query journeys: %w", err)
	}
	defer rows.Close()

	var journeys []model.Journey
	for rows.Next() {
		var j model.Journey
		if err := rows.Scan(&j.ID, &j.TenantID, &j.Name, &j.Description, &j.Status,
			&j.EnrolledCount, &j.CompletedCount, &j.ConversionRate, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journey: %w", err)
		}
		journeys = append(journeys, j)
	}
	return journeys, rows.Err()
}

func (s *Storage) CreateJourney(ctx context.Context, j *model.Journey) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO journeys (id, tenant_id, name, description, status, enrolled_count, completed_count, conversion_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, j.ID, j.TenantID, j.Name, j.Description, j.Status, j.EnrolledCount, j.CompletedCount, j.ConversionRate, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert journey: %w", err)
	}
	return nil
}
