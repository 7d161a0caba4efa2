// internal/storage/campaigns.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Pranav212nair/xeno/internal/model"
)

const campaignColumns = `
	c.id, c.tenant_id, c.segment_id, c.name, c.channel, c.status,
	c.sent, c.delivered, c.opened, c.clicked, c.converted,
	c.revenue, c.cost, c.started_at, c.completed_at, c.created_at`

// ListCampaigns returns the tenant's campaigns, newest first, with the target
// segment name joined in when present.
func (s *Storage) ListCampaigns(ctx context.Context, tenantID uuid.UUID) ([]model.Campaign, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+campaignColumns+`, COALESCE(sg.name, '')
		FROM campaigns c
		LEFT JOIN segments sg ON sg.id = c.segment_id
		WHERE c.tenant_id = $1
		ORDER BY c.created_at DESC
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.SegmentID, &c.Name, &c.Channel, &c.Status,
			&c.Sent, &c.Delivered, &c.Opened, &c.Clicked, &c.Converted,
			&c.Revenue, &c.Cost, &c.StartedAt, &c.CompletedAt, &c.CreatedAt,
			&c.SegmentName,
		); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// CreateCampaign inserts a campaign. The tenant id comes from the caller's
// verified claims, never from the request body.
func (s *Storage) CreateCampaign(ctx context.Context, c *model.Campaign) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO campaigns (id, tenant_id, segment_id, name, channel, status,
		                       sent, delivered, opened, clicked, converted,
		                       revenue, cost, started_at, completed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, c.ID, c.TenantID, c.SegmentID, c.Name, c.Channel, c.Status,
		c.Sent, c.Delivered, c.Opened, c.Clicked, c.Converted,
		c.Revenue, c.Cost, c.StartedAt, c.CompletedAt, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// CampaignUpdate carries the mutable campaign fields; nil means keep current.
type CampaignUpdate struct {
	Name      *string
	Channel   *string
	Status    *string
	SegmentID *uuid.UUID
}

// UpdateCampaign mutates a campaign the tenant owns. An id belonging to a
// different tenant matches zero rows and reports ErrNotFound.
func (s *Storage) UpdateCampaign(ctx context.Context, tenantID, id uuid.UUID, upd CampaignUpdate) (*model.Campaign, error) {
	row := s.DB.QueryRowContext(ctx, `
		UPDATE campaigns c
		SET name = COALESCE($3, name),
		    channel = COALESCE($4, channel),
		    status = COALESCE($5, status),
		    segment_id = COALESCE($6, segment_id)
		WHERE c.id = $1 AND c.tenant_id = $2
		RETURNING `+campaignColumns,
		id, tenantID, upd.Name, upd.Channel, upd.Status, upd.SegmentID)

	var c model.Campaign
	err := row.Scan(
		&c.ID, &c.TenantID, &c.SegmentID, &c.Name, &c.Channel, &c.Status,
		&c.Sent, &c.Delivered, &c.Opened, &c.Clicked, &c.Converted,
		&c.Revenue, &c.Cost, &c.StartedAt, &c.CompletedAt, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return &c, nil
}

// DeleteCampaign removes a campaign the tenant owns; cross-tenant ids affect
// zero rows and report ErrNotFound.
func (s *Storage) DeleteCampaign(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM campaigns WHERE id = $1 AND tenant_id = $2
	`, id, tenantID)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
