// internal/model/campaign.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CampaignStatusLive      = "live"
	CampaignStatusCompleted = "completed"
	CampaignStatusPaused    = "paused"
)

type Campaign struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenantId"`
	SegmentID   *uuid.UUID `json:"segmentId,omitempty"`
	Name        string     `json:"name"`
	Channel     string     `json:"channel"`
	Status      string     `json:"status"`
	Sent        int        `json:"sent"`
	Delivered   int        `json:"delivered"`
	Opened      int        `json:"opened"`
	Clicked     int        `json:"clicked"`
	Converted   int        `json:"converted"`
	Revenue     float64    `json:"revenue"`
	Cost        float64    `json:"cost"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`

	// SegmentName is populated on list reads when the campaign targets a segment.
	SegmentName string `json:"segmentName,omitempty"`
}
