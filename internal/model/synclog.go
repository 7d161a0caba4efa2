// internal/model/synclog.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SyncStatusInProgress = "in_progress"
	SyncStatusCompleted  = "completed"
	SyncStatusFailed     = "failed"
)

// SyncLog records one attempt to pull data from the commerce platform.
type SyncLog struct {
	ID               uuid.UUID `json:"id"`
	TenantID         uuid.UUID `json:"tenantId"`
	ResourceType     string    `json:"resourceType"`
	Status           string    `json:"status"`
	RecordsProcessed int       `json:"recordsProcessed"`
	CreatedAt        time.Time `json:"createdAt"`
}
