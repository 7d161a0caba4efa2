// internal/model/segment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Segment struct {
	ID            uuid.UUID `json:"id"`
	TenantID      uuid.UUID `json:"tenantId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Type          string    `json:"type"` // "custom" or "behavioral"
	CustomerCount int       `json:"customerCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
