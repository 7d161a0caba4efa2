// internal/model/journey.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Journey struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenantId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	EnrolledCount  int       `json:"enrolledCount"`
	CompletedCount int       `json:"completedCount"`
	ConversionRate float64   `json:"conversionRate"`
	CreatedAt      time.Time `json:"createdAt"`
}
