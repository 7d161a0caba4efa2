// internal/model/customer.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle stages a customer can be in.
const (
	LifecycleNew     = "new"
	LifecycleActive  = "active"
	LifecycleAtRisk  = "at_risk"
	LifecycleChurned = "churned"
)

type Customer struct {
	ID            uuid.UUID `json:"id"`
	TenantID      uuid.UUID `json:"tenantId"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	TotalSpent    float64   `json:"totalSpent"`
	OrdersCount   int       `json:"ordersCount"`
	LifetimeValue float64   `json:"lifetimeValue"`
	Lifecycle     string    `json:"lifecycle"`
	EmailEngaged  bool      `json:"emailEngaged"`
	CreatedAt     time.Time `json:"createdAt"`
}
