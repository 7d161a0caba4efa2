// internal/model/tenant.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is one storefront. Every other entity hangs off a tenant id.
type Tenant struct {
	ID          uuid.UUID `json:"id"`
	ShopDomain  string    `json:"shopDomain"`
	CompanyName string    `json:"companyName"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"isActive"`
	AccessToken string    `json:"-"` // third-party store credential, never serialized
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
