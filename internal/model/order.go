// internal/model/order.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID         uuid.UUID  `json:"id"`
	TenantID   uuid.UUID  `json:"tenantId"`
	CustomerID *uuid.UUID `json:"customerId,omitempty"`
	TotalPrice float64    `json:"totalPrice"`
	CreatedAt  time.Time  `json:"createdAt"`

	Customer *OrderCustomer `json:"customer,omitempty"`
	Items    []OrderItem    `json:"items"`
}

// OrderCustomer is the customer summary embedded in order listings.
type OrderCustomer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type OrderItem struct {
	ID       uuid.UUID `json:"id"`
	OrderID  uuid.UUID `json:"orderId"`
	Title    string    `json:"title"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
}
