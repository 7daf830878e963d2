package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a repeat buyer with stored lifetime aggregates. The
// aggregates are advisory: whenever the customer's order history resolves to
// a non-empty set, figures recomputed from that set take precedence.
type Customer struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	CustomerName string          `db:"customer_name" json:"customerName"`
	Phone        string          `db:"phone" json:"phone"`
	TotalOrders  int             `db:"total_orders" json:"totalOrders"`
	TotalSpend   decimal.Decimal `db:"total_spend" json:"totalSpend"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}
