package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the fulfillment states of an order.
type OrderStatus string

const (
	StatusNew       OrderStatus = "New"
	StatusPacked    OrderStatus = "Packed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// trackingRank orders the forward-only fulfillment states. Cancelled is
// outside the track and terminal.
var trackingRank = map[OrderStatus]int{
	StatusNew:       0,
	StatusPacked:    1,
	StatusShipped:   2,
	StatusDelivered: 3,
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	if s == StatusCancelled {
		return true
	}
	return s.IsTracked()
}

// IsTracked reports whether s is one of the fulfillment tracking states.
func (s OrderStatus) IsTracked() bool {
	_, ok := trackingRank[s]
	return ok
}

// CanTransitionTo reports whether the tracked status may move from s to next.
// Transitions are forward only; Cancelled accepts nothing.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := trackingRank[s]
	if !ok {
		return false
	}
	to, ok := trackingRank[next]
	if !ok {
		return false
	}
	return to > from
}

// PaymentStatus enumerates payment states of an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// OrderItem is one product line within an order.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Qty         int             `json:"qty"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// OrderItems is the tagged variant for the order "items" column. Historical
// rows carry a plain free-text description; newer rows carry a structured
// line-item array. The variant is resolved once at scan time.
type OrderItems struct {
	Structured []OrderItem
	LegacyText string
}

// IsLegacy reports whether the items field held free text instead of a
// structured list.
func (oi *OrderItems) IsLegacy() bool {
	return oi.Structured == nil && oi.LegacyText != ""
}

// Scan implements sql.Scanner. A jsonb array resolves to Structured; a jsonb
// string or any non-array payload resolves to LegacyText.
func (oi *OrderItems) Scan(src interface{}) error {
	oi.Structured = nil
	oi.LegacyText = ""
	if src == nil {
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("order items: unsupported scan source")
	}
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(b, &oi.Structured)
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		oi.LegacyText = s
		return nil
	}
	oi.LegacyText = trimmed
	return nil
}

// Value implements driver.Valuer. Structured items always win; an order that
// still carries legacy text round-trips it unchanged.
func (oi OrderItems) Value() (driver.Value, error) {
	if oi.Structured != nil {
		return json.Marshal(oi.Structured)
	}
	if oi.LegacyText != "" {
		return json.Marshal(oi.LegacyText)
	}
	return json.Marshal([]OrderItem{})
}

// MarshalJSON serializes the resolved variant: an array for structured
// items, a string for legacy text.
func (oi OrderItems) MarshalJSON() ([]byte, error) {
	if oi.IsLegacy() {
		return json.Marshal(oi.LegacyText)
	}
	if oi.Structured == nil {
		return json.Marshal([]OrderItem{})
	}
	return json.Marshal(oi.Structured)
}

// UnmarshalJSON accepts either shape from API clients.
func (oi *OrderItems) UnmarshalJSON(b []byte) error {
	return oi.Scan(b)
}

// Order represents a customer order with its line items and lifecycle state.
type Order struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	CustomerID    *uuid.UUID      `db:"customer_id" json:"customerId,omitempty"`
	CustomerName  string          `db:"customer_name" json:"customerName"`
	PhoneNumber   string          `db:"phone_number" json:"phoneNumber"`
	Items         OrderItems      `db:"items" json:"items"`
	TotalPrice    decimal.Decimal `db:"total_price" json:"totalPrice"`
	Status        OrderStatus     `db:"status" json:"status"`
	IsApproved    bool            `db:"is_approved" json:"isApproved"`
	PaymentStatus PaymentStatus   `db:"payment_status" json:"paymentStatus"`
	PaymentMethod string          `db:"payment_method" json:"paymentMethod"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

// RefID is the short human-facing reference shown on invoices and messages:
// the first segment of the UUID, uppercased.
func (o *Order) RefID() string {
	id := o.ID.String()
	if i := strings.IndexByte(id, '-'); i > 0 {
		id = id[:i]
	}
	return strings.ToUpper(id)
}
