package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the direction of a stock movement.
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Stock movement reason categories. These mirror the choices offered on the
// stock entry form.
const (
	ReasonNewShipment = "New Shipment"
	ReasonReturn      = "Return"
	ReasonCorrection  = "Correction"
	ReasonDamage      = "Damage"
)

// ValidReason reports whether reason is one of the known categories.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonNewShipment, ReasonReturn, ReasonCorrection, ReasonDamage:
		return true
	}
	return false
}

// InventoryLog is an append-only audit record of one stock movement. Rows are
// never updated or deleted by the application.
type InventoryLog struct {
	ID        int64           `db:"id" json:"id"`
	ProductID int             `db:"product_id" json:"productId"`
	Type      MovementType    `db:"type" json:"type"`
	Qty       int             `db:"qty" json:"qty"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Reason    string          `db:"reason" json:"reason"`
	Note      string          `db:"note" json:"note"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}
