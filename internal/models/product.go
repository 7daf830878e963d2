package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ImageList is a jsonb-backed list of product image URLs.
type ImageList []string

// Scan implements sql.Scanner for jsonb image arrays.
func (l *ImageList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errors.New("images: unsupported scan source")
	}
	return json.Unmarshal(b, l)
}

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

// Product represents a catalog item with its on-hand stock.
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID            int             `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Category      string          `db:"category" json:"category"`
	Price         decimal.Decimal `db:"price" json:"price"`
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchasePrice"`
	Stock         int             `db:"stock" json:"stock"`
	MinStock      int             `db:"min_stock" json:"minStock"`
	Barcode       *string         `db:"barcode" json:"barcode,omitempty"`
	Images        ImageList       `db:"images" json:"images"`
	Description   string          `db:"description" json:"description"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}

// IsLowStock reports whether the product is at or below its alert level.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
