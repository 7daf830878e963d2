package invoice

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygienicomfort/shop_api/internal/models"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(ShopInfo{
		Name:    "Hygienic & Comfort Co.",
		Address: "Shop no.1, Ambernath East",
		Phone:   "9307760665",
	})
	require.NoError(t, err)
	return r
}

func TestRenderInvoiceStructuredItems(t *testing.T) {
	order := &models.Order{
		ID:           uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
		CustomerName: "Ramesh Kumar",
		PhoneNumber:  "+919876543210",
		Items: models.OrderItems{Structured: []models.OrderItem{
			{ProductName: "Dettol Soap", Qty: 2, Price: decimal.NewFromInt(45), Total: decimal.NewFromInt(90)},
		}},
		TotalPrice:    decimal.NewFromInt(90),
		PaymentStatus: models.PaymentPaid,
		CreatedAt:     time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}

	html, err := testRenderer(t).RenderInvoice(order)
	require.NoError(t, err)

	assert.Contains(t, html, "Hygienic &amp; Comfort Co.")
	assert.Contains(t, html, "Ramesh Kumar")
	assert.Contains(t, html, "A1B2C3D4")
	assert.Contains(t, html, "Dettol Soap")
	assert.Contains(t, html, "2 PAC")
	assert.Contains(t, html, "₹90.00")
	assert.Contains(t, html, "15/03/2026")
}

func TestRenderInvoiceLegacyItems(t *testing.T) {
	order := &models.Order{
		ID:           uuid.New(),
		CustomerName: "Sita Devi",
		Items:        models.OrderItems{LegacyText: "2x soap, 1 sanitizer"},
		TotalPrice:   decimal.NewFromInt(150),
	}

	html, err := testRenderer(t).RenderInvoice(order)
	require.NoError(t, err)
	assert.Contains(t, html, "2x soap, 1 sanitizer")
}

func TestRenderInvoiceWalkingCustomer(t *testing.T) {
	order := &models.Order{ID: uuid.New(), TotalPrice: decimal.Zero}

	html, err := testRenderer(t).RenderInvoice(order)
	require.NoError(t, err)
	assert.Contains(t, html, "Walking Customer")
}

func TestRenderStatement(t *testing.T) {
	customer := &models.Customer{
		CustomerName: "Ramesh Kumar",
		Phone:        "+919876543210",
	}
	orders := []models.Order{
		{
			ID:         uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
			Items:      models.OrderItems{Structured: []models.OrderItem{{ProductName: "Soap"}, {ProductName: "Pillow"}}},
			TotalPrice: decimal.NewFromInt(944),
			CreatedAt:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	html, err := testRenderer(t).RenderStatement(customer, orders, decimal.NewFromInt(944))
	require.NoError(t, err)

	assert.Contains(t, html, "STATEMENT")
	assert.Contains(t, html, "#A1B2C3D4")
	assert.Contains(t, html, "Soap, Pillow")
	assert.Contains(t, html, "Total Spent: ₹944.00")
	assert.Contains(t, html, "05/01/2026")
}
