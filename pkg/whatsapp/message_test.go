package whatsapp

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hygienicomfort/shop_api/internal/models"
)

func testOrder(status models.OrderStatus) *models.Order {
	return &models.Order{
		ID:           uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
		CustomerName: "Ramesh Kumar",
		PhoneNumber:  "+919876543210",
		Status:       status,
	}
}

func TestLinkStripsNonDigits(t *testing.T) {
	link := Link("+91 98765-43210", "hi")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="))
}

func TestConfirmationLink(t *testing.T) {
	link := ConfirmationLink(testOrder(models.StatusNew), "Hygienic & Comfort Co.")

	assert.Contains(t, link, "wa.me/919876543210")
	assert.Contains(t, link, "Ramesh+Kumar")
	assert.Contains(t, link, "A1B2C3D4")
	assert.Contains(t, link, "as+per+your+confirmation+on+call")
}

func TestStatusLinkPerStatus(t *testing.T) {
	assert.Contains(t, StatusLink(testOrder(models.StatusPacked), "Shop"), "packed")
	assert.Contains(t, StatusLink(testOrder(models.StatusShipped), "Shop"), "shipped")
	assert.Contains(t, StatusLink(testOrder(models.StatusDelivered), "Shop"), "delivered")

	// No customer-facing message for these
	assert.Empty(t, StatusLink(testOrder(models.StatusNew), "Shop"))
	assert.Empty(t, StatusLink(testOrder(models.StatusCancelled), "Shop"))
}
