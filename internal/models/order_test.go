package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitionsForwardOnly(t *testing.T) {
	assert.True(t, StatusNew.CanTransitionTo(StatusPacked))
	assert.True(t, StatusNew.CanTransitionTo(StatusDelivered))
	assert.True(t, StatusPacked.CanTransitionTo(StatusShipped))
	assert.True(t, StatusShipped.CanTransitionTo(StatusDelivered))

	// No going backwards
	assert.False(t, StatusShipped.CanTransitionTo(StatusNew))
	assert.False(t, StatusDelivered.CanTransitionTo(StatusShipped))
	assert.False(t, StatusPacked.CanTransitionTo(StatusPacked))
}

func TestCancelledIsTerminal(t *testing.T) {
	assert.False(t, StatusCancelled.IsTracked())
	assert.False(t, StatusCancelled.CanTransitionTo(StatusNew))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusDelivered))
	assert.False(t, StatusNew.CanTransitionTo(StatusCancelled))
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusNew, StatusPacked, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus("Returned"))
	assert.False(t, ValidStatus(""))
}

func TestOrderItemsScanStructured(t *testing.T) {
	raw := []byte(`[{"productId":"7","productName":"Dettol Soap","qty":2,"price":"45.00","total":"90.00"}]`)

	var items OrderItems
	require.NoError(t, items.Scan(raw))

	assert.False(t, items.IsLegacy())
	require.Len(t, items.Structured, 1)
	assert.Equal(t, "Dettol Soap", items.Structured[0].ProductName)
	assert.Equal(t, 2, items.Structured[0].Qty)
	assert.True(t, items.Structured[0].Total.Equal(decimal.RequireFromString("90.00")))
}

func TestOrderItemsScanLegacyText(t *testing.T) {
	var items OrderItems
	require.NoError(t, items.Scan([]byte(`"2x soap, 1 sanitizer"`)))

	assert.True(t, items.IsLegacy())
	assert.Equal(t, "2x soap, 1 sanitizer", items.LegacyText)
	assert.Nil(t, items.Structured)
}

func TestOrderItemsScanNull(t *testing.T) {
	var items OrderItems
	require.NoError(t, items.Scan([]byte("null")))
	assert.False(t, items.IsLegacy())
	assert.Nil(t, items.Structured)
}

func TestOrderItemsMarshalJSON(t *testing.T) {
	structured := OrderItems{Structured: []OrderItem{{ProductID: "1", ProductName: "Soap", Qty: 1}}}
	b, err := json.Marshal(structured)
	require.NoError(t, err)
	assert.True(t, b[0] == '[')

	legacy := OrderItems{LegacyText: "old order"}
	b, err = json.Marshal(legacy)
	require.NoError(t, err)
	assert.Equal(t, `"old order"`, string(b))

	empty := OrderItems{}
	b, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestRefID(t *testing.T) {
	order := &Order{ID: uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")}
	assert.Equal(t, "A1B2C3D4", order.RefID())
}
