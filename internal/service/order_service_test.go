package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "1", Qty: 2, Price: decimal.NewFromInt(45)},
		{ProductID: "2", Qty: 3, Price: decimal.RequireFromString("10.50")},
	}

	out, grand := ComputeTotals(items)
	require.Len(t, out, 2)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(90)))
	assert.True(t, out[1].Total.Equal(decimal.RequireFromString("31.50")))
	assert.True(t, grand.Equal(decimal.RequireFromString("121.50")))
}

func TestComputeTotalsIgnoresStoredTotals(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "1", Qty: 1, Price: decimal.NewFromInt(100), Total: decimal.NewFromInt(9999)},
	}
	out, grand := ComputeTotals(items)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, grand.Equal(decimal.NewFromInt(100)))
}

func TestComputeTotalsEmpty(t *testing.T) {
	out, grand := ComputeTotals(nil)
	assert.Empty(t, out)
	assert.True(t, grand.IsZero())
}

func TestAddItemRejectsDuplicate(t *testing.T) {
	product := &models.Product{ID: 1, Name: "Soap", Price: decimal.NewFromInt(45)}

	items, err := AddItem(nil, product)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Qty)
	assert.True(t, items[0].Total.Equal(decimal.NewFromInt(45)))

	_, err = AddItem(items, product)
	assert.Error(t, err)
}

func TestSetQuantity(t *testing.T) {
	items := []models.OrderItem{{ProductID: "1", Qty: 1, Price: decimal.NewFromInt(45), Total: decimal.NewFromInt(45)}}

	items, err := SetQuantity(items, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, items[0].Qty)
	assert.True(t, items[0].Total.Equal(decimal.NewFromInt(180)))

	_, err = SetQuantity(items, 0, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidQuantity)

	_, err = SetQuantity(items, 5, 1)
	assert.Error(t, err)
}

func TestFilterOrders(t *testing.T) {
	orders := []models.Order{
		{ID: uuid.MustParse("aaaa1111-0000-0000-0000-000000000000"), CustomerName: "Ramesh Kumar", PhoneNumber: "+919876543210", Status: models.StatusNew},
		{ID: uuid.MustParse("bbbb2222-0000-0000-0000-000000000000"), CustomerName: "Sita Devi", PhoneNumber: "+919812345678", Status: models.StatusShipped},
		{ID: uuid.MustParse("cccc3333-0000-0000-0000-000000000000"), CustomerName: "Ramesh Patel", PhoneNumber: "+919900112233", Status: models.StatusCancelled},
	}

	byName := FilterOrders(orders, "ramesh", "")
	assert.Len(t, byName, 2)

	byPhone := FilterOrders(orders, "9812345", "")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Sita Devi", byPhone[0].CustomerName)

	byRef := FilterOrders(orders, "bbbb2222", "")
	require.Len(t, byRef, 1)
	assert.Equal(t, "Sita Devi", byRef[0].CustomerName)

	byStatus := FilterOrders(orders, "", "Cancelled")
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Ramesh Patel", byStatus[0].CustomerName)

	all := FilterOrders(orders, "", StatusFilterAll)
	assert.Len(t, all, 3)
}
