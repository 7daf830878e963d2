package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygienicomfort/shop_api/internal/models"
)

func testCatalog() []models.Product {
	barcode := "8901234567890"
	return []models.Product{
		{ID: 1, Name: "Dettol Soap", Category: "Hygienic", Price: decimal.NewFromInt(45), Stock: 3, MinStock: 5},
		{ID: 2, Name: "Memory Foam Pillow", Category: "Comfort", Price: decimal.NewFromInt(899), Stock: 12, MinStock: 5},
		{ID: 3, Name: "Hand Sanitizer", Category: "Hygienic", Price: decimal.NewFromInt(120), Stock: 5, MinStock: 5, Barcode: &barcode},
		{ID: 4, Name: "Bed Sheet", Category: "Comfort", Price: decimal.NewFromInt(650), Stock: 30, MinStock: 5},
	}
}

func TestFilterProductsBySearch(t *testing.T) {
	got := FilterProducts(testCatalog(), "soap", "", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Dettol Soap", got[0].Name)

	// Barcode substring also matches
	got = FilterProducts(testCatalog(), "890123", "", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Hand Sanitizer", got[0].Name)
}

func TestFilterProductsByCategory(t *testing.T) {
	got := FilterProducts(testCatalog(), "", "Comfort", "")
	assert.Len(t, got, 2)

	got = FilterProducts(testCatalog(), "", "All", "")
	assert.Len(t, got, 4)
}

func TestFilterProductsByStockHealth(t *testing.T) {
	low := FilterProducts(testCatalog(), "", "", StockFilterLow)
	require.Len(t, low, 2)
	// Stock equal to min stock counts as low
	assert.Equal(t, 1, low[0].ID)
	assert.Equal(t, 3, low[1].ID)

	healthy := FilterProducts(testCatalog(), "", "", StockFilterHealthy)
	assert.Len(t, healthy, 2)
}

func TestSortProducts(t *testing.T) {
	products := testCatalog()
	SortProducts(products, "price", "asc")
	assert.Equal(t, "Dettol Soap", products[0].Name)
	assert.Equal(t, "Memory Foam Pillow", products[3].Name)

	SortProducts(products, "price", "desc")
	assert.Equal(t, "Memory Foam Pillow", products[0].Name)

	SortProducts(products, "stock", "asc")
	assert.Equal(t, 3, products[0].Stock)

	// Unknown field keeps order
	before := make([]models.Product, len(products))
	copy(before, products)
	SortProducts(products, "weight", "asc")
	assert.Equal(t, before, products)
}

func TestSortProductsDescKeepsEqualKeysStable(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Bath Towel", Price: decimal.NewFromInt(250), Stock: 10},
		{ID: 2, Name: "Bath Towel", Price: decimal.NewFromInt(250), Stock: 10},
		{ID: 3, Name: "Bath Towel", Price: decimal.NewFromInt(250), Stock: 10},
	}

	SortProducts(products, "price", "desc")
	assert.Equal(t, []int{1, 2, 3}, []int{products[0].ID, products[1].ID, products[2].ID})

	SortProducts(products, "name", "desc")
	assert.Equal(t, []int{1, 2, 3}, []int{products[0].ID, products[1].ID, products[2].ID})

	SortProducts(products, "stock", "desc")
	assert.Equal(t, []int{1, 2, 3}, []int{products[0].ID, products[1].ID, products[2].ID})
}

func TestPaginateProducts(t *testing.T) {
	products := make([]models.Product, 19)
	for i := range products {
		products[i].ID = i + 1
	}

	page := PaginateProducts(products, 1)
	assert.Len(t, page.Products, 8)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 19, page.TotalItems)

	page = PaginateProducts(products, 3)
	assert.Len(t, page.Products, 3)
	assert.Equal(t, 17, page.Products[0].ID)

	// Out of range pages are empty but keep the counts
	page = PaginateProducts(products, 9)
	assert.Empty(t, page.Products)
	assert.Equal(t, 3, page.TotalPages)

	// Empty catalog still reports one page
	page = PaginateProducts(nil, 1)
	assert.Empty(t, page.Products)
	assert.Equal(t, 1, page.TotalPages)
}
