package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygienicomfort/shop_api/internal/models"
)

func testDirectory() []models.Customer {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Customer{
		{CustomerName: "Anil Gupta", Phone: "+919876543210", TotalSpend: decimal.NewFromInt(500), CreatedAt: base},
		{CustomerName: "Bhavna Shah", Phone: "+919812345678", TotalSpend: decimal.NewFromInt(2500), CreatedAt: base.AddDate(0, 1, 0)},
		{CustomerName: "Chirag Mehta", Phone: "+919900112233", TotalSpend: decimal.NewFromInt(1200), CreatedAt: base.AddDate(0, 2, 0)},
	}
}

func TestFilterCustomers(t *testing.T) {
	got := FilterCustomers(testDirectory(), "bhavna")
	require.Len(t, got, 1)
	assert.Equal(t, "Bhavna Shah", got[0].CustomerName)

	got = FilterCustomers(testDirectory(), "9900")
	require.Len(t, got, 1)
	assert.Equal(t, "Chirag Mehta", got[0].CustomerName)

	got = FilterCustomers(testDirectory(), "")
	assert.Len(t, got, 3)
}

func TestSortCustomers(t *testing.T) {
	customers := testDirectory()

	SortCustomers(customers, CustomerSortName)
	assert.Equal(t, "Anil Gupta", customers[0].CustomerName)

	SortCustomers(customers, CustomerSortSpent)
	assert.Equal(t, "Bhavna Shah", customers[0].CustomerName)

	SortCustomers(customers, CustomerSortRecent)
	assert.Equal(t, "Chirag Mehta", customers[0].CustomerName)

	// Unknown mode falls back to recent
	SortCustomers(customers, "oldest")
	assert.Equal(t, "Chirag Mehta", customers[0].CustomerName)
}

type fakeCustomerStore struct {
	customer *models.Customer
}

func (f *fakeCustomerStore) GetAll() ([]models.Customer, error) {
	return []models.Customer{*f.customer}, nil
}

func (f *fakeCustomerStore) GetByID(id uuid.UUID) (*models.Customer, error) {
	if f.customer == nil || f.customer.ID != id {
		return nil, sql.ErrNoRows
	}
	c := *f.customer
	return &c, nil
}

func (f *fakeCustomerStore) Create(customer *models.Customer) error { return nil }
func (f *fakeCustomerStore) Update(customer *models.Customer) error { return nil }
func (f *fakeCustomerStore) Delete(id uuid.UUID) error              { return nil }

type fakeOrderHistory struct {
	byID      []models.Order
	byName    []models.Order
	nameCalls int
}

func (f *fakeOrderHistory) ListByCustomerID(customerID uuid.UUID) ([]models.Order, error) {
	return f.byID, nil
}

func (f *fakeOrderHistory) ListByCustomerName(name string) ([]models.Order, error) {
	f.nameCalls++
	return f.byName, nil
}

func profileFixture(history *fakeOrderHistory) (uuid.UUID, *CustomerService) {
	id := uuid.New()
	store := &fakeCustomerStore{customer: &models.Customer{
		ID:           id,
		CustomerName: "Anil Gupta",
		Phone:        "+919876543210",
		TotalOrders:  9,
		TotalSpend:   decimal.NewFromInt(9999),
	}}
	return id, NewCustomerService(store, history)
}

func TestProfileIDLinkedOrders(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := models.Order{CustomerName: "Anil Gupta", TotalPrice: decimal.NewFromInt(300), CreatedAt: base.AddDate(0, 0, 1)}
	older := models.Order{CustomerName: "Anil Gupta", TotalPrice: decimal.NewFromInt(200), CreatedAt: base}
	history := &fakeOrderHistory{
		byID:   []models.Order{newer, older},
		byName: []models.Order{{CustomerName: "Anil Gupta", TotalPrice: decimal.NewFromInt(777), CreatedAt: base}},
	}
	id, svc := profileFixture(history)

	profile, err := svc.Profile(id)
	require.NoError(t, err)
	require.Len(t, profile.Orders, 2)
	assert.True(t, profile.Orders[0].CreatedAt.After(profile.Orders[1].CreatedAt))

	// Name lookup only runs when the id link finds nothing.
	assert.Zero(t, history.nameCalls)

	// Lifetime figures come from the resolved orders, not the stored row.
	assert.Equal(t, 2, profile.TotalOrders)
	assert.True(t, profile.TotalSpend.Equal(decimal.NewFromInt(500)), profile.TotalSpend.String())
}

func TestProfileNameFallback(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	history := &fakeOrderHistory{
		byName: []models.Order{
			{CustomerName: "Anil Gupta", TotalPrice: decimal.NewFromInt(150), CreatedAt: base.AddDate(0, 0, 2)},
			{CustomerName: "Anil Gupta", TotalPrice: decimal.NewFromInt(100), CreatedAt: base},
		},
	}
	id, svc := profileFixture(history)

	profile, err := svc.Profile(id)
	require.NoError(t, err)
	assert.Equal(t, 1, history.nameCalls)
	require.Len(t, profile.Orders, 2)
	assert.True(t, profile.Orders[0].CreatedAt.After(profile.Orders[1].CreatedAt))
	assert.Equal(t, 2, profile.TotalOrders)
	assert.True(t, profile.TotalSpend.Equal(decimal.NewFromInt(250)), profile.TotalSpend.String())
}

func TestProfileNoOrdersKeepsStoredFigures(t *testing.T) {
	history := &fakeOrderHistory{}
	id, svc := profileFixture(history)

	profile, err := svc.Profile(id)
	require.NoError(t, err)
	assert.Empty(t, profile.Orders)
	assert.Equal(t, 1, history.nameCalls)
	assert.Equal(t, 9, profile.TotalOrders)
	assert.True(t, profile.TotalSpend.Equal(decimal.NewFromInt(9999)))
}
