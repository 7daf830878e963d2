package service

import (
	"github.com/shopspring/decimal"

	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/repository"
)

// MaskedAmount replaces monetary figures for accounts without the admin
// role.
const MaskedAmount = "₹ ****"

// DashboardService aggregates catalog and order figures for the landing
// page cards.
type DashboardService struct {
	productRepo *repository.ProductRepository
	orderRepo   *repository.OrderRepository
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(productRepo *repository.ProductRepository, orderRepo *repository.OrderRepository) *DashboardService {
	return &DashboardService{productRepo: productRepo, orderRepo: orderRepo}
}

// DashboardStats is the landing page payload. Monetary fields are
// rendered as strings so they can carry the masked form for staff.
type DashboardStats struct {
	TotalProducts  int            `json:"totalProducts"`
	LowStockCount  int            `json:"lowStockCount"`
	TotalOrders    int            `json:"totalOrders"`
	InventoryValue string         `json:"inventoryValue"`
	Revenue        string         `json:"revenue"`
	Masked         bool           `json:"masked"`
	RecentOrders   []models.Order `json:"recentOrders"`
}

// Stats computes the dashboard figures. Inventory value is stock times
// purchase price across the catalog; revenue sums every order total.
// Non-admin viewers get both amounts masked.
func (s *DashboardService) Stats(role string) (*DashboardStats, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	inventoryValue := decimal.Zero
	lowStock := 0
	for _, p := range products {
		inventoryValue = inventoryValue.Add(p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Stock))))
		if p.IsLowStock() {
			lowStock++
		}
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.TotalPrice)
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	stats := &DashboardStats{
		TotalProducts:  len(products),
		LowStockCount:  lowStock,
		TotalOrders:    len(orders),
		InventoryValue: FormatAmount(inventoryValue, role),
		Revenue:        FormatAmount(revenue, role),
		Masked:         role != models.RoleAdmin,
		RecentOrders:   recent,
	}
	return stats, nil
}

// FormatAmount renders a rupee amount for the given viewer role. Staff
// accounts see the masked placeholder instead of the figure.
func FormatAmount(amount decimal.Decimal, role string) string {
	if role != models.RoleAdmin {
		return MaskedAmount
	}
	return "₹" + amount.StringFixed(2)
}
