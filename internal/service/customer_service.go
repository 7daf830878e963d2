package service

import (
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/repository"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

// Customer sort modes for the directory listing.
const (
	CustomerSortRecent = "recent"
	CustomerSortName   = "name"
	CustomerSortSpent  = "spent"
)

// CustomerStore is the slice of the customer repository the service
// depends on.
type CustomerStore interface {
	GetAll() ([]models.Customer, error)
	GetByID(id uuid.UUID) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id uuid.UUID) error
}

// OrderHistoryLister resolves a customer's orders by the id link or by
// the stored name snapshot.
type OrderHistoryLister interface {
	ListByCustomerID(customerID uuid.UUID) ([]models.Order, error)
	ListByCustomerName(name string) ([]models.Order, error)
}

// CustomerService handles the customer directory and per-customer order
// history.
type CustomerService struct {
	customerRepo CustomerStore
	orderRepo    OrderHistoryLister
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(customerRepo CustomerStore, orderRepo OrderHistoryLister) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, orderRepo: orderRepo}
}

// SaveCustomerRequest is the create/update payload for a customer.
type SaveCustomerRequest struct {
	CustomerName string          `json:"customerName" binding:"required"`
	Phone        string          `json:"phone" binding:"required"`
	TotalOrders  int             `json:"totalOrders"`
	TotalSpend   decimal.Decimal `json:"totalSpend"`
}

// CustomerProfile is one customer with their resolved order history and
// lifetime figures.
type CustomerProfile struct {
	Customer    *models.Customer `json:"customer"`
	Orders      []models.Order   `json:"orders"`
	TotalOrders int              `json:"totalOrders"`
	TotalSpend  decimal.Decimal  `json:"totalSpend"`
}

// FilterCustomers keeps customers whose name or phone contains the
// search term.
func FilterCustomers(customers []models.Customer, search string) []models.Customer {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return customers
	}
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.CustomerName), term) ||
			strings.Contains(c.Phone, strings.TrimSpace(search)) {
			out = append(out, c)
		}
	}
	return out
}

// SortCustomers orders the directory in place. Unknown modes fall back
// to recent-first.
func SortCustomers(customers []models.Customer, sortBy string) {
	switch sortBy {
	case CustomerSortName:
		sort.SliceStable(customers, func(i, j int) bool {
			return strings.ToLower(customers[i].CustomerName) < strings.ToLower(customers[j].CustomerName)
		})
	case CustomerSortSpent:
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].TotalSpend.GreaterThan(customers[j].TotalSpend)
		})
	default:
		sort.SliceStable(customers, func(i, j int) bool {
			return customers[i].CreatedAt.After(customers[j].CreatedAt)
		})
	}
}

// List returns the customer directory filtered and sorted in memory.
func (s *CustomerService) List(search, sortBy string) ([]models.Customer, error) {
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	filtered := FilterCustomers(customers, search)
	SortCustomers(filtered, sortBy)
	return filtered, nil
}

// Get returns one customer by id.
func (s *CustomerService) Get(id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// Profile resolves a customer's order history. Orders are matched by
// customer id first; when that finds nothing the exact name is tried,
// which keeps history visible for rows written before id linking.
// Lifetime figures are recomputed from the orders found and only fall
// back to the stored aggregates when no orders match.
func (s *CustomerService) Profile(id uuid.UUID) (*CustomerProfile, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListByCustomerID(id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		orders, err = s.orderRepo.ListByCustomerName(customer.CustomerName)
		if err != nil {
			return nil, err
		}
	}

	profile := &CustomerProfile{
		Customer:    customer,
		Orders:      orders,
		TotalOrders: customer.TotalOrders,
		TotalSpend:  customer.TotalSpend,
	}
	if len(orders) > 0 {
		spend := decimal.Zero
		for _, o := range orders {
			spend = spend.Add(o.TotalPrice)
		}
		profile.TotalOrders = len(orders)
		profile.TotalSpend = spend
	}
	return profile, nil
}

// Create adds a customer to the directory.
func (s *CustomerService) Create(req *SaveCustomerRequest) (*models.Customer, error) {
	phone, err := normalizeCustomerPhone(req.Phone)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        phone,
		TotalOrders:  req.TotalOrders,
		TotalSpend:   req.TotalSpend,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ErrDuplicatePhone
		}
		return nil, err
	}
	return customer, nil
}

// Update rewrites a customer's fields.
func (s *CustomerService) Update(id uuid.UUID, req *SaveCustomerRequest) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	phone, err := normalizeCustomerPhone(req.Phone)
	if err != nil {
		return nil, err
	}

	customer.CustomerName = strings.TrimSpace(req.CustomerName)
	customer.Phone = phone
	customer.TotalOrders = req.TotalOrders
	customer.TotalSpend = req.TotalSpend
	if err := s.customerRepo.Update(customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ErrDuplicatePhone
		}
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer. Their orders survive with the name snapshot
// but lose the id link.
func (s *CustomerService) Delete(id uuid.UUID) error {
	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrCustomerNotFound
		}
		return err
	}
	return nil
}

func normalizeCustomerPhone(raw string) (string, error) {
	digits, ok := utils.NormalizePhone(raw)
	if !ok {
		return "", utils.ErrInvalidPhone
	}
	return utils.FormatPhone(digits), nil
}
