package service

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/repository"
	"github.com/hygienicomfort/shop_api/internal/sse"
	"github.com/hygienicomfort/shop_api/internal/utils"
	"github.com/hygienicomfort/shop_api/pkg/whatsapp"
)

// StatusFilterAll matches every order status in listings.
const StatusFilterAll = "All"

// OrderService handles order intake, approval and fulfilment tracking.
type OrderService struct {
	orderRepo    *repository.OrderRepository
	customerRepo *repository.CustomerRepository
	notifier     sse.OrderNotifier
	shopName     string
}

// NewOrderService constructs an OrderService.
func NewOrderService(orderRepo *repository.OrderRepository, customerRepo *repository.CustomerRepository, notifier sse.OrderNotifier, shopName string) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
		shopName:     shopName,
	}
}

// SaveOrderRequest is the create/update payload for an order.
type SaveOrderRequest struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	Phone         string             `json:"phone" binding:"required"`
	Items         []models.OrderItem `json:"items"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"paymentStatus"`
	PaymentMethod string             `json:"paymentMethod"`
}

// ApprovalResult carries the order after approval plus the confirmation
// link the frontend opens in WhatsApp.
type ApprovalResult struct {
	Order        *models.Order `json:"order"`
	WhatsAppLink string        `json:"whatsappLink,omitempty"`
}

// ComputeTotals recomputes each line total from its quantity and unit
// price and returns the order grand total. Stored totals are never
// trusted over this recomputation.
func ComputeTotals(items []models.OrderItem) ([]models.OrderItem, decimal.Decimal) {
	grand := decimal.Zero
	out := make([]models.OrderItem, len(items))
	for i, item := range items {
		item.Total = item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		out[i] = item
		grand = grand.Add(item.Total)
	}
	return out, grand
}

// AddItem appends a product line to items. Each product may appear once
// per order; raising its quantity is the way to order more.
func AddItem(items []models.OrderItem, product *models.Product) ([]models.OrderItem, error) {
	pid := productItemID(product.ID)
	for _, item := range items {
		if item.ProductID == pid {
			return nil, errors.New("product already added")
		}
	}
	return append(items, models.OrderItem{
		ProductID:   pid,
		ProductName: product.Name,
		Qty:         1,
		Price:       product.Price,
		Total:       product.Price,
	}), nil
}

// SetQuantity replaces the quantity of the line at index. Quantities
// below one are rejected; removing a line is a separate action.
func SetQuantity(items []models.OrderItem, index, qty int) ([]models.OrderItem, error) {
	if index < 0 || index >= len(items) {
		return nil, errors.New("item index out of range")
	}
	if qty < 1 {
		return nil, utils.ErrInvalidQuantity
	}
	items[index].Qty = qty
	items[index].Total = items[index].Price.Mul(decimal.NewFromInt(int64(qty)))
	return items, nil
}

// FilterOrders keeps orders whose customer name or phone contains the
// search term, and whose status matches the filter.
func FilterOrders(orders []models.Order, search, statusFilter string) []models.Order {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if term != "" {
			nameMatch := strings.Contains(strings.ToLower(o.CustomerName), term)
			phoneMatch := strings.Contains(o.PhoneNumber, strings.TrimSpace(search))
			refMatch := strings.Contains(strings.ToLower(o.RefID()), term)
			if !nameMatch && !phoneMatch && !refMatch {
				continue
			}
		}
		if statusFilter != "" && statusFilter != StatusFilterAll && string(o.Status) != statusFilter {
			continue
		}
		out = append(out, o)
	}
	return out
}

// List returns orders newest first, optionally filtered in memory.
func (s *OrderService) List(search, statusFilter string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return FilterOrders(orders, search, statusFilter), nil
}

// Get returns one order by id.
func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// Create validates and stores a new order. The customer is linked by
// phone number: a match reuses the existing record and bumps its
// lifetime figures, otherwise a new customer is created.
func (s *OrderService) Create(req *SaveOrderRequest) (*models.Order, error) {
	digits, ok := utils.NormalizePhone(req.Phone)
	if !ok {
		return nil, utils.ErrInvalidPhone
	}
	phone := utils.FormatPhone(digits)

	for _, item := range req.Items {
		if item.Qty < 1 {
			return nil, utils.ErrInvalidQuantity
		}
	}
	items, total := ComputeTotals(req.Items)

	status := models.OrderStatus(req.Status)
	if status == "" {
		status = models.StatusNew
	}
	if !models.ValidStatus(status) {
		return nil, utils.ErrInvalidStatus
	}

	order := &models.Order{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		PhoneNumber:   phone,
		Items:         models.OrderItems{Structured: items},
		TotalPrice:    total,
		Status:        status,
		PaymentStatus: paymentStatusOrDefault(req.PaymentStatus),
		PaymentMethod: req.PaymentMethod,
	}

	customer, err := s.linkCustomer(order)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if customer != nil {
		if err := s.customerRepo.BumpAggregates(customer.ID, order.TotalPrice); err != nil {
			log.Warn().Err(err).Str("customer_id", customer.ID.String()).Msg("Failed to bump customer aggregates")
		}
	}

	log.Info().Str("order_id", order.ID.String()).Str("customer", order.CustomerName).Msg("Order created")
	s.notifier.NotifyOrderCreated(order)
	return order, nil
}

// Update rewrites an editable order. Cancelled orders are immutable.
func (s *OrderService) Update(id uuid.UUID, req *SaveOrderRequest) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status == models.StatusCancelled {
		return nil, utils.ErrOrderCancelled
	}

	digits, ok := utils.NormalizePhone(req.Phone)
	if !ok {
		return nil, utils.ErrInvalidPhone
	}
	for _, item := range req.Items {
		if item.Qty < 1 {
			return nil, utils.ErrInvalidQuantity
		}
	}
	items, total := ComputeTotals(req.Items)

	order.CustomerName = strings.TrimSpace(req.CustomerName)
	order.PhoneNumber = utils.FormatPhone(digits)
	order.Items = models.OrderItems{Structured: items}
	order.TotalPrice = total
	if req.PaymentStatus != "" {
		order.PaymentStatus = models.PaymentStatus(req.PaymentStatus)
	}
	if req.PaymentMethod != "" {
		order.PaymentMethod = req.PaymentMethod
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Approve marks an order as confirmed on call. The status stays New so
// fulfilment tracking starts from the beginning; the returned link opens
// WhatsApp with the confirmation message prefilled.
func (s *OrderService) Approve(id uuid.UUID) (*ApprovalResult, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status == models.StatusCancelled {
		return nil, utils.ErrOrderCancelled
	}
	if order.IsApproved {
		return nil, utils.ErrAlreadyApproved
	}

	order.IsApproved = true
	order.Status = models.StatusNew
	if err := s.orderRepo.UpdateApproval(order.ID, true, models.StatusNew); err != nil {
		return nil, err
	}

	log.Info().Str("order_id", order.ID.String()).Msg("Order approved")
	s.notifier.NotifyOrderStatusChanged(order)
	return &ApprovalResult{
		Order:        order,
		WhatsAppLink: whatsapp.ConfirmationLink(order, s.shopName),
	}, nil
}

// Cancel moves an order into the terminal Cancelled state and clears its
// approval. There is no way back from Cancelled.
func (s *OrderService) Cancel(id uuid.UUID) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status == models.StatusCancelled {
		return nil, utils.ErrOrderCancelled
	}

	order.IsApproved = false
	order.Status = models.StatusCancelled
	if err := s.orderRepo.UpdateApproval(order.ID, false, models.StatusCancelled); err != nil {
		return nil, err
	}

	log.Info().Str("order_id", order.ID.String()).Msg("Order cancelled")
	s.notifier.NotifyOrderStatusChanged(order)
	return order, nil
}

// UpdateStatus advances an order along the fulfilment track. Transitions
// only move forward; cancelled orders never move, and an order must be
// approved before it ships.
func (s *OrderService) UpdateStatus(id uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(next) {
		return nil, utils.ErrInvalidStatus
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if order.Status == models.StatusCancelled {
		return nil, utils.ErrOrderCancelled
	}
	if next == models.StatusCancelled {
		return s.Cancel(id)
	}
	if !order.IsApproved && next != models.StatusNew {
		return nil, utils.ErrOrderNotApproved
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, utils.ErrInvalidTransition
	}

	order.Status = next
	if err := s.orderRepo.UpdateStatus(order.ID, next); err != nil {
		return nil, err
	}

	log.Info().Str("order_id", order.ID.String()).Str("status", string(next)).Msg("Order status updated")
	s.notifier.NotifyOrderStatusChanged(order)
	return order, nil
}

// StatusLink returns the WhatsApp update link for an order's current
// status, or "" when the status has no customer-facing message.
func (s *OrderService) StatusLink(order *models.Order) string {
	return whatsapp.StatusLink(order, s.shopName)
}

// Delete removes an order permanently.
func (s *OrderService) Delete(id uuid.UUID) error {
	if err := s.orderRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrOrderNotFound
		}
		return err
	}
	return nil
}

// SuggestCustomers returns autocomplete matches for the order form.
// Terms shorter than two characters return nothing.
func (s *OrderService) SuggestCustomers(term string) ([]models.Customer, error) {
	if len(strings.TrimSpace(term)) < 2 {
		return []models.Customer{}, nil
	}
	return s.customerRepo.SearchByName(strings.TrimSpace(term), 5)
}

// linkCustomer attaches an existing customer by phone or creates a new
// record. A lookup failure other than no-rows aborts the order.
func (s *OrderService) linkCustomer(order *models.Order) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(order.PhoneNumber)
	if err == nil {
		order.CustomerID = &customer.ID
		return customer, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	customer = &models.Customer{
		CustomerName: order.CustomerName,
		Phone:        order.PhoneNumber,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.ErrDuplicatePhone
		}
		return nil, err
	}
	order.CustomerID = &customer.ID
	log.Info().Str("customer_id", customer.ID.String()).Msg("Customer created from order")
	return customer, nil
}

func paymentStatusOrDefault(raw string) models.PaymentStatus {
	if raw == string(models.PaymentPaid) {
		return models.PaymentPaid
	}
	return models.PaymentPending
}

func productItemID(id int) string {
	return strconv.Itoa(id)
}
