package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hygienicomfort/shop_api/internal/models"
)

// OrderRepository handles data access for orders.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetAll returns every order, newest first.
func (r *OrderRepository) GetAll() ([]models.Order, error) {
	const q = `SELECT * FROM orders ORDER BY created_at DESC`
	var orders []models.Order
	if err := r.db.Select(&orders, q); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID returns a single order by id.
func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	const q = `SELECT * FROM orders WHERE id = $1 LIMIT 1`
	var o models.Order
	if err := r.db.Get(&o, q, id); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new order and fills in its generated id and timestamp.
func (r *OrderRepository) Create(order *models.Order) error {
	const q = `
        INSERT INTO orders (customer_id, customer_name, phone_number, items, total_price, status, is_approved, payment_status, payment_method)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at`

	return r.db.QueryRowx(q,
		order.CustomerID,
		order.CustomerName,
		order.PhoneNumber,
		order.Items,
		order.TotalPrice,
		order.Status,
		order.IsApproved,
		order.PaymentStatus,
		order.PaymentMethod,
	).Scan(&order.ID, &order.CreatedAt)
}

// Update rewrites the editable fields of an order.
func (r *OrderRepository) Update(order *models.Order) error {
	const q = `
        UPDATE orders
        SET customer_id = $1, customer_name = $2, phone_number = $3,
            items = $4, total_price = $5, status = $6,
            payment_status = $7, payment_method = $8
        WHERE id = $9`

	res, err := r.db.Exec(q,
		order.CustomerID,
		order.CustomerName,
		order.PhoneNumber,
		order.Items,
		order.TotalPrice,
		order.Status,
		order.PaymentStatus,
		order.PaymentMethod,
		order.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus sets the tracked status of an order.
func (r *OrderRepository) UpdateStatus(id uuid.UUID, status models.OrderStatus) error {
	const q = `UPDATE orders SET status = $2 WHERE id = $1`
	res, err := r.db.Exec(q, id, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateApproval sets the approval flag and the resulting status in one write.
func (r *OrderRepository) UpdateApproval(id uuid.UUID, approved bool, status models.OrderStatus) error {
	const q = `UPDATE orders SET is_approved = $2, status = $3 WHERE id = $1`
	res, err := r.db.Exec(q, id, approved, status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an order by id.
func (r *OrderRepository) Delete(id uuid.UUID) error {
	const q = `DELETE FROM orders WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByCustomerID returns a customer's orders, newest first.
func (r *OrderRepository) ListByCustomerID(customerID uuid.UUID) ([]models.Order, error) {
	const q = `SELECT * FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`
	var orders []models.Order
	if err := r.db.Select(&orders, q, customerID); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByCustomerName returns orders matching the exact stored display name,
// newest first. This is the fallback lookup for historical rows created
// before orders carried a customer_id link.
func (r *OrderRepository) ListByCustomerName(name string) ([]models.Order, error) {
	const q = `SELECT * FROM orders WHERE customer_name = $1 ORDER BY created_at DESC`
	var orders []models.Order
	if err := r.db.Select(&orders, q, name); err != nil {
		return nil, err
	}
	return orders, nil
}
