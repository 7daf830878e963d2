package repository

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/hygienicomfort/shop_api/internal/models"
)

// CustomerRepository handles data access for customers.
type CustomerRepository struct {
	db *sqlx.DB
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (duplicate phone, error code 23505).
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

// GetAll returns every customer, newest first.
func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	const q = `SELECT * FROM customers ORDER BY created_at DESC`
	var customers []models.Customer
	if err := r.db.Select(&customers, q); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetByID returns a single customer by id.
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	const q = `SELECT * FROM customers WHERE id = $1 LIMIT 1`
	var c models.Customer
	if err := r.db.Get(&c, q, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByPhone returns a customer by their unique phone number, or
// sql.ErrNoRows when none exists.
func (r *CustomerRepository) GetByPhone(phone string) (*models.Customer, error) {
	const q = `SELECT * FROM customers WHERE phone = $1 LIMIT 1`
	var c models.Customer
	if err := r.db.Get(&c, q, phone); err != nil {
		return nil, err
	}
	return &c, nil
}

// SearchByName returns up to limit customers whose name contains term,
// case-insensitively. Used by the order form autocomplete.
func (r *CustomerRepository) SearchByName(term string, limit int) ([]models.Customer, error) {
	const q = `SELECT * FROM customers WHERE customer_name ILIKE '%' || $1 || '%' ORDER BY customer_name LIMIT $2`
	var customers []models.Customer
	if err := r.db.Select(&customers, q, term, limit); err != nil {
		return nil, err
	}
	return customers, nil
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	const q = `
        INSERT INTO customers (customer_name, phone, total_orders, total_spend)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.db.QueryRowx(q,
		customer.CustomerName,
		customer.Phone,
		customer.TotalOrders,
		customer.TotalSpend,
	).Scan(&customer.ID, &customer.CreatedAt)
}

// Update rewrites a customer's editable fields.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	const q = `
        UPDATE customers
        SET customer_name = $1, phone = $2, total_orders = $3, total_spend = $4
        WHERE id = $5`

	res, err := r.db.Exec(q,
		customer.CustomerName,
		customer.Phone,
		customer.TotalOrders,
		customer.TotalSpend,
		customer.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// BumpAggregates adds one order and its total to a customer's stored
// lifetime figures.
func (r *CustomerRepository) BumpAggregates(id uuid.UUID, orderTotal decimal.Decimal) error {
	const q = `
        UPDATE customers
        SET total_orders = total_orders + 1,
            total_spend = total_spend + $2
        WHERE id = $1`
	_, err := r.db.Exec(q, id, orderTotal)
	return err
}

// Delete removes a customer; order rows keep their customer_name but lose
// the id link (ON DELETE SET NULL).
func (r *CustomerRepository) Delete(id uuid.UUID) error {
	const q = `DELETE FROM customers WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
