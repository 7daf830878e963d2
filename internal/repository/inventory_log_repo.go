package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/hygienicomfort/shop_api/internal/models"
)

// InventoryLogRepository handles data access for stock movement logs.
type InventoryLogRepository struct {
	db *sqlx.DB
}

// NewInventoryLogRepository creates a new InventoryLogRepository.
func NewInventoryLogRepository(db *sqlx.DB) *InventoryLogRepository {
	return &InventoryLogRepository{db: db}
}

// MovementTx is one movement being recorded: the log entry and the stock
// adjustment commit together or not at all.
type MovementTx interface {
	Insert(entry *models.InventoryLog) error
	AdjustStock(productID, delta int) (int, error)
	Commit() error
	Rollback() error
}

// Begin opens a transaction for a movement that must record the log and
// adjust stock together.
func (r *InventoryLogRepository) Begin() (MovementTx, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, err
	}
	return &movementTx{tx: tx}, nil
}

type movementTx struct {
	tx *sqlx.Tx
}

// Insert records a movement log inside the transaction.
func (m *movementTx) Insert(entry *models.InventoryLog) error {
	const q = `
        INSERT INTO inventory_logs (product_id, type, qty, price, reason, note)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return m.tx.QueryRowx(q,
		entry.ProductID,
		entry.Type,
		entry.Qty,
		entry.Price,
		entry.Reason,
		entry.Note,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// AdjustStock applies a signed stock delta to a product and returns the
// resulting stock level. The stock CHECK constraint rejects movements
// that would drive stock below zero.
func (m *movementTx) AdjustStock(productID, delta int) (int, error) {
	const q = `SELECT update_product_stock($1, $2)`
	var newStock int
	if err := m.tx.Get(&newStock, q, productID, delta); err != nil {
		return 0, err
	}
	return newStock, nil
}

func (m *movementTx) Commit() error   { return m.tx.Commit() }
func (m *movementTx) Rollback() error { return m.tx.Rollback() }

// ListByProduct returns the movement history for one product, newest first.
func (r *InventoryLogRepository) ListByProduct(productID int) ([]models.InventoryLog, error) {
	const q = `SELECT * FROM inventory_logs WHERE product_id = $1 ORDER BY created_at DESC`
	var logs []models.InventoryLog
	if err := r.db.Select(&logs, q, productID); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListRecent returns the latest n movements across all products.
func (r *InventoryLogRepository) ListRecent(n int) ([]models.InventoryLog, error) {
	const q = `SELECT * FROM inventory_logs ORDER BY created_at DESC LIMIT $1`
	var logs []models.InventoryLog
	if err := r.db.Select(&logs, q, n); err != nil {
		return nil, err
	}
	return logs, nil
}
