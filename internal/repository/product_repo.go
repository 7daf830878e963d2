package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hygienicomfort/shop_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAll returns every product, newest first. Filtering and sorting happen
// in memory on top of this snapshot.
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	const q = `SELECT * FROM products ORDER BY created_at DESC`
	var products []models.Product
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Create creates a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	const q = `
        INSERT INTO products (name, category, price, purchase_price, stock, min_stock, barcode, images, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		product.Name,
		product.Category,
		product.Price,
		product.PurchasePrice,
		product.Stock,
		product.MinStock,
		product.Barcode,
		product.Images,
		product.Description,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `
        UPDATE products
        SET name = $1, category = $2, price = $3, purchase_price = $4,
            stock = $5, min_stock = $6, barcode = $7, images = $8,
            description = $9, updated_at = NOW()
        WHERE id = $10
        RETURNING updated_at`

	return r.db.QueryRowx(q,
		product.Name,
		product.Category,
		product.Price,
		product.PurchasePrice,
		product.Stock,
		product.MinStock,
		product.Barcode,
		product.Images,
		product.Description,
		product.ID,
	).Scan(&product.UpdatedAt)
}

// Delete deletes a product by ID.
func (r *ProductRepository) Delete(id int) error {
	const q = `DELETE FROM products WHERE id = $1`
	res, err := r.db.Exec(q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetDistinctCategories returns all distinct non-empty categories.
func (r *ProductRepository) GetDistinctCategories() ([]string, error) {
	const q = `SELECT DISTINCT category FROM products WHERE category != '' ORDER BY category`
	var categories []string
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}
