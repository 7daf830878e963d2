package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/hygienicomfort/shop_api/internal/cache"
	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/repository"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

// ProductsPerPage is the catalog page size.
const ProductsPerPage = 8

// Stock filter values for the catalog listing.
const (
	StockFilterAll     = "All"
	StockFilterLow     = "Low"
	StockFilterHealthy = "Healthy"
)

// ProductService handles catalog CRUD, filtering and pagination.
type ProductService struct {
	productRepo  *repository.ProductRepository
	catalogCache *cache.CatalogCache
}

// NewProductService constructs a ProductService.
func NewProductService(productRepo *repository.ProductRepository, catalogCache *cache.CatalogCache) *ProductService {
	return &ProductService{productRepo: productRepo, catalogCache: catalogCache}
}

// ProductQuery describes the catalog listing parameters.
type ProductQuery struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	StockFilter string `form:"stock"`
	SortBy      string `form:"sortBy"`    // "name", "price" or "stock"
	SortOrder   string `form:"sortOrder"` // "asc" or "desc"
	Page        int    `form:"page"`
}

// ProductPage is one page of filtered catalog results.
type ProductPage struct {
	Products   []models.Product `json:"products"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	TotalItems int              `json:"totalItems"`
}

// SaveProductRequest is the create/update payload for a product.
type SaveProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Stock         int             `json:"stock"`
	MinStock      *int            `json:"minStock"`
	Barcode       *string         `json:"barcode"`
	Images        []string        `json:"images"`
	Description   string          `json:"description"`
}

// List returns one page of products after filtering and sorting.
func (s *ProductService) List(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterProducts(products, q.Search, q.Category, q.StockFilter)
	SortProducts(filtered, q.SortBy, q.SortOrder)
	return PaginateProducts(filtered, q.Page), nil
}

// FilterProducts applies the search term, category and stock-health
// filters. The search term matches names case-insensitively and barcodes
// by substring.
func FilterProducts(products []models.Product, search, category, stockFilter string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if term != "" {
			nameMatch := strings.Contains(strings.ToLower(p.Name), term)
			barcodeMatch := p.Barcode != nil && strings.Contains(*p.Barcode, strings.TrimSpace(search))
			if !nameMatch && !barcodeMatch {
				continue
			}
		}
		if category != "" && category != StockFilterAll && p.Category != category {
			continue
		}
		switch stockFilter {
		case StockFilterLow:
			if !p.IsLowStock() {
				continue
			}
		case StockFilterHealthy:
			if p.IsLowStock() {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// SortProducts orders products in place by the given field. An empty
// sortBy keeps the incoming order. Unknown fields are ignored.
func SortProducts(products []models.Product, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		// Descending swaps the operands so equal keys compare false and
		// stay in their incoming order.
		if sortOrder == "desc" {
			i, j = j, i
		}
		switch sortBy {
		case "name":
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		case "price":
			return products[i].Price.LessThan(products[j].Price)
		case "stock":
			return products[i].Stock < products[j].Stock
		default:
			return false
		}
	})
}

// PaginateProducts slices the filtered results into the requested page.
// Page numbers start at 1; out-of-range pages return an empty slice with
// the correct page count.
func PaginateProducts(products []models.Product, page int) *ProductPage {
	if page < 1 {
		page = 1
	}
	total := len(products)
	totalPages := (total + ProductsPerPage - 1) / ProductsPerPage
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * ProductsPerPage
	if start > total {
		start = total
	}
	end := start + ProductsPerPage
	if end > total {
		end = total
	}

	return &ProductPage{
		Products:   products[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// Get returns a single product by id.
func (s *ProductService) Get(id int) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create adds a product to the catalog.
func (s *ProductService) Create(ctx context.Context, req *SaveProductRequest) (*models.Product, error) {
	product := productFromRequest(req)
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return product, nil
}

// Update rewrites a product's fields.
func (s *ProductService) Update(ctx context.Context, id int, req *SaveProductRequest) (*models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updated := productFromRequest(req)
	updated.ID = product.ID
	if err := s.productRepo.Update(updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return updated, nil
}

// Clone duplicates a product under a "(Copy)" name. The copy keeps the
// source's pricing and stock settings but never its barcode, which must
// stay unique per physical product.
func (s *ProductService) Clone(ctx context.Context, id int) (*models.Product, error) {
	src, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	copyProduct := &models.Product{
		Name:          src.Name + " (Copy)",
		Category:      src.Category,
		Price:         src.Price,
		PurchasePrice: src.PurchasePrice,
		Stock:         src.Stock,
		MinStock:      src.MinStock,
		Images:        src.Images,
		Description:   src.Description,
	}
	if err := s.productRepo.Create(copyProduct); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return copyProduct, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

// Categories returns the distinct category names in use.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	if s.catalogCache != nil {
		if snap, err := s.catalogCache.Get(ctx); err == nil && snap != nil && len(snap.Categories) > 0 {
			return snap.Categories, nil
		}
	}
	return s.productRepo.GetDistinctCategories()
}

// LowStock returns every product at or below its minimum stock level.
func (s *ProductService) LowStock(ctx context.Context) ([]models.Product, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]models.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// loadProducts serves the full catalog from Redis when fresh, falling
// back to the database and repopulating the snapshot.
func (s *ProductService) loadProducts(ctx context.Context) ([]models.Product, error) {
	if s.catalogCache != nil {
		if snap, err := s.catalogCache.Get(ctx); err == nil && snap != nil {
			return snap.Products, nil
		}
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.catalogCache != nil {
		categories, err := s.productRepo.GetDistinctCategories()
		if err != nil {
			categories = nil
		}
		snap := &cache.CatalogSnapshot{Products: products, Categories: categories}
		if err := s.catalogCache.Set(ctx, snap); err != nil {
			log.Warn().Err(err).Msg("Failed to cache catalog snapshot")
		}
	}
	return products, nil
}

func (s *ProductService) invalidateCatalog(ctx context.Context) {
	if s.catalogCache == nil {
		return
	}
	if err := s.catalogCache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate catalog cache")
	}
}

func productFromRequest(req *SaveProductRequest) *models.Product {
	minStock := 5
	if req.MinStock != nil {
		minStock = *req.MinStock
	}
	images := models.ImageList(req.Images)
	if images == nil {
		images = models.ImageList{}
	}
	return &models.Product{
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		Price:         req.Price,
		PurchasePrice: req.PurchasePrice,
		Stock:         req.Stock,
		MinStock:      minStock,
		Barcode:       req.Barcode,
		Images:        images,
		Description:   req.Description,
	}
}
