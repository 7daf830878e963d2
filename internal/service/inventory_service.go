package service

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/repository"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

// MovementStore is the slice of the inventory log repository the service
// depends on.
type MovementStore interface {
	Begin() (repository.MovementTx, error)
	ListByProduct(productID int) ([]models.InventoryLog, error)
	ListRecent(n int) ([]models.InventoryLog, error)
}

// ProductGetter resolves products by id.
type ProductGetter interface {
	GetByID(id int) (*models.Product, error)
}

// InventoryService records stock movements and keeps product stock levels
// consistent with the movement log.
type InventoryService struct {
	logRepo     MovementStore
	productRepo ProductGetter
}

// NewInventoryService constructs an InventoryService.
func NewInventoryService(logRepo MovementStore, productRepo ProductGetter) *InventoryService {
	return &InventoryService{logRepo: logRepo, productRepo: productRepo}
}

// MovementRequest is the payload for recording a stock movement.
type MovementRequest struct {
	ProductID int                 `json:"productId" binding:"required"`
	Type      models.MovementType `json:"type" binding:"required"`
	Qty       int                 `json:"qty" binding:"required"`
	Price     decimal.Decimal     `json:"price"`
	Reason    string              `json:"reason" binding:"required"`
	Note      string              `json:"note"`
}

// MovementResult is the recorded log entry plus the stock level after it.
type MovementResult struct {
	Log      *models.InventoryLog `json:"log"`
	NewStock int                  `json:"newStock"`
}

// ApplyMovement records one stock movement. The log entry and the stock
// adjustment commit together or not at all; an OUT movement larger than
// the current stock is rejected by the non-negative stock constraint.
func (s *InventoryService) ApplyMovement(req *MovementRequest) (*MovementResult, error) {
	if req.Qty <= 0 {
		return nil, utils.ErrInvalidQuantity
	}
	if req.Type != models.MovementIn && req.Type != models.MovementOut {
		return nil, utils.ErrInvalidReason
	}
	if !models.ValidReason(req.Reason) {
		return nil, utils.ErrInvalidReason
	}

	if _, err := s.productRepo.GetByID(req.ProductID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}

	tx, err := s.logRepo.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	entry := &models.InventoryLog{
		ProductID: req.ProductID,
		Type:      req.Type,
		Qty:       req.Qty,
		Price:     req.Price,
		Reason:    req.Reason,
		Note:      req.Note,
	}
	if err := tx.Insert(entry); err != nil {
		log.Error().Err(err).Int("product_id", req.ProductID).Msg("Failed to insert movement log")
		return nil, utils.ErrMovementLogFailed
	}

	delta := req.Qty
	if req.Type == models.MovementOut {
		delta = -req.Qty
	}
	newStock, err := tx.AdjustStock(req.ProductID, delta)
	if err != nil {
		if isCheckViolation(err) {
			return nil, utils.ErrInsufficientStock
		}
		log.Error().Err(err).Int("product_id", req.ProductID).Int("delta", delta).Msg("Failed to adjust stock")
		return nil, utils.ErrStockUpdateFailed
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info().
		Int("product_id", req.ProductID).
		Str("type", string(req.Type)).
		Int("qty", req.Qty).
		Int("new_stock", newStock).
		Msg("Stock movement recorded")
	return &MovementResult{Log: entry, NewStock: newStock}, nil
}

// History returns the movement log for a product, newest first.
func (s *InventoryService) History(productID int) ([]models.InventoryLog, error) {
	return s.logRepo.ListByProduct(productID)
}

// Recent returns the latest movements across the whole catalog.
func (s *InventoryService) Recent(n int) ([]models.InventoryLog, error) {
	if n <= 0 {
		n = 20
	}
	return s.logRepo.ListRecent(n)
}

func isCheckViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23514"
	}
	return false
}
