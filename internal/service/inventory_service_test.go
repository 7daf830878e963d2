package service

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/repository"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

type fakeMovementTx struct {
	entry      *models.InventoryLog
	insertErr  error
	adjustErr  error
	stock      int
	deltas     []int
	committed  bool
	rolledBack bool
}

func (f *fakeMovementTx) Insert(entry *models.InventoryLog) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	entry.ID = 1
	entry.CreatedAt = time.Now()
	f.entry = entry
	return nil
}

func (f *fakeMovementTx) AdjustStock(productID, delta int) (int, error) {
	if f.entry == nil {
		return 0, errors.New("stock adjusted before log insert")
	}
	if f.adjustErr != nil {
		return 0, f.adjustErr
	}
	f.deltas = append(f.deltas, delta)
	f.stock += delta
	return f.stock, nil
}

func (f *fakeMovementTx) Commit() error { f.committed = true; return nil }

func (f *fakeMovementTx) Rollback() error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeMovementStore struct {
	tx   *fakeMovementTx
	logs []models.InventoryLog
}

func (f *fakeMovementStore) Begin() (repository.MovementTx, error) { return f.tx, nil }

func (f *fakeMovementStore) ListByProduct(productID int) ([]models.InventoryLog, error) {
	return f.logs, nil
}

func (f *fakeMovementStore) ListRecent(n int) ([]models.InventoryLog, error) {
	return f.logs, nil
}

type fakeProductGetter struct {
	products map[int]*models.Product
}

func (f *fakeProductGetter) GetByID(id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func movementFixture(tx *fakeMovementTx) *InventoryService {
	store := &fakeMovementStore{tx: tx}
	products := &fakeProductGetter{products: map[int]*models.Product{
		7: {ID: 7, Name: "Bath Soap", Stock: tx.stock},
	}}
	return NewInventoryService(store, products)
}

func TestApplyMovementIn(t *testing.T) {
	tx := &fakeMovementTx{stock: 5}
	svc := movementFixture(tx)

	result, err := svc.ApplyMovement(&MovementRequest{
		ProductID: 7,
		Type:      models.MovementIn,
		Qty:       10,
		Reason:    models.ReasonNewShipment,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, result.NewStock)

	require.NotNil(t, tx.entry)
	assert.Equal(t, models.MovementIn, tx.entry.Type)
	assert.Equal(t, 10, tx.entry.Qty)
	assert.Equal(t, []int{10}, tx.deltas)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestApplyMovementOut(t *testing.T) {
	tx := &fakeMovementTx{stock: 5}
	svc := movementFixture(tx)

	result, err := svc.ApplyMovement(&MovementRequest{
		ProductID: 7,
		Type:      models.MovementOut,
		Qty:       3,
		Reason:    models.ReasonDamage,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.NewStock)
	assert.Equal(t, []int{-3}, tx.deltas)
	assert.True(t, tx.committed)
}

func TestApplyMovementInsufficientStock(t *testing.T) {
	tx := &fakeMovementTx{stock: 5, adjustErr: &pq.Error{Code: "23514"}}
	svc := movementFixture(tx)

	_, err := svc.ApplyMovement(&MovementRequest{
		ProductID: 7,
		Type:      models.MovementOut,
		Qty:       8,
		Reason:    models.ReasonCorrection,
	})
	assert.ErrorIs(t, err, utils.ErrInsufficientStock)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestApplyMovementLogFailureAborts(t *testing.T) {
	tx := &fakeMovementTx{stock: 5, insertErr: errors.New("insert failed")}
	svc := movementFixture(tx)

	_, err := svc.ApplyMovement(&MovementRequest{
		ProductID: 7,
		Type:      models.MovementIn,
		Qty:       4,
		Reason:    models.ReasonReturn,
	})
	assert.ErrorIs(t, err, utils.ErrMovementLogFailed)
	assert.Empty(t, tx.deltas)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestApplyMovementValidation(t *testing.T) {
	tx := &fakeMovementTx{stock: 5}
	svc := movementFixture(tx)

	_, err := svc.ApplyMovement(&MovementRequest{ProductID: 7, Type: models.MovementIn, Qty: 0, Reason: models.ReasonReturn})
	assert.ErrorIs(t, err, utils.ErrInvalidQuantity)

	_, err = svc.ApplyMovement(&MovementRequest{ProductID: 7, Type: "SIDEWAYS", Qty: 1, Reason: models.ReasonReturn})
	assert.ErrorIs(t, err, utils.ErrInvalidReason)

	_, err = svc.ApplyMovement(&MovementRequest{ProductID: 7, Type: models.MovementIn, Qty: 1, Reason: "Whim"})
	assert.ErrorIs(t, err, utils.ErrInvalidReason)

	_, err = svc.ApplyMovement(&MovementRequest{ProductID: 99, Type: models.MovementIn, Qty: 1, Reason: models.ReasonReturn})
	assert.ErrorIs(t, err, utils.ErrProductNotFound)

	assert.Nil(t, tx.entry)
	assert.False(t, tx.committed)
}
