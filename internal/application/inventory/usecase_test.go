package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/application/inventory"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/infrastructure/ledger"
)

func newUC(t *testing.T) (*inventory.UseCase, *ledger.Store) {
	t.Helper()
	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)
	return inventory.NewUseCase(store, store.Products(), store.Movements()), store
}

func seedProduct(t *testing.T, store *ledger.Store, id string, stock, minStock int64) {
	t.Helper()
	now := time.Now()
	require.NoError(t, store.Products().Create(&entity.Product{
		ID:            id,
		Name:          "Product " + id,
		SKU:           "SKU-" + id,
		Price:         decimal.NewFromInt(100),
		GSTRate:       decimal.NewFromInt(18),
		Stock:         stock,
		MinStockLevel: minStock,
		Unit:          "piece",
		CreatedAt:     now,
		UpdatedAt:     now,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_PurchaseAddsStock(t *testing.T) {
	uc, store := newUC(t)
	seedProduct(t, store, "p1", 10, 5)

	out, err := uc.RegisterMovement(context.Background(), "admin", dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypePurchase,
		Quantity:  15,
		Reference: "PO-42",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 25, out.BalanceAfter)
	assert.Equal(t, "PO-42", out.Reference)

	p, _ := store.Products().GetByID("p1")
	assert.EqualValues(t, 25, p.Stock)
}

func TestRegisterMovement_SaleSubtractsWithoutAvailabilityCheck(t *testing.T) {
	uc, store := newUC(t)
	seedProduct(t, store, "p1", 3, 5)

	// A manual sale movement may drive stock negative; only invoice commits
	// enforce availability.
	out, err := uc.RegisterMovement(context.Background(), "admin", dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeSale,
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.EqualValues(t, -2, out.BalanceAfter)

	p, _ := store.Products().GetByID("p1")
	assert.EqualValues(t, -2, p.Stock)
}

func TestRegisterMovement_AdjustmentAcceptsSignedQuantity(t *testing.T) {
	uc, store := newUC(t)
	seedProduct(t, store, "p1", 10, 5)

	out, err := uc.RegisterMovement(context.Background(), "admin", dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeAdjustment,
		Quantity:  -4,
		Notes:     "stocktake correction",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 6, out.BalanceAfter)

	p, _ := store.Products().GetByID("p1")
	assert.EqualValues(t, 6, p.Stock)
}

func TestRegisterMovement_Validation(t *testing.T) {
	uc, store := newUC(t)
	seedProduct(t, store, "p1", 10, 5)

	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
		want error
	}{
		{"missing product id", dto.RegisterMovementRequest{Type: entity.MovementTypeSale, Quantity: 1}, domain.ErrInvalidInput},
		{"unknown type", dto.RegisterMovementRequest{ProductID: "p1", Type: "transfer", Quantity: 1}, domain.ErrInvalidInput},
		{"sale negative quantity", dto.RegisterMovementRequest{ProductID: "p1", Type: entity.MovementTypeSale, Quantity: -1}, domain.ErrInvalidInput},
		{"purchase zero quantity", dto.RegisterMovementRequest{ProductID: "p1", Type: entity.MovementTypePurchase, Quantity: 0}, domain.ErrInvalidInput},
		{"adjustment zero quantity", dto.RegisterMovementRequest{ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 0}, domain.ErrInvalidInput},
		{"unknown product", dto.RegisterMovementRequest{ProductID: "ghost", Type: entity.MovementTypeSale, Quantity: 1}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(context.Background(), "admin", tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Listing and low stock
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_MostRecentFirstAndFiltered(t *testing.T) {
	uc, store := newUC(t)
	seedProduct(t, store, "p1", 10, 5)
	seedProduct(t, store, "p2", 10, 5)

	_, err := uc.RegisterMovement(context.Background(), "admin", dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypePurchase, Quantity: 1,
	})
	require.NoError(t, err)
	_, err = uc.RegisterMovement(context.Background(), "admin", dto.RegisterMovementRequest{
		ProductID: "p2", Type: entity.MovementTypePurchase, Quantity: 2,
	})
	require.NoError(t, err)

	all, err := uc.ListMovements("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p2", all[0].ProductID, "latest movement first")

	onlyP1, err := uc.ListMovements("p1")
	require.NoError(t, err)
	require.Len(t, onlyP1, 1)
	assert.Equal(t, "p1", onlyP1[0].ProductID)
}

func TestLowStock_AtOrBelowMinimum(t *testing.T) {
	uc, store := newUC(t)
	seedProduct(t, store, "plenty", 100, 5)
	seedProduct(t, store, "exact", 5, 5)
	seedProduct(t, store, "below", 2, 5)

	out, err := uc.LowStock()
	require.NoError(t, err)

	ids := make([]string, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"exact", "below"}, ids)
}
