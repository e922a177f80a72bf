package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/application/usecase"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/infrastructure/ledger"
)

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)
	return usecase.NewProductUseCase(store.Products())
}

func TestProductCreate_DefaultsAndLowStockFlag(t *testing.T) {
	uc := newProductUC(t)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:          "LED Monitor 24\"",
		Category:      "Electronics",
		SKU:           "MON-001",
		HSNCode:       "8528",
		Price:         decimal.RequireFromString("9500"),
		GSTRate:       decimal.NewFromInt(18),
		Stock:         3,
		MinStockLevel: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "piece", out.Unit, "unit defaults to piece")
	assert.True(t, out.LowStock, "stock 3 with minimum 5 is low")
	assert.NotEmpty(t, out.CreatedAt)
}

func TestProductCreate_Validation(t *testing.T) {
	uc := newProductUC(t)

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"missing name", dto.CreateProductRequest{SKU: "X-001", Price: decimal.NewFromInt(1)}},
		{"missing sku", dto.CreateProductRequest{Name: "X", Price: decimal.NewFromInt(1)}},
		{"negative price", dto.CreateProductRequest{Name: "X", SKU: "X-001", Price: decimal.NewFromInt(-1)}},
		{"negative gst rate", dto.CreateProductRequest{Name: "X", SKU: "X-001", Price: decimal.NewFromInt(1), GSTRate: decimal.NewFromInt(-5)}},
		{"negative stock", dto.CreateProductRequest{Name: "X", SKU: "X-001", Price: decimal.NewFromInt(1), Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductUpdate_PartialLeavesOtherFields(t *testing.T) {
	uc := newProductUC(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:    "Office Chair",
		SKU:     "CHR-001",
		Price:   decimal.RequireFromString("5500"),
		GSTRate: decimal.NewFromInt(18),
		Stock:   8,
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("5999.99")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "Office Chair", out.Name)
	assert.Equal(t, "CHR-001", out.SKU)
	assert.EqualValues(t, 8, out.Stock, "stock is not editable through product update")
}

func TestProductUpdate_MissingReturnsNil(t *testing.T) {
	uc := newProductUC(t)
	out, err := uc.Update("ghost", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductCategories_DistinctAndSorted(t *testing.T) {
	uc := newProductUC(t)
	for _, p := range []struct{ sku, category string }{
		{"LAP-001", "Electronics"},
		{"MOU-001", "Electronics"},
		{"PAP-001", "Stationery"},
		{"CHR-001", "Furniture"},
		{"MIS-001", ""},
	} {
		_, err := uc.Create(dto.CreateProductRequest{
			Name: p.sku, SKU: p.sku, Category: p.category,
			Price: decimal.NewFromInt(1), GSTRate: decimal.NewFromInt(18),
		})
		require.NoError(t, err)
	}

	out, err := uc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Furniture", "Stationery"}, out)
}

func TestProductDelete(t *testing.T) {
	uc := newProductUC(t)
	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Paper", SKU: "PAP-001", Price: decimal.NewFromInt(250), GSTRate: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete("ghost"), domain.ErrNotFound)
}
