// Package inventory holds the stock movement use cases. Every stock change
// flows through here: manual entries from the stock page and the per-line
// sale entries an invoice commit registers.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// TxRunner runs fn as one all-or-nothing inventory transaction.
type TxRunner interface {
	Run(
		ctx context.Context,
		fn func(products repository.ProductRepository, movements repository.StockMovementRepository) error,
	) error
}

// UseCase registers stock movements and serves the stock views.
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewUseCase builds the use case.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// RegisterMovement applies one manual stock change: sale and purchase move
// stock by a positive magnitude (sign comes from the type), adjustment adds
// the signed quantity as-is. The ledger does not clamp stock at zero; the
// audit trail records whatever balance results.
func (uc *UseCase) RegisterMovement(ctx context.Context, createdBy string, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrInvalidInput)
	}
	if !entity.ValidMovementType(in.Type) {
		return nil, fmt.Errorf("%w: unknown movement type %q", domain.ErrInvalidInput, in.Type)
	}
	switch in.Type {
	case entity.MovementTypeAdjustment:
		if in.Quantity == 0 {
			return nil, fmt.Errorf("%w: adjustment quantity must be non-zero", domain.ErrInvalidInput)
		}
	default:
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
		}
	}

	now := time.Now()
	var movement *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.StockMovementRepository) error {
		product, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: product %s", domain.ErrNotFound, in.ProductID)
		}
		movement, err = applyChange(products, movements, product, in.Type, in.Quantity, in.Reference, in.Notes, createdBy, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// RegisterSaleInTx registers the sale movement for one invoice line inside
// an already-running billing transaction. This is the only stock path that
// checks availability: the invoice commit must reject before anything is
// applied.
func (uc *UseCase) RegisterSaleInTx(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	productID string,
	quantity int64,
	reference, createdBy string,
	now time.Time,
) error {
	product, err := products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, productID)
	}
	if product.Stock < quantity {
		return fmt.Errorf("%w: %s (available %d, requested %d)",
			domain.ErrInsufficientStock, product.Name, product.Stock, quantity)
	}
	_, err = applyChange(products, movements, product, entity.MovementTypeSale, quantity, reference, "", createdBy, now)
	return err
}

// applyChange writes the new stock onto the product and appends the audit
// record with the resulting balance. The only path by which stock changes.
func applyChange(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	product *entity.Product,
	movType string,
	quantity int64,
	reference, notes, createdBy string,
	now time.Time,
) (*entity.StockMovement, error) {
	delta := quantity
	if movType == entity.MovementTypeSale {
		delta = -quantity
	}
	newStock := product.Stock + delta

	product.Stock = newStock
	product.UpdatedAt = now
	if err := products.Update(product); err != nil {
		return nil, err
	}

	movement := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		Type:         movType,
		Quantity:     quantity,
		BalanceAfter: newStock,
		Reference:    reference,
		Notes:        notes,
		CreatedBy:    createdBy,
		CreatedAt:    now,
	}
	if err := movements.Append(movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// ListMovements returns the audit trail, most recent first, optionally
// filtered by product.
func (uc *UseCase) ListMovements(productID string) ([]*dto.StockMovementResponse, error) {
	var (
		list []*entity.StockMovement
		err  error
	)
	if productID != "" {
		list, err = uc.movementRepo.ListByProduct(productID)
	} else {
		list, err = uc.movementRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// LowStock lists products at or below their minimum stock level.
func (uc *UseCase) LowStock() ([]*dto.LowStockProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LowStockProductResponse, 0)
	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		out = append(out, &dto.LowStockProductResponse{
			ID:            p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			Stock:         p.Stock,
			MinStockLevel: p.MinStockLevel,
			Unit:          p.Unit,
		})
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	return &dto.StockMovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		Type:         m.Type,
		Quantity:     m.Quantity,
		BalanceAfter: m.BalanceAfter,
		Reference:    m.Reference,
		Notes:        m.Notes,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}
