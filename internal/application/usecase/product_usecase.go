package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// ProductUseCase catalog CRUD.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create adds a product to the catalog. SKU must be unique; price and rate
// must be non-negative (malformed numeric input is rejected here, not
// trusted from the form).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, fmt.Errorf("%w: name and sku are required", domain.ErrInvalidInput)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrInvalidInput)
	}
	if in.GSTRate.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: gst_rate must be non-negative", domain.ErrInvalidInput)
	}
	if in.Stock < 0 || in.MinStockLevel < 0 {
		return nil, fmt.Errorf("%w: stock levels must be non-negative", domain.ErrInvalidInput)
	}
	unit := in.Unit
	if unit == "" {
		unit = "piece"
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		SKU:           in.SKU,
		HSNCode:       in.HSNCode,
		Price:         in.Price,
		GSTRate:       in.GSTRate,
		Stock:         in.Stock,
		MinStockLevel: in.MinStockLevel,
		SupplierName:  in.SupplierName,
		Description:   in.Description,
		Unit:          unit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns one product, nil if absent.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List returns the whole catalog.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update applies a partial edit and stamps UpdatedAt. Stock is not editable
// here; it only changes through stock movements.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.HSNCode != nil {
		product.HSNCode = *in.HSNCode
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.GSTRate != nil {
		if in.GSTRate.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: gst_rate must be non-negative", domain.ErrInvalidInput)
		}
		product.GSTRate = *in.GSTRate
	}
	if in.MinStockLevel != nil {
		if *in.MinStockLevel < 0 {
			return nil, fmt.Errorf("%w: min_stock_level must be non-negative", domain.ErrInvalidInput)
		}
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.SupplierName != nil {
		product.SupplierName = *in.SupplierName
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes the product. Invoices and movements referencing it keep
// their denormalized snapshots.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Categories returns the distinct catalog categories, sorted. Empty
// categories are skipped.
func (uc *ProductUseCase) Categories() ([]string, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		SKU:           p.SKU,
		HSNCode:       p.HSNCode,
		Price:         p.Price.Round(2),
		GSTRate:       p.GSTRate,
		Stock:         p.Stock,
		MinStockLevel: p.MinStockLevel,
		SupplierName:  p.SupplierName,
		Description:   p.Description,
		Unit:          p.Unit,
		LowStock:      p.LowStock(),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}
