package repository

import "github.com/inventrack/inventrack-api/internal/domain/entity"

// ProductRepository persistence port for Product.
// Get methods return (nil, nil) when the record does not exist.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(p *entity.Product) error
	Delete(id string) error
}
