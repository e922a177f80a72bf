package repository

import "github.com/inventrack/inventrack-api/internal/domain/entity"

// CustomerRepository persistence port for Customer.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(c *entity.Customer) error
	Delete(id string) error
}
