package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// CustomerUseCase customer directory CRUD. Purchase history on a customer is
// written only by invoice commits.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registers a customer.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if in.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		GSTNumber: in.GSTNumber,
		State:     in.State,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID returns one customer, nil if absent.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List returns the whole directory.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update applies a partial edit.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidInput)
		}
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		if *in.Phone == "" {
			return nil, fmt.Errorf("%w: phone cannot be empty", domain.ErrInvalidInput)
		}
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.GSTNumber != nil {
		customer.GSTNumber = *in.GSTNumber
	}
	if in.State != nil {
		customer.State = *in.State
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes the customer. Issued invoices keep their denormalized
// customer snapshot.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		GSTNumber:      c.GSTNumber,
		State:          c.State,
		TotalPurchases: c.TotalPurchases.Round(2),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
	if c.LastPurchaseDate != nil {
		resp.LastPurchaseDate = c.LastPurchaseDate.Format(time.RFC3339)
	}
	return resp
}
