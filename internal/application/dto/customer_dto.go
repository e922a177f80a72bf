package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	GSTNumber string `json:"gst_number,omitempty"`
	State     string `json:"state,omitempty"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id (partial update).
// Purchase history fields are maintained by invoice commits and cannot be
// edited here.
type UpdateCustomerRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	GSTNumber *string `json:"gst_number,omitempty"`
	State     *string `json:"state,omitempty"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address,omitempty"`
	GSTNumber        string          `json:"gst_number,omitempty"`
	State            string          `json:"state,omitempty"`
	TotalPurchases   decimal.Decimal `json:"total_purchases"`
	LastPurchaseDate string          `json:"last_purchase_date,omitempty"`
	CreatedAt        string          `json:"created_at"`
}
