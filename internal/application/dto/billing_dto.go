package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest one candidate line: product and quantity. Price, rate
// and name are snapshotted from the product at commit time.
type InvoiceItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateInvoiceRequest body for POST /api/invoices (and /preview).
// InterState nil means "derive from the customer's state vs the configured
// home state".
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customer_id"`
	Items         []InvoiceItemRequest `json:"items"`
	InterState    *bool                `json:"inter_state,omitempty"`
	PaymentMethod string               `json:"payment_method,omitempty"` // default cash
	Status        string               `json:"status,omitempty"`         // default paid
}

// InvoiceItemResponse one committed (or previewed) line.
type InvoiceItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	HSNCode     string          `json:"hsn_code,omitempty"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
	Total       decimal.Decimal `json:"total"`
}

// InvoicePreviewResponse computed totals for a draft, nothing committed.
type InvoicePreviewResponse struct {
	Items       []InvoiceItemResponse `json:"items"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
	CGST        decimal.Decimal       `json:"cgst"`
	SGST        decimal.Decimal       `json:"sgst"`
	IGST        decimal.Decimal       `json:"igst"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	InterState  bool                  `json:"inter_state"`
}

// InvoiceResponse committed invoice with full detail.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    string                `json:"customer_id,omitempty"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone,omitempty"`
	CustomerGST   string                `json:"customer_gst,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	CGST          decimal.Decimal       `json:"cgst"`
	SGST          decimal.Decimal       `json:"sgst"`
	IGST          decimal.Decimal       `json:"igst"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	PaymentMethod string                `json:"payment_method"`
	Status        string                `json:"status"`
	CreatedBy     string                `json:"created_by"`
	CreatedAt     string                `json:"created_at"`
}

// UpdateInvoiceStatusRequest body for PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // paid | pending | cancelled
}
