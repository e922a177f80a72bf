package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses.
const (
	InvoiceStatusPaid      = "paid"
	InvoiceStatusPending   = "pending"
	InvoiceStatusCancelled = "cancelled"
)

// Payment methods.
const (
	PaymentMethodCash  = "cash"
	PaymentMethodCard  = "card"
	PaymentMethodUPI   = "upi"
	PaymentMethodOther = "other"
)

// Invoice is an issued tax invoice. Customer and product fields are
// denormalized snapshots taken at commit time, so the invoice stays readable
// after the referenced records are deleted. Immutable after commit except
// Status.
//
// Tax split invariant: for a same-state sale CGST and SGST each carry half
// the tax and IGST is zero; for an inter-state sale IGST carries all of it.
// Never both.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"` // INV<YY><MM><NNNN>
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	CustomerGST   string          `json:"customerGST,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// InvoiceItem is one line of an invoice. Name, price and rate are snapshots
// of the product at the time of sale.
type InvoiceItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	HSNCode     string          `json:"hsnCode,omitempty"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	GSTRate     decimal.Decimal `json:"gstRate"`
	Total       decimal.Decimal `json:"total"`
}

// ValidInvoiceStatus reports whether s is one of the known statuses.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the known payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodOther:
		return true
	}
	return false
}
