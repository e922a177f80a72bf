package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item (SKU) and its current stock level.
// Stock changes only through stock movements; the ledger does not clamp it
// at zero, so an over-sale leaves a negative balance on the audit trail.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	SKU           string          `json:"sku"`
	HSNCode       string          `json:"hsnCode"` // HSN classification for GST
	Price         decimal.Decimal `json:"price"`
	GSTRate       decimal.Decimal `json:"gstRate"` // percent: 5, 12, 18, 28 in practice
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"minStockLevel"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Description   string          `json:"description,omitempty"`
	Unit          string          `json:"unit"` // piece, ream, kg, ...
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// LowStock reports whether the product is at or below its minimum level.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStockLevel
}
