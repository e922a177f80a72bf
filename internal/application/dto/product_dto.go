package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	SKU           string          `json:"sku"`
	HSNCode       string          `json:"hsn_code"`
	Price         decimal.Decimal `json:"price"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Description   string          `json:"description,omitempty"`
	Unit          string          `json:"unit,omitempty"`
}

// UpdateProductRequest body for PUT /api/products/:id. Nil fields are left
// unchanged (partial update).
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	HSNCode       *string          `json:"hsn_code,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	GSTRate       *decimal.Decimal `json:"gst_rate,omitempty"`
	MinStockLevel *int64           `json:"min_stock_level,omitempty"`
	SupplierName  *string          `json:"supplier_name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
}

// ProductResponse product in responses.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	SKU           string          `json:"sku"`
	HSNCode       string          `json:"hsn_code"`
	Price         decimal.Decimal `json:"price"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	Stock         int64           `json:"stock"`
	MinStockLevel int64           `json:"min_stock_level"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Description   string          `json:"description,omitempty"`
	Unit          string          `json:"unit"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}
