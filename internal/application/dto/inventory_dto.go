package dto

// RegisterMovementRequest body for POST /api/inventory/movements.
// Quantity is a positive magnitude for sale and purchase; adjustment accepts
// a signed value.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // sale | purchase | adjustment
	Quantity  int64  `json:"quantity"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// StockMovementResponse one audit record.
type StockMovementResponse struct {
	ID           string `json:"id"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Type         string `json:"type"`
	Quantity     int64  `json:"quantity"`
	BalanceAfter int64  `json:"balance_after"`
	Reference    string `json:"reference,omitempty"`
	Notes        string `json:"notes,omitempty"`
	CreatedBy    string `json:"created_by"`
	CreatedAt    string `json:"created_at"`
}

// LowStockProductResponse one product at or below its minimum level.
type LowStockProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Stock         int64  `json:"stock"`
	MinStockLevel int64  `json:"min_stock_level"`
	Unit          string `json:"unit"`
}
