package entity

import "time"

// Stock movement types.
const (
	MovementTypeSale       = "sale"       // outgoing, quantity is a positive magnitude
	MovementTypePurchase   = "purchase"   // incoming, quantity is a positive magnitude
	MovementTypeAdjustment = "adjustment" // signed correction, positive or negative
)

// StockMovement is one append-only audit record of a stock change.
// BalanceAfter is the product's stock immediately after this movement was
// applied. Movements are never mutated or deleted.
type StockMovement struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"` // snapshot; survives product deletion
	Type         string    `json:"type"`
	Quantity     int64     `json:"quantity"`
	BalanceAfter int64     `json:"balanceAfter"`
	Reference    string    `json:"reference,omitempty"` // invoice number, PO number, ...
	Notes        string    `json:"notes,omitempty"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidMovementType reports whether t is one of the known movement types.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeSale, MovementTypePurchase, MovementTypeAdjustment:
		return true
	}
	return false
}
