package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a billing customer. TotalPurchases and
// LastPurchaseDate are maintained by invoice commits.
type Customer struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address,omitempty"`
	GSTNumber        string          `json:"gstNumber,omitempty"` // GSTIN, optional for unregistered buyers
	State            string          `json:"state,omitempty"`     // decides intra- vs inter-state tax
	TotalPurchases   decimal.Decimal `json:"totalPurchases"`
	LastPurchaseDate *time.Time      `json:"lastPurchaseDate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}
