package repository

import (
	"time"

	"github.com/inventrack/inventrack-api/internal/domain/entity"
)

// InvoiceRepository persistence port for Invoice.
// List returns invoices most-recent-first; Create prepends.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	UpdateStatus(id, status string) error
	Delete(id string) error

	// NextNumber reserves the next invoice number for the month of now,
	// formatted INV<YY><MM><NNNN>. The sequence is a monotonic per-month
	// counter stored with the ledger, so deleting an invoice never frees
	// its number for reuse.
	NextNumber(now time.Time) (string, error)
}
