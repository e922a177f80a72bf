package billing

import (
	"context"
	"time"

	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// TxRunner runs fn against a single consistent ledger state. Either every
// write fn makes is committed, or none of them is.
type TxRunner interface {
	RunBilling(
		ctx context.Context,
		fn func(
			products repository.ProductRepository,
			movements repository.StockMovementRepository,
			customers repository.CustomerRepository,
			invoices repository.InvoiceRepository,
		) error,
	) error
}

// StockRegistrar registers a sale movement inside a running billing
// transaction. It must check availability and leave stock plus audit trail
// consistent, so the invoice commit owns no stock arithmetic of its own.
type StockRegistrar interface {
	RegisterSaleInTx(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		productID string,
		quantity int64,
		reference, createdBy string,
		now time.Time,
	) error
}
