package repository

import "github.com/inventrack/inventrack-api/internal/domain/entity"

// StockMovementRepository persistence port for the append-only stock audit
// trail. List returns movements most-recent-first; there is no update or
// delete.
type StockMovementRepository interface {
	Append(m *entity.StockMovement) error
	List() ([]*entity.StockMovement, error)
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
