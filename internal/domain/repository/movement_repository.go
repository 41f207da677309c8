package repository

import (
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
)

// MovementRepository defines the persistence port for the append-only
// inventory movement log. Movements are never updated or deleted.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListAll() ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	// ListHistory returns movements newest-first with product name and group
	// joined in, for the history view.
	ListHistory(limit, offset int) ([]*entity.HistoryEntry, error)
}
