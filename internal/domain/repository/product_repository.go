package repository

import (
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
)

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	CreateBatch(products []*entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// List returns the whole catalog ordered by creation time. The order is
	// stable so fuzzy-match tie-breaking stays deterministic across calls.
	List() ([]*entity.Product, error)
	Count() (int, error)
}
