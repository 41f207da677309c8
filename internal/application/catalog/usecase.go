package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

// ProductUseCase catalog operations: create, batch create, list. The catalog
// is the single source of truth for kg-per-bao conversion factors; it is
// injected into the OCR and inventory use cases, never read from globals.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create adds one product to the catalog. Name must be unique.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || !in.KgPerBao.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Group:     in.Group,
		KgPerBao:  in.KgPerBao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// CreateBatch inserts several products at once (catalog bootstrap, spreadsheet
// pastes). The whole batch is validated before anything is written.
func (uc *ProductUseCase) CreateBatch(in dto.BatchCreateProductsRequest) ([]dto.ProductResponse, error) {
	if len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	products := make([]*entity.Product, 0, len(in.Products))
	for _, p := range in.Products {
		if p.Name == "" || !p.KgPerBao.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		products = append(products, &entity.Product{
			ID:        uuid.New().String(),
			Name:      p.Name,
			Group:     p.Group,
			KgPerBao:  p.KgPerBao,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := uc.repo.CreateBatch(products); err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// List returns the whole catalog.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Group:     p.Group,
		KgPerBao:  p.KgPerBao,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
