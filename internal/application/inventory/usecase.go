package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

// RegisterMovementUseCase appends single nhập/xuất movements to the log.
// quantityKg is derived from the product's current kg-per-bao at write time
// and frozen; later catalog edits never rewrite history.
type RegisterMovementUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewRegisterMovementUseCase builds the use case.
func NewRegisterMovementUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// Register validates the request, derives quantityKg and appends one movement
// of the given type (entity.MovementTypeIn or entity.MovementTypeOut).
func (uc *RegisterMovementUseCase) Register(movementType string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if movementType != entity.MovementTypeIn && movementType != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || !in.QuantityBao.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	mov := &entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Type:        movementType,
		QuantityBao: in.QuantityBao,
		QuantityKg:  in.QuantityBao.Mul(product.KgPerBao),
		Note:        in.Note,
		CreatedAt:   time.Now(),
	}
	if err := uc.movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return ToMovementResponse(mov), nil
}

// ToMovementResponse maps a movement entity to its response DTO.
func ToMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		QuantityBao: m.QuantityBao,
		QuantityKg:  m.QuantityKg,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
}
