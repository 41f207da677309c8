package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

// DefaultConfirmNote is attached to confirmed items that carry no note.
const DefaultConfirmNote = "xuất kho qua OCR"

// ConfirmStockOutUseCase commits a user-approved OCR preview as xuất
// movements. The batch runs in a single transaction: one bad item rolls back
// the whole confirm, so a cancelled or failed request never leaves a partial
// prefix committed.
type ConfirmStockOutUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewConfirmStockOutUseCase builds the use case.
func NewConfirmStockOutUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ConfirmStockOutUseCase {
	return &ConfirmStockOutUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Confirm validates every item, then appends one xuất movement per item inside
// one transaction. quantityKg is recomputed from the product's current
// kg-per-bao, not the factor shown in the preview, so a catalog edit between
// preview and confirm wins. Returns the created movements in input order.
func (uc *ConfirmStockOutUseCase) Confirm(ctx context.Context, in dto.ConfirmRequest) (*dto.ConfirmResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validate and resolve products before opening the transaction.
	now := time.Now()
	movements := make([]*entity.Movement, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || !item.QuantityBao.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		note := item.Note
		if note == "" {
			note = DefaultConfirmNote
		}
		movements = append(movements, &entity.Movement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Type:        entity.MovementTypeOut,
			QuantityBao: item.QuantityBao,
			QuantityKg:  item.QuantityBao.Mul(product.KgPerBao),
			Note:        note,
			CreatedAt:   now,
		})
	}

	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository) error {
		for _, mov := range movements {
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementResponse, 0, len(movements))
	for _, mov := range movements {
		out = append(out, *ToMovementResponse(mov))
	}
	return &dto.ConfirmResponse{Movements: out}, nil
}
