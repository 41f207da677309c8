package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/application/inventory"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
)

func TestRegister_StockInDerivesKg(t *testing.T) {
	movements := &fakeMovementRepo{}
	uc := inventory.NewRegisterMovementUseCase(catalogRepo(), movements)

	resp, err := uc.Register(entity.MovementTypeIn, dto.RegisterMovementRequest{
		ProductID:   "p1",
		QuantityBao: decimal.NewFromInt(4),
		Note:        "nhập đầu tuần",
	})
	require.NoError(t, err)
	require.Len(t, movements.created, 1)

	assert.Equal(t, entity.MovementTypeIn, resp.Type)
	assert.Equal(t, "p1", resp.ProductID)
	assert.True(t, decimal.NewFromInt(4).Equal(resp.QuantityBao))
	assert.True(t, decimal.NewFromInt(200).Equal(resp.QuantityKg))
	assert.Equal(t, "nhập đầu tuần", resp.Note)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestRegister_StockOut(t *testing.T) {
	movements := &fakeMovementRepo{}
	uc := inventory.NewRegisterMovementUseCase(catalogRepo(), movements)

	resp, err := uc.Register(entity.MovementTypeOut, dto.RegisterMovementRequest{
		ProductID:   "p2",
		QuantityBao: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementTypeOut, resp.Type)
	assert.True(t, decimal.NewFromInt(30).Equal(resp.QuantityKg))
}

func TestRegister_RejectsUnknownType(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase(catalogRepo(), &fakeMovementRepo{})

	_, err := uc.Register("chuyển", dto.RegisterMovementRequest{
		ProductID:   "p1",
		QuantityBao: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UnknownProduct(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase(catalogRepo(), &fakeMovementRepo{})

	_, err := uc.Register(entity.MovementTypeOut, dto.RegisterMovementRequest{
		ProductID:   "missing",
		QuantityBao: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRegister_Validation(t *testing.T) {
	movements := &fakeMovementRepo{}
	uc := inventory.NewRegisterMovementUseCase(catalogRepo(), movements)

	_, err := uc.Register(entity.MovementTypeIn, dto.RegisterMovementRequest{
		QuantityBao: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing product id")

	_, err = uc.Register(entity.MovementTypeIn, dto.RegisterMovementRequest{
		ProductID: "p1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero quantity")

	assert.Empty(t, movements.created)
}
