package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/application/inventory"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

// ============================================================
// Fakes
// ============================================================

type fakeProductRepo struct {
	products map[string]*entity.Product
	getErr   error
}

func (f *fakeProductRepo) Create(*entity.Product) error        { return nil }
func (f *fakeProductRepo) CreateBatch([]*entity.Product) error { return nil }
func (f *fakeProductRepo) Count() (int, error)                 { return len(f.products), nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

// fakeMovementRepo records creates and can be told to fail from the Nth call
// on, to simulate a write error mid-batch.
type fakeMovementRepo struct {
	created   []*entity.Movement
	history   []*entity.HistoryEntry
	failAfter int // fail once len(created) reaches this; 0 disables
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	if f.failAfter > 0 && len(f.created) >= f.failAfter {
		return errors.New("insert failed")
	}
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMovementRepo) ListAll() ([]*entity.Movement, error) { return f.created, nil }
func (f *fakeMovementRepo) ListByProduct(string) ([]*entity.Movement, error) {
	return nil, nil
}
func (f *fakeMovementRepo) ListHistory(int, int) ([]*entity.HistoryEntry, error) {
	return f.history, nil
}

// fakeTxRunner mimics transactional semantics: writes land in committed only
// when the whole function succeeds.
type fakeTxRunner struct {
	repo      *fakeMovementRepo
	committed []*entity.Movement
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository) error) error {
	before := len(f.repo.created)
	if err := fn(f.repo); err != nil {
		f.repo.created = f.repo.created[:before] // rollback
		return err
	}
	f.committed = append(f.committed, f.repo.created[before:]...)
	return nil
}

func catalogRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Name: "Nhuyễn", Group: "Đường cát", KgPerBao: decimal.NewFromInt(50)},
		"p2": {ID: "p2", Name: "Phèn Xá", Group: "Phèn", KgPerBao: decimal.NewFromInt(10)},
	}}
}

func confirmItem(productID string, bao int64) dto.ConfirmItemRequest {
	return dto.ConfirmItemRequest{ProductID: productID, QuantityBao: decimal.NewFromInt(bao)}
}

// ============================================================
// Confirm
// ============================================================

func TestConfirm_CommitsAllItemsInInputOrder(t *testing.T) {
	tx := &fakeTxRunner{repo: &fakeMovementRepo{}}
	uc := inventory.NewConfirmStockOutUseCase(tx, catalogRepo())

	resp, err := uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{
		confirmItem("p2", 3),
		confirmItem("p1", 12),
	}})
	require.NoError(t, err)
	require.Len(t, resp.Movements, 2)
	require.Len(t, tx.committed, 2)

	assert.Equal(t, "p2", resp.Movements[0].ProductID)
	assert.Equal(t, "p1", resp.Movements[1].ProductID)
	for _, m := range resp.Movements {
		assert.Equal(t, entity.MovementTypeOut, m.Type)
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, inventory.DefaultConfirmNote, m.Note)
	}
	assert.True(t, decimal.NewFromInt(30).Equal(resp.Movements[0].QuantityKg))
	assert.True(t, decimal.NewFromInt(600).Equal(resp.Movements[1].QuantityKg))
}

// quantityKg sent by the client is display data; the commit recomputes it from
// the catalog's current conversion factor.
func TestConfirm_RecomputesQuantityKg(t *testing.T) {
	tx := &fakeTxRunner{repo: &fakeMovementRepo{}}
	uc := inventory.NewConfirmStockOutUseCase(tx, catalogRepo())

	stale := decimal.NewFromInt(9999)
	resp, err := uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{
		{ProductID: "p1", QuantityBao: decimal.NewFromInt(2), QuantityKg: &stale},
	}})
	require.NoError(t, err)
	require.Len(t, resp.Movements, 1)
	assert.True(t, decimal.NewFromInt(100).Equal(resp.Movements[0].QuantityKg))
}

func TestConfirm_CustomNoteKept(t *testing.T) {
	tx := &fakeTxRunner{repo: &fakeMovementRepo{}}
	uc := inventory.NewConfirmStockOutUseCase(tx, catalogRepo())

	item := confirmItem("p1", 1)
	item.Note = "giao cho khách A"
	resp, err := uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{item}})
	require.NoError(t, err)
	assert.Equal(t, "giao cho khách A", resp.Movements[0].Note)
}

func TestConfirm_UnknownProductAbortsWholeBatch(t *testing.T) {
	tx := &fakeTxRunner{repo: &fakeMovementRepo{}}
	uc := inventory.NewConfirmStockOutUseCase(tx, catalogRepo())

	_, err := uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{
		confirmItem("p1", 5),
		confirmItem("missing", 1),
	}})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, tx.committed, "nothing may be committed when any item is invalid")
}

func TestConfirm_WriteFailureRollsBack(t *testing.T) {
	tx := &fakeTxRunner{repo: &fakeMovementRepo{failAfter: 1}}
	uc := inventory.NewConfirmStockOutUseCase(tx, catalogRepo())

	_, err := uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{
		confirmItem("p1", 5),
		confirmItem("p2", 2),
	}})
	require.Error(t, err)
	assert.Empty(t, tx.committed)
	assert.Empty(t, tx.repo.created, "rolled-back writes must not persist")
}

func TestConfirm_Validation(t *testing.T) {
	tx := &fakeTxRunner{repo: &fakeMovementRepo{}}
	uc := inventory.NewConfirmStockOutUseCase(tx, catalogRepo())

	_, err := uc.Confirm(context.Background(), dto.ConfirmRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty batch")

	_, err = uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{
		confirmItem("", 5),
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing product id")

	_, err = uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{
		confirmItem("p1", 0),
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "non-positive quantity")

	_, err = uc.Confirm(context.Background(), dto.ConfirmRequest{Items: []dto.ConfirmItemRequest{
		confirmItem("p1", -3),
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "negative quantity")
	assert.Empty(t, tx.committed)
}
