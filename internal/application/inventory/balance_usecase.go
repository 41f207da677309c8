package inventory

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	dominventory "github.com/bichtuyen/kho-duong-api/internal/domain/inventory"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

// StockBalanceUseCase reports current stock (tồn kho) and movement history.
type StockBalanceUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	reportGen    StockReportGenerator
	collator     *collate.Collator
}

// NewStockBalanceUseCase builds the use case. reportGen may be nil when PDF
// export is not wired (tests).
func NewStockBalanceUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	reportGen StockReportGenerator,
) *StockBalanceUseCase {
	return &StockBalanceUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		reportGen:    reportGen,
		collator:     collate.New(language.Vietnamese),
	}
}

// ComputeStock folds the full movement log into one balance row per product.
// A row with a non-positive kg-per-bao carries INVALID_CONVERSION_FACTOR
// instead of aborting the report. Rows are sorted by product name with
// Vietnamese collation so the report order matches the paper ledgers.
func (uc *StockBalanceUseCase) ComputeStock() (*dto.StockResponse, error) {
	catalog, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListAll()
	if err != nil {
		return nil, err
	}

	rows := dominventory.ComputeStock(catalog, movements)
	out := make([]dto.BalanceRowResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.BalanceRowResponse{
			ProductID: r.ProductID,
			Product:   r.Product,
			Group:     r.Group,
			KgPerBao:  r.KgPerBao,
		}
		if r.Err != nil {
			if r.Err == domain.ErrInvalidConversionFactor {
				resp.ErrorCode = "INVALID_CONVERSION_FACTOR"
			} else {
				resp.ErrorCode = "INTERNAL"
			}
		} else {
			tonKg := r.TonKg
			tonBao := r.TonBao
			resp.TonKg = &tonKg
			resp.TonBao = &tonBao
		}
		out = append(out, resp)
	}
	uc.sortRows(out)
	return &dto.StockResponse{Rows: out}, nil
}

// StockReportPDF renders the current balance as a PDF document.
func (uc *StockBalanceUseCase) StockReportPDF() ([]byte, error) {
	stock, err := uc.ComputeStock()
	if err != nil {
		return nil, err
	}
	return uc.reportGen.GenerateStockReport(stock.Rows, time.Now())
}

// History lists movements newest-first with product info joined in.
func (uc *StockBalanceUseCase) History(page dto.PageRequest) (*dto.HistoryListResponse, error) {
	page.DefaultPage()
	entries, err := uc.movementRepo.ListHistory(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.HistoryEntryResponse{
			MovementResponse: *ToMovementResponse(&e.Movement),
			ProductName:      e.ProductName,
			ProductGroup:     e.ProductGroup,
		})
	}
	return &dto.HistoryListResponse{Items: items}, nil
}

func (uc *StockBalanceUseCase) sortRows(rows []dto.BalanceRowResponse) {
	sort.SliceStable(rows, func(i, j int) bool {
		return uc.collator.CompareString(rows[i].Product, rows[j].Product) < 0
	})
}
