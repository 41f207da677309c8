package inventory

import (
	"context"
	"time"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing a movement
// repository bound to that tx. It makes the OCR confirm batch all-or-nothing.
type TxRunner interface {
	Run(ctx context.Context, fn func(movRepo repository.MovementRepository) error) error
}

// StockReportGenerator renders the stock balance report as a document
// (implemented with Maroto in infrastructure/pdf).
type StockReportGenerator interface {
	GenerateStockReport(rows []dto.BalanceRowResponse, generatedAt time.Time) ([]byte, error)
}
