package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/infrastructure/pdf"
)

func decPtr(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func TestGenerateStockReport_ProducesPDF(t *testing.T) {
	gen := pdf.NewMarotoStockReport("Kho Đường Bích Tuyền")

	rows := []dto.BalanceRowResponse{
		{
			ProductID: "p1", Product: "Nhuyễn", Group: "Đường cát",
			KgPerBao: decimal.NewFromInt(50),
			TonKg:    decPtr(600), TonBao: decPtr(12),
		},
		{
			ProductID: "p2", Product: "Hỏng", Group: "Phèn",
			KgPerBao:  decimal.Zero,
			ErrorCode: "INVALID_CONVERSION_FACTOR",
		},
	}

	doc, err := gen.GenerateStockReport(rows, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(doc), 1000)
}

func TestGenerateStockReport_EmptyCatalog(t *testing.T) {
	gen := pdf.NewMarotoStockReport("Kho Đường Bích Tuyền")

	doc, err := gen.GenerateStockReport(nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
