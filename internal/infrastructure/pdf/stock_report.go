// Package pdf renders the tồn kho (stock balance) report with Maroto v2.
//
// A4 layout:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: warehouse name + report date                    │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLE: Sản phẩm | Nhóm | Kg/bao | Tồn (bao) | Tồn (kg)  │
//	│  ──────────────────────────────────────────────────────  │
//	│  TOTAL: Σ tồn kg across valid rows                       │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/application/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implements inventory.StockReportGenerator with Maroto v2.
type MarotoStockReport struct {
	warehouseName string
}

// NewMarotoStockReport builds the generator.
func NewMarotoStockReport(warehouseName string) *MarotoStockReport {
	return &MarotoStockReport{warehouseName: warehouseName}
}

// GenerateStockReport renders the balance rows and returns the PDF bytes.
func (g *MarotoStockReport) GenerateStockReport(rows []dto.BalanceRowResponse, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Báo cáo tồn kho", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.warehouseName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	totalKg := decimal.Zero
	for _, r := range rows {
		m.AddRows(balanceRow(r))
		if r.TonKg != nil {
			totalKg = totalKg.Add(*r.TonKg)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(totalKg))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(name string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Báo cáo tồn kho", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	hr := h
	hr.Align = align.Right
	return row.New(7).Add(
		col.New(4).Add(text.New("Sản phẩm", h)),
		col.New(3).Add(text.New("Nhóm", h)),
		col.New(1).Add(text.New("Kg/bao", hr)),
		col.New(2).Add(text.New("Tồn (bao)", hr)),
		col.New(2).Add(text.New("Tồn (kg)", hr)),
	)
}

func balanceRow(r dto.BalanceRowResponse) core.Row {
	cell := props.Text{Size: 9}
	num := props.Text{Size: 9, Align: align.Right}

	tonBao, tonKg := "—", "—"
	if r.ErrorCode != "" {
		tonKg = r.ErrorCode
	} else if r.TonBao != nil && r.TonKg != nil {
		tonBao = r.TonBao.StringFixed(2)
		tonKg = r.TonKg.StringFixed(2)
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(r.Product, cell)),
		col.New(3).Add(text.New(r.Group, cell)),
		col.New(1).Add(text.New(r.KgPerBao.StringFixed(0), num)),
		col.New(2).Add(text.New(tonBao, num)),
		col.New(2).Add(text.New(tonKg, num)),
	)
}

func totalRow(totalKg decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(10).Add(text.New("TỔNG TỒN KHO (kg)", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
		col.New(2).Add(text.New(totalKg.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
	)
}
