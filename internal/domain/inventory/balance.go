package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
)

// BalanceRow is the current stock position of one product: tồn kho in
// kilograms and in bags. Err is set (ErrInvalidConversionFactor) when the
// product's KgPerBao is not positive; other rows are unaffected.
type BalanceRow struct {
	ProductID string
	Product   string
	Group     string
	KgPerBao  decimal.Decimal
	TonKg     decimal.Decimal
	TonBao    decimal.Decimal
	Err       error
}

// ComputeStock folds the movement log into one balance row per product:
//
//	tonKg  = Σ quantityKg(nhập) − Σ quantityKg(xuất)
//	tonBao = tonKg ÷ kgPerBao
//
// The fold is pure: the movement log is never touched, and the result is
// independent of movement ordering. Movements are grouped by product id once,
// so the cost is O(products + movements).
func ComputeStock(catalog []*entity.Product, movements []*entity.Movement) []BalanceRow {
	byProduct := make(map[string][]*entity.Movement, len(catalog))
	for _, m := range movements {
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}

	rows := make([]BalanceRow, 0, len(catalog))
	for _, p := range catalog {
		row := BalanceRow{
			ProductID: p.ID,
			Product:   p.Name,
			Group:     p.Group,
			KgPerBao:  p.KgPerBao,
		}
		if !p.KgPerBao.IsPositive() {
			row.Err = domain.ErrInvalidConversionFactor
			rows = append(rows, row)
			continue
		}
		tonKg := decimal.Zero
		for _, m := range byProduct[p.ID] {
			switch m.Type {
			case entity.MovementTypeIn:
				tonKg = tonKg.Add(m.QuantityKg)
			case entity.MovementTypeOut:
				tonKg = tonKg.Sub(m.QuantityKg)
			}
		}
		row.TonKg = tonKg
		row.TonBao = tonKg.Div(p.KgPerBao)
		rows = append(rows, row)
	}
	return rows
}
