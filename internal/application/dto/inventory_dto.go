package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body for POST /inventory/import and /inventory/export.
// QuantityKg is derived server-side from the product's current kg_per_bao.
type RegisterMovementRequest struct {
	ProductID   string          `json:"product_id"`
	QuantityBao decimal.Decimal `json:"quantity_bao"`
	Note        string          `json:"note,omitempty"`
}

// MovementResponse one stored movement.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Type        string          `json:"type"` // nhap | xuat
	QuantityBao decimal.Decimal `json:"quantity_bao"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// HistoryEntryResponse movement with product info, for GET /inventory/history.
type HistoryEntryResponse struct {
	MovementResponse
	ProductName  string `json:"product_name"`
	ProductGroup string `json:"product_group"`
}

// HistoryListResponse response for GET /inventory/history.
type HistoryListResponse struct {
	Items []HistoryEntryResponse `json:"items"`
}

// BalanceRowResponse current stock of one product, GET /inventory/stock.
// ErrorCode is INVALID_CONVERSION_FACTOR when kg_per_bao is not positive;
// ton fields are omitted for such rows.
type BalanceRowResponse struct {
	ProductID string           `json:"product_id"`
	Product   string           `json:"product"`
	Group     string           `json:"group"`
	KgPerBao  decimal.Decimal  `json:"kg_per_bao"`
	TonKg     *decimal.Decimal `json:"ton_kg,omitempty"`
	TonBao    *decimal.Decimal `json:"ton_bao,omitempty"`
	ErrorCode string           `json:"error_code,omitempty"`
}

// StockResponse response for GET /inventory/stock.
type StockResponse struct {
	Rows []BalanceRowResponse `json:"rows"`
}
