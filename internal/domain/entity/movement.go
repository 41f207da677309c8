package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types. Wire values keep the Vietnamese terms used across the
// business: nhập = stock-in, xuất = stock-out.
const (
	MovementTypeIn  = "nhap"
	MovementTypeOut = "xuat"
)

// Movement is one append-only inventory record. QuantityKg is computed as
// QuantityBao × Product.KgPerBao at write time and never recomputed, so the
// log stays a faithful snapshot of what was moved.
type Movement struct {
	ID          string
	ProductID   string
	Type        string // nhap | xuat
	QuantityBao decimal.Decimal
	QuantityKg  decimal.Decimal
	Note        string
	CreatedAt   time.Time
}

// HistoryEntry is a movement joined with its product for history listings.
type HistoryEntry struct {
	Movement
	ProductName  string
	ProductGroup string
}
