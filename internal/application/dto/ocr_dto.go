package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bichtuyen/kho-duong-api/internal/domain/ocr"
)

// PreviewItemDTO one OCR line matched to a catalog product. Transient: it is
// never persisted, only echoed back for the user to edit and confirm.
type PreviewItemDTO struct {
	Line        string          `json:"line"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	KgPerBao    decimal.Decimal `json:"kg_per_bao"`
	QuantityBao decimal.Decimal `json:"quantity_bao"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
}

// PreviewResponse response for POST /ocr/preview. Every input line appears in
// exactly one of Items or Errors.
type PreviewResponse struct {
	RawText string           `json:"raw_text"`
	Items   []PreviewItemDTO `json:"items"`
	Errors  []ocr.ParseError `json:"errors"`
}

// ConfirmItemRequest one user-approved preview line. QuantityKg is accepted
// for display symmetry but recomputed from the current catalog at commit time.
type ConfirmItemRequest struct {
	ProductID   string           `json:"product_id"`
	QuantityBao decimal.Decimal  `json:"quantity_bao"`
	QuantityKg  *decimal.Decimal `json:"quantity_kg,omitempty"`
	Note        string           `json:"note,omitempty"`
}

// ConfirmRequest body for POST /ocr/confirm.
type ConfirmRequest struct {
	Items []ConfirmItemRequest `json:"items"`
}

// ConfirmResponse created movements, in input order.
type ConfirmResponse struct {
	Movements []MovementResponse `json:"movements"`
}
