package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /products.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Group    string          `json:"group"`
	KgPerBao decimal.Decimal `json:"kg_per_bao"`
}

// BatchCreateProductsRequest body for POST /products/batch.
type BatchCreateProductsRequest struct {
	Products []CreateProductRequest `json:"products"`
}

// ProductResponse one catalog entry.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Group     string          `json:"group"`
	KgPerBao  decimal.Decimal `json:"kg_per_bao"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse response for GET /products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
