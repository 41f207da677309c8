package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound                = errors.New("resource not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrInvalidInput            = errors.New("invalid input")
	ErrDuplicate               = errors.New("duplicate resource")
	ErrInvalidConversionFactor = errors.New("invalid kg-per-bao conversion factor")
	ErrOCREngine               = errors.New("ocr engine failure")
)
