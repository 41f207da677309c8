package ocr

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	domocr "github.com/bichtuyen/kho-duong-api/internal/domain/ocr"
	"github.com/bichtuyen/kho-duong-api/internal/domain/repository"
)

// PreviewUseCase runs the OCR-to-inventory reconciliation pipeline: extract
// text from a receipt photo, parse quantity/name per line, fuzzy-match names
// against the catalog and stage the result for human confirmation. Nothing is
// persisted; the caller edits the preview and submits it to the confirm
// endpoint.
type PreviewUseCase struct {
	extractor   TextExtractor
	productRepo repository.ProductRepository
}

// NewPreviewUseCase builds the use case.
func NewPreviewUseCase(extractor TextExtractor, productRepo repository.ProductRepository) *PreviewUseCase {
	return &PreviewUseCase{extractor: extractor, productRepo: productRepo}
}

// Preview runs the pipeline over one image. Every non-empty line of the
// extracted text ends up in exactly one of Items or Errors; a line failure
// never aborts the remaining lines. Only an engine failure (or a catalog read
// failure) fails the whole call.
func (uc *PreviewUseCase) Preview(ctx context.Context, image []byte) (*dto.PreviewResponse, error) {
	if len(image) == 0 {
		return nil, domain.ErrInvalidInput
	}

	rawText, err := uc.extractor.ExtractText(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOCREngine, err)
	}

	catalog, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}

	resp := &dto.PreviewResponse{
		RawText: rawText,
		Items:   []dto.PreviewItemDTO{},
		Errors:  []domocr.ParseError{},
	}
	for _, line := range domocr.SplitLines(rawText) {
		parsed, ok := domocr.ParseLine(line)
		if !ok {
			resp.Errors = append(resp.Errors, domocr.ParseError{Line: line, Reason: domocr.ReasonQuantityNotFound})
			continue
		}
		product := domocr.FindBestMatch(parsed.NamePart, catalog)
		if product == nil {
			resp.Errors = append(resp.Errors, domocr.ParseError{Line: line, Reason: domocr.ReasonNoProductMatch})
			continue
		}
		quantityBao := decimal.NewFromInt(int64(parsed.QuantityBao))
		resp.Items = append(resp.Items, dto.PreviewItemDTO{
			Line:        line,
			ProductID:   product.ID,
			ProductName: product.Name,
			KgPerBao:    product.KgPerBao,
			QuantityBao: quantityBao,
			QuantityKg:  quantityBao.Mul(product.KgPerBao),
		})
	}
	return resp, nil
}
