// Package ocrengine adapts Tesseract to the application's TextExtractor port.
//
// The receipts are handwritten or thermal-printed delivery notes in
// Vietnamese, so the engine runs with vie+eng trained data. Tesseract itself
// is a black box here: whatever text it returns is handed to the parsing
// pipeline as-is.
package ocrengine

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	appocr "github.com/bichtuyen/kho-duong-api/internal/application/ocr"
)

var _ appocr.TextExtractor = (*TesseractExtractor)(nil)

// TesseractExtractor implements TextExtractor with gosseract.
type TesseractExtractor struct {
	languages []string
}

// NewTesseractExtractor builds the extractor. languages are Tesseract language
// codes; empty defaults to vie+eng.
func NewTesseractExtractor(languages []string) *TesseractExtractor {
	if len(languages) == 0 {
		languages = []string{"vie", "eng"}
	}
	return &TesseractExtractor{languages: languages}
}

// ExtractText runs OCR over the image bytes and returns the raw text. A new
// client per call keeps the extractor safe for concurrent previews; gosseract
// clients are not goroutine-safe.
func (t *TesseractExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("tesseract set language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("tesseract set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract extract: %w", err)
	}
	return text, nil
}
