package ocr

import "context"

// TextExtractor is the boundary to the external OCR engine. One call per
// preview; a failure is terminal for that preview (no retry, nothing staged).
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}
