package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/application/inventory"
	"github.com/bichtuyen/kho-duong-api/internal/application/ocr"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
)

// maxImageSize caps uploaded receipt photos at 10 MB.
const maxImageSize = 10 << 20

// OCRHandler handles the receipt import flow: preview (no side effects) and
// confirm (commits the approved items as xuất movements).
type OCRHandler struct {
	preview *ocr.PreviewUseCase
	confirm *inventory.ConfirmStockOutUseCase
}

// NewOCRHandler builds the handler.
func NewOCRHandler(preview *ocr.PreviewUseCase, confirm *inventory.ConfirmStockOutUseCase) *OCRHandler {
	return &OCRHandler{preview: preview, confirm: confirm}
}

// Preview handles POST /ocr/preview. Expects a multipart form with an "image"
// file. Returns the raw OCR text, the matched items and the per-line errors;
// persists nothing.
func (h *OCRHandler) Preview(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "multipart field 'image' is required"})
	}
	if fileHeader.Size > maxImageSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "IMAGE_TOO_LARGE", Message: "image exceeds 10MB"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cannot read uploaded image"})
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cannot read uploaded image"})
	}

	out, err := h.preview.Preview(c.Context(), image)
	if err != nil {
		if errors.Is(err, domain.ErrOCREngine) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "OCR_ENGINE_FAILURE", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empty image"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Confirm handles POST /ocr/confirm. The batch is all-or-nothing: one unknown
// product rolls back every item.
func (h *OCRHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.confirm.Confirm(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items must be a non-empty array with product_id and positive quantity_bao"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "an item references a product that does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
