package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bichtuyen/kho-duong-api/internal/application/dto"
	"github.com/bichtuyen/kho-duong-api/internal/application/inventory"
	"github.com/bichtuyen/kho-duong-api/internal/domain"
	"github.com/bichtuyen/kho-duong-api/internal/domain/entity"
)

// InventoryHandler handles movement registration, history and stock reports.
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	balance  *inventory.StockBalanceUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, balance *inventory.StockBalanceUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, balance: balance}
}

// Import handles POST /inventory/import (nhập kho).
func (h *InventoryHandler) Import(c *fiber.Ctx) error {
	return h.registerMovement(c, entity.MovementTypeIn)
}

// Export handles POST /inventory/export (xuất kho).
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	return h.registerMovement(c, entity.MovementTypeOut)
}

func (h *InventoryHandler) registerMovement(c *fiber.Ctx, movementType string) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.register.Register(movementType, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id and a positive quantity_bao are required"})
		case domain.ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "product does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History handles GET /inventory/history.
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	out, err := h.balance.History(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stock handles GET /inventory/stock. Rows with a non-positive kg_per_bao
// carry error_code INVALID_CONVERSION_FACTOR; the rest of the report is
// unaffected.
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	out, err := h.balance.ComputeStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockPDF handles GET /inventory/stock/pdf.
func (h *InventoryHandler) StockPDF(c *fiber.Ctx) error {
	doc, err := h.balance.StockReportPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ton-kho.pdf"`)
	return c.Send(doc)
}
