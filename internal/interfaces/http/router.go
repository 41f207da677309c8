package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bichtuyen/kho-duong-api/internal/application/catalog"
	"github.com/bichtuyen/kho-duong-api/internal/application/inventory"
	"github.com/bichtuyen/kho-duong-api/internal/application/ocr"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC        *catalog.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ConfirmStockOut  *inventory.ConfirmStockOutUseCase
	StockBalance     *inventory.StockBalanceUseCase
	Preview          *ocr.PreviewUseCase
}

// Router registers the API routes. Paths mirror the warehouse's existing
// clients: /products, /inventory/*, /ocr/*.
func Router(app *fiber.App, deps RouterDeps) {
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Post("/batch", productHandler.CreateBatch)

	inv := app.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.StockBalance)
	inv.Post("/import", inventoryHandler.Import)
	inv.Post("/export", inventoryHandler.Export)
	inv.Get("/history", inventoryHandler.History)
	inv.Get("/stock", inventoryHandler.Stock)
	inv.Get("/stock/pdf", inventoryHandler.StockPDF)

	ocrGroup := app.Group("/ocr")
	ocrHandler := NewOCRHandler(deps.Preview, deps.ConfirmStockOut)
	ocrGroup.Post("/preview", ocrHandler.Preview)
	ocrGroup.Post("/confirm", ocrHandler.Confirm)
}
