package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bichtuyen/kho-duong-api/internal/application/catalog"
	"github.com/bichtuyen/kho-duong-api/internal/application/inventory"
	appocr "github.com/bichtuyen/kho-duong-api/internal/application/ocr"
	"github.com/bichtuyen/kho-duong-api/internal/infrastructure/ocrengine"
	infrapdf "github.com/bichtuyen/kho-duong-api/internal/infrastructure/pdf"
	"github.com/bichtuyen/kho-duong-api/internal/infrastructure/postgres"
	httpRouter "github.com/bichtuyen/kho-duong-api/internal/interfaces/http"
	"github.com/bichtuyen/kho-duong-api/pkg/config"
	"github.com/bichtuyen/kho-duong-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(productRepo, movementRepo)
	confirmUC := inventory.NewConfirmStockOutUseCase(txRunner, productRepo)
	reportGen := infrapdf.NewMarotoStockReport(cfg.App.WarehouseName)
	balanceUC := inventory.NewStockBalanceUseCase(productRepo, movementRepo, reportGen)

	extractor := ocrengine.NewTesseractExtractor(cfg.OCR.Languages)
	previewUC := appocr.NewPreviewUseCase(extractor, productRepo)

	// Default catalog: inserted once when the products table is empty.
	// Production databases are seeded by hand, so skip there.
	if cfg.App.Env != "production" {
		seeded, err := productUC.SeedIfEmpty()
		if err != nil {
			log.Fatal().Err(err).Msg("seed default catalog")
		}
		if seeded > 0 {
			log.Info().Int("products", seeded).Msg("inserted default catalog")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 << 20, // receipt photos
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		ConfirmStockOut:  confirmUC,
		StockBalance:     balanceUC,
		Preview:          previewUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
