package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
	infrapdf "github.com/gstbillpro/gst-billing-api/internal/infrastructure/pdf"
	"github.com/gstbillpro/gst-billing-api/internal/infrastructure/transliteration"
	httpRouter "github.com/gstbillpro/gst-billing-api/internal/interfaces/http"
	"github.com/gstbillpro/gst-billing-api/pkg/config"
	"github.com/gstbillpro/gst-billing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	computeUC := billing.NewComputeInvoiceUseCase()

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.PDF.HindiFontPath)
	pdfUC := billing.NewPDFUseCase(computeUC, pdfGenerator)
	if cfg.PDF.HindiFontPath == "" {
		log.Warn().Msg("PDF_HINDI_FONT_PATH not set; bilingual invoices will print English labels")
	}

	translitSvc := transliteration.NewGoogleInputToolsService(
		cfg.Translit.BaseURL,
		cfg.Translit.Language,
		time.Duration(cfg.Translit.TimeoutSeconds)*time.Second,
	)
	translitUC := billing.NewTransliterateUseCase(translitSvc, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GST Billing Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ComputeUC:    computeUC,
		PDFUC:        pdfUC,
		TransliterUC: translitUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
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
