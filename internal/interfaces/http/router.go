package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ComputeUC    *billing.ComputeInvoiceUseCase
	PDFUC        *billing.PDFUseCase
	TransliterUC *billing.TransliterateUseCase
}

// Router registers the API routes. Everything is public: the service is a
// stateless calculator with nothing to protect.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.ComputeUC, deps.PDFUC)
	invoices.Post("/compute", invoiceHandler.Compute)
	invoices.Post("/pdf", invoiceHandler.RenderPDF)
	invoices.Get("/sample", invoiceHandler.Sample)

	catalogues := api.Group("/catalogues")
	catalogueHandler := NewCatalogueHandler()
	catalogues.Get("/states", catalogueHandler.States)
	catalogues.Get("/rates", catalogueHandler.Rates)
	catalogues.Get("/gstin/:gstin", catalogueHandler.ValidateGSTIN)

	transliterateHandler := NewTransliterateHandler(deps.TransliterUC)
	api.Post("/transliterate", transliterateHandler.Transliterate)
}
