package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
	"github.com/gstbillpro/gst-billing-api/internal/domain"
)

// InvoiceHandler serves the invoice computation and print endpoints. The
// service is stateless: every request carries the full editing session and
// the derived invoice is rebuilt from scratch each time.
type InvoiceHandler struct {
	computeUC *billing.ComputeInvoiceUseCase
	pdfUC     *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(computeUC *billing.ComputeInvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{computeUC: computeUC, pdfUC: pdfUC}
}

// Compute recalculates the derived invoice for the submitted session.
// POST /api/invoices/compute
func (h *InvoiceHandler) Compute(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	derived, err := h.computeUC.Compute(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FORMAT", Message: "format must be tax_invoice or bill_of_supply"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(derived)
}

// Sample returns the example session the form loads with.
// GET /api/invoices/sample
func (h *InvoiceHandler) Sample(c *fiber.Ctx) error {
	return c.JSON(billing.SampleSession())
}

// RenderPDF computes the session and streams the print-ready document.
// POST /api/invoices/pdf?lang=en|hi
func (h *InvoiceHandler) RenderPDF(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	lang := c.Query("lang", "en")

	pdfBytes, filename, err := h.pdfUC.RenderInvoicePDF(c.Context(), in, lang)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FORMAT", Message: "format must be tax_invoice or bill_of_supply"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdfBytes)
}
