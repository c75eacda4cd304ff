package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
)

// TransliterateHandler serves the Hinglish input helper. The endpoint never
// fails a lookup: the use case substitutes the typed word on any error, so a
// flaky upstream degrades to plain English input instead of breaking typing.
type TransliterateHandler struct {
	uc *billing.TransliterateUseCase
}

// NewTransliterateHandler builds the handler.
func NewTransliterateHandler(uc *billing.TransliterateUseCase) *TransliterateHandler {
	return &TransliterateHandler{uc: uc}
}

// Transliterate resolves one just-typed word.
// POST /api/transliterate
func (h *TransliterateHandler) Transliterate(c *fiber.Ctx) error {
	var in dto.TransliterationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	return c.JSON(h.uc.Transliterate(c.Context(), in))
}
