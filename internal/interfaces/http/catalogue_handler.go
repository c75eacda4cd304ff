package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
	"github.com/gstbillpro/gst-billing-api/pkg/gst"
)

// CatalogueHandler serves the static reference data the form needs: the
// state dropdown, the GST rate slabs, and advisory GSTIN validation.
type CatalogueHandler struct{}

// NewCatalogueHandler builds the handler.
func NewCatalogueHandler() *CatalogueHandler {
	return &CatalogueHandler{}
}

type stateEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// States lists states/UTs with their GST state codes, in dropdown order.
// GET /api/catalogues/states
func (h *CatalogueHandler) States(c *fiber.Ctx) error {
	out := make([]stateEntry, 0, len(gst.States))
	for _, name := range gst.States {
		out = append(out, stateEntry{Name: name, Code: gst.StateCodes[name]})
	}
	return c.JSON(out)
}

// Rates lists the GST slabs in percent.
// GET /api/catalogues/rates
func (h *CatalogueHandler) Rates(c *fiber.Ctx) error {
	return c.JSON(gst.Rates)
}

type gstinCheck struct {
	GSTIN     string `json:"gstin"`
	Valid     bool   `json:"valid"`
	StateCode string `json:"state_code,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ValidateGSTIN checks format and check digit. Advisory: a bad GSTIN never
// blocks invoice computation, the form just flags the field.
// GET /api/catalogues/gstin/:gstin
func (h *CatalogueHandler) ValidateGSTIN(c *fiber.Ctx) error {
	raw := c.Params("gstin")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "gstin required"})
	}
	result := gstinCheck{GSTIN: raw, StateCode: gst.StateCodeOf(raw)}
	if err := gst.ValidateGSTIN(raw); err != nil {
		result.Message = err.Error()
	} else {
		result.Valid = true
	}
	return c.JSON(result)
}
