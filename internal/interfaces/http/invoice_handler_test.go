package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
	"github.com/gstbillpro/gst-billing-api/internal/domain/entity"
	apihttp "github.com/gstbillpro/gst-billing-api/internal/interfaces/http"
	"github.com/gstbillpro/gst-billing-api/pkg/logger"
)

type stubPDFGenerator struct {
	out []byte
	err error
}

func (s *stubPDFGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.InvoiceSession, _ *entity.DerivedInvoice, _ string) ([]byte, error) {
	return s.out, s.err
}

type stubTransliterator struct {
	out string
	err error
}

func (s *stubTransliterator) Transliterate(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func newTestApp(t *testing.T, pdfGen billing.InvoicePDFGenerator, translit billing.Transliterator) *fiber.App {
	t.Helper()

	log := logger.New(logger.Config{Env: "test", Level: "disabled"})
	computeUC := billing.NewComputeInvoiceUseCase()

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		ComputeUC:    computeUC,
		PDFUC:        billing.NewPDFUseCase(computeUC, pdfGen),
		TransliterUC: billing.NewTransliterateUseCase(translit, log),
	})
	return app
}

const interStateBody = `{
	"seller": {"name": "Acme Corp", "state": "Maharashtra"},
	"buyer":  {"name": "Globex", "state": "Karnataka"},
	"meta":   {"invoice_no": "INV-001", "date": "2026-08-28"},
	"items":  [{"description": "Consulting", "qty": "1", "rate": "50000", "gst_rate": 18}]
}`

func TestComputeEndpoint(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{out: []byte("%PDF-")}, &stubTransliterator{})

	req := httptest.NewRequest("POST", "/api/invoices/compute", strings.NewReader(interStateBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.DerivedInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.IsIntraState)
	assert.Equal(t, "59000", out.GrandTotal.String())
	assert.Equal(t, "Fifty Nine Thousand Only", out.AmountInWords)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "9000", out.Items[0].IGST.String())
}

func TestComputeEndpoint_MalformedBody(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{}, &stubTransliterator{})

	req := httptest.NewRequest("POST", "/api/invoices/compute", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INVALID_BODY", out.Code)
}

func TestComputeEndpoint_UnknownFormat(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{}, &stubTransliterator{})

	body := `{"format": "proforma", "items": []}`
	req := httptest.NewRequest("POST", "/api/invoices/compute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "UNKNOWN_FORMAT", out.Code)
}

func TestSampleEndpoint(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{}, &stubTransliterator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/invoices/sample", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.InvoiceRequest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Maharashtra", out.Seller.State)
	assert.NotEmpty(t, out.Items)
}

func TestPDFEndpoint(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{out: []byte("%PDF-1.7 fake")}, &stubTransliterator{})

	req := httptest.NewRequest("POST", "/api/invoices/pdf?lang=en", strings.NewReader(interStateBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `"INV-001.pdf"`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), body)
}

func TestPDFEndpoint_GeneratorFailure(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{err: errors.New("font missing")}, &stubTransliterator{})

	req := httptest.NewRequest("POST", "/api/invoices/pdf", strings.NewReader(interStateBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "PDF_GENERATION", out.Code)
}

func TestStatesEndpoint(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{}, &stubTransliterator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/catalogues/states", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out)

	codes := map[string]string{}
	for _, s := range out {
		codes[s.Name] = s.Code
	}
	assert.Equal(t, "27", codes["Maharashtra"])
	assert.Equal(t, "20", codes["Jharkhand"])
}

func TestRatesEndpoint(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{}, &stubTransliterator{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/catalogues/rates", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []int{0, 5, 12, 18, 28}, out)
}

func TestGSTINEndpoint(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{}, &stubTransliterator{})

	t.Run("valid", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/catalogues/gstin/27AAPFU0939F1ZV", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out struct {
			Valid     bool   `json:"valid"`
			StateCode string `json:"state_code"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.True(t, out.Valid)
		assert.Equal(t, "27", out.StateCode)
	})

	t.Run("bad check digit", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/catalogues/gstin/27AAPFU0939F1ZZ", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "validation is advisory, not an error")

		var out struct {
			Valid   bool   `json:"valid"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.False(t, out.Valid)
		assert.NotEmpty(t, out.Message)
	})
}

func TestTransliterateEndpoint(t *testing.T) {
	app := newTestApp(t, &stubPDFGenerator{}, &stubTransliterator{out: "नमस्ते"})

	body := `{"word": "namaste", "seq": 12}`
	req := httptest.NewRequest("POST", "/api/transliterate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.TransliterationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "नमस्ते ", out.Output)
	assert.Equal(t, int64(12), out.Seq)
}
