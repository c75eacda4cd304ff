package billing

import (
	"context"
	"fmt"

	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
	"github.com/gstbillpro/gst-billing-api/internal/domain"
	"github.com/gstbillpro/gst-billing-api/internal/domain/gst"
)

// PDFUseCase renders the print-ready document for a session. The session is
// recomputed from scratch first; the client never sends derived values, so
// the printed totals always reconcile with the engine.
type PDFUseCase struct {
	computeUC *ComputeInvoiceUseCase
	generator InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(computeUC *ComputeInvoiceUseCase, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{computeUC: computeUC, generator: generator}
}

// RenderInvoicePDF recomputes the session and hands it to the generator.
//
// Returns:
//   - (pdfBytes, filename, nil)  on success.
//   - domain.ErrUnknownFormat    for an unrecognised format string.
//   - a wrapped domain.ErrPDFGeneration for renderer failures.
func (uc *PDFUseCase) RenderInvoicePDF(ctx context.Context, in dto.InvoiceRequest, lang string) (pdfBytes []byte, filename string, err error) {
	session, err := uc.computeUC.ToSession(in)
	if err != nil {
		return nil, "", err
	}
	derived := gst.Compute(session)
	if words, werr := gst.AmountInWords(derived.GrandTotal.IntPart()); werr == nil {
		derived.AmountInWords = words
	}

	if lang != "hi" {
		lang = "en"
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, session, derived, lang)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrPDFGeneration, err)
	}

	number := session.Meta.Number
	if number == "" {
		number = "invoice"
	}
	return pdfBytes, fmt.Sprintf("%s.pdf", number), nil
}
