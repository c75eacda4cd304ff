package billing

import (
	"context"

	"github.com/gstbillpro/gst-billing-api/internal/domain/entity"
)

// InvoicePDFGenerator renders the print-ready document for a computed
// invoice. lang selects the label set ("en" or "hi").
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, session *entity.InvoiceSession, derived *entity.DerivedInvoice, lang string) ([]byte, error)
}

// Transliterator converts a plain-ASCII word into its Hindi spelling,
// best effort. Implementations must not retry; a failed or empty lookup is
// reported as an error and the caller falls back to the original word.
type Transliterator interface {
	Transliterate(ctx context.Context, word string) (string, error)
}
