// Package gst implements the invoice calculation engine: jurisdiction
// classification, per-line tax breakdown and invoice-level aggregation under
// the Indian GST regime.
//
// Everything here is pure. The engine takes the whole editing session and
// rebuilds the derived invoice from scratch; it keeps no state between calls
// and never returns an error: malformed numeric input has already been
// coerced to zero at the DTO boundary (see ParseOrZero).
package gst

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gstbillpro/gst-billing-api/internal/domain/entity"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// IsIntraState reports whether the CGST/SGST split applies.
//
// A Bill of Supply always splits CGST/SGST; composition-scheme sellers
// invoice that way no matter where the buyer sits. For a Tax Invoice the
// seller and buyer states are compared as trimmed strings; two empty states
// compare equal and default to intra-state.
func IsIntraState(s *entity.InvoiceSession) bool {
	if s.Format == entity.FormatBillOfSupply {
		return true
	}
	return strings.TrimSpace(s.Seller.State) == strings.TrimSpace(s.Buyer.State)
}

// ComputeLine derives the tax breakdown for a single line item.
// Heading rows come back all-zero; they are labels, not supplies.
func ComputeLine(item entity.LineItem, intraState bool) entity.DerivedLine {
	line := entity.DerivedLine{LineItem: item}
	if item.IsHeading {
		return line
	}

	line.TaxableValue = item.Quantity.Mul(item.UnitPrice)
	line.TaxAmount = line.TaxableValue.Mul(item.GSTRate).Div(hundred)
	if intraState {
		half := line.TaxAmount.Div(two)
		line.CGST = half
		line.SGST = half
	} else {
		line.IGST = line.TaxAmount
	}
	line.LineTotal = line.TaxableValue.Add(line.TaxAmount)
	return line
}

// Compute rebuilds the derived invoice for a session.
//
// Per-line values stay unrounded so aggregation does not compound rounding
// error; display formatting to two decimals happens at the presentation
// layer. Only the grand total is rounded (to the nearest rupee), and the
// signed difference is reported as the round-off line. A discount larger
// than the subtotal is not clamped: the negative total is surfaced as-is.
func Compute(s *entity.InvoiceSession) *entity.DerivedInvoice {
	intra := IsIntraState(s)

	d := &entity.DerivedInvoice{
		Format:       s.Format,
		IsIntraState: intra,
		Items:        make([]entity.DerivedLine, 0, len(s.Items)),
		Discount:     s.Discount,
	}

	serial := 0
	for _, item := range s.Items {
		line := ComputeLine(item, intra)
		if !item.IsHeading {
			serial++
			line.SerialNo = serial
		}
		d.Items = append(d.Items, line)

		d.TotalTaxableValue = d.TotalTaxableValue.Add(line.TaxableValue)
		d.TotalCGST = d.TotalCGST.Add(line.CGST)
		d.TotalSGST = d.TotalSGST.Add(line.SGST)
		d.TotalIGST = d.TotalIGST.Add(line.IGST)
	}

	d.TotalTax = d.TotalCGST.Add(d.TotalSGST).Add(d.TotalIGST)
	d.SubtotalWithTax = d.TotalTaxableValue.Add(d.TotalTax)
	d.RawGrandTotal = d.TotalTaxableValue.Sub(d.Discount).Add(d.TotalTax)
	d.GrandTotal = d.RawGrandTotal.Round(0)
	d.RoundingAdjustment = d.GrandTotal.Sub(d.RawGrandTotal)
	return d
}
