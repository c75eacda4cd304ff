package entity

import "github.com/shopspring/decimal"

// DerivedLine is a LineItem augmented with its tax breakdown.
// Exactly one of the IGST / CGST+SGST pairs is non-zero for a taxed line;
// heading rows are all zero and keep SerialNo == 0.
type DerivedLine struct {
	LineItem
	SerialNo     int // 1-based over non-heading rows, in list order
	TaxableValue decimal.Decimal
	TaxAmount    decimal.Decimal
	CGST         decimal.Decimal
	SGST         decimal.Decimal
	IGST         decimal.Decimal
	LineTotal    decimal.Decimal
}

// DerivedInvoice is the fully recomputed view of a session. It is never
// persisted and never patched incrementally; every source edit rebuilds it.
type DerivedInvoice struct {
	Format       InvoiceFormat
	IsIntraState bool

	Items []DerivedLine

	TotalTaxableValue decimal.Decimal
	TotalCGST         decimal.Decimal
	TotalSGST         decimal.Decimal
	TotalIGST         decimal.Decimal
	TotalTax          decimal.Decimal
	SubtotalWithTax   decimal.Decimal // taxable + tax, before discount

	Discount           decimal.Decimal
	RawGrandTotal      decimal.Decimal // taxable − discount + tax, unrounded, may be negative
	GrandTotal         decimal.Decimal // RawGrandTotal rounded to the nearest rupee
	RoundingAdjustment decimal.Decimal // GrandTotal − RawGrandTotal, signed

	// AmountInWords is the grand total in the Indian numbering system
	// ("Twelve Lakh … Only"). Empty when the words converter overflowed.
	AmountInWords string
}
