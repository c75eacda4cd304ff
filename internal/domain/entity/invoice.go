package entity

import "github.com/shopspring/decimal"

// Invoice document formats. A Bill of Supply is issued by composition-scheme
// taxpayers and always shows the CGST/SGST split, regardless of the buyer's
// state; a Tax Invoice switches to IGST for inter-state supplies.
type InvoiceFormat string

const (
	FormatTaxInvoice   InvoiceFormat = "TAX_INVOICE"
	FormatBillOfSupply InvoiceFormat = "BILL_OF_SUPPLY"
)

// BankDetails holds the settlement details printed on the Bill of Supply
// footer so the buyer can pay directly.
type BankDetails struct {
	PayeeID       string // UPI id
	AccountName   string
	BankName      string
	AccountNumber string
	IFSC          string
}

// Party is one side of the transaction (seller or buyer).
// Mobile, PAN, TaxpayerType and Bank only appear on the bilingual format.
type Party struct {
	Name         string
	GSTIN        string
	Address      string
	State        string
	Mobile       string
	PAN          string
	TaxpayerType string
	Bank         *BankDetails
}

// Meta carries the invoice header fields.
type Meta struct {
	Number         string
	Date           string // yyyy-mm-dd as entered on the form
	RefOrderNumber string
	LetterNumber   string
}

// LineItem is one editable row of the invoice. A heading row is a pure
// section label: it carries no quantity, rate or tax and never contributes
// to any monetary aggregate.
type LineItem struct {
	ID          string
	IsHeading   bool
	Description string
	HSN         string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	GSTRate     decimal.Decimal // percent: one of 0, 5, 12, 18, 28
}

// InvoiceSession is the whole editing session: everything the form holds.
// It is transient: the client sends it in full on every recalculation and
// nothing is persisted server-side.
type InvoiceSession struct {
	Format   InvoiceFormat
	Seller   Party
	Buyer    Party
	Meta     Meta
	Items    []LineItem
	Discount decimal.Decimal // subtracted before rounding; 0 when absent
}
