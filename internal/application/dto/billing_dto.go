package dto

import "github.com/shopspring/decimal"

// BankDetailsDTO settlement details shown on the Bill of Supply footer.
type BankDetailsDTO struct {
	PayeeID       string `json:"payee_id,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
}

// PartyDTO seller or buyer block of the form.
type PartyDTO struct {
	Name         string          `json:"name"`
	GSTIN        string          `json:"gstin"`
	Address      string          `json:"address"`
	State        string          `json:"state"`
	Mobile       string          `json:"mobile,omitempty"`
	PAN          string          `json:"pan,omitempty"`
	TaxpayerType string          `json:"taxpayer_type,omitempty"`
	Bank         *BankDetailsDTO `json:"bank,omitempty"`
}

// MetaDTO invoice header fields.
type MetaDTO struct {
	InvoiceNo      string `json:"invoice_no"`
	Date           string `json:"date"`
	RefOrderNumber string `json:"ref_order_no,omitempty"`
	LetterNumber   string `json:"letter_no,omitempty"`
}

// LineItemRequest one editable row. Qty, Rate and GSTRate are FlexNumbers:
// whatever the form holds goes on the wire and is parse-or-zeroed server
// side. ID is optional; rows arriving without one are assigned a UUID so the
// client can diff the echoed list.
type LineItemRequest struct {
	ID          string     `json:"id,omitempty"`
	IsHeading   bool       `json:"is_heading,omitempty"`
	Description string     `json:"description"`
	HSN         string     `json:"hsn,omitempty"`
	Qty         FlexNumber `json:"qty"`
	Rate        FlexNumber `json:"rate"`
	GSTRate     FlexNumber `json:"gst_rate"`
}

// InvoiceRequest is the whole editing session, sent in full on every
// recalculation. Format defaults to "tax_invoice"; "bill_of_supply" selects
// the composition-scheme variant (always CGST/SGST, discount line printed).
type InvoiceRequest struct {
	Format   string            `json:"format,omitempty"`
	Seller   PartyDTO          `json:"seller"`
	Buyer    PartyDTO          `json:"buyer"`
	Meta     MetaDTO           `json:"meta"`
	Items    []LineItemRequest `json:"items"`
	Discount FlexNumber        `json:"discount,omitempty"`
}

// DerivedLineResponse a source row augmented with its tax breakdown.
// SerialNo is 0 for heading rows; numbering counts taxable rows only.
type DerivedLineResponse struct {
	ID           string          `json:"id"`
	SerialNo     int             `json:"serial_no,omitempty"`
	IsHeading    bool            `json:"is_heading,omitempty"`
	Description  string          `json:"description"`
	HSN          string          `json:"hsn,omitempty"`
	Qty          decimal.Decimal `json:"qty"`
	Rate         decimal.Decimal `json:"rate"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// DerivedInvoiceResponse the recomputed invoice summary.
type DerivedInvoiceResponse struct {
	Format             string                `json:"format"`
	IsIntraState       bool                  `json:"is_intra_state"`
	Items              []DerivedLineResponse `json:"items"`
	TotalTaxableValue  decimal.Decimal       `json:"total_taxable_value"`
	TotalCGST          decimal.Decimal       `json:"total_cgst"`
	TotalSGST          decimal.Decimal       `json:"total_sgst"`
	TotalIGST          decimal.Decimal       `json:"total_igst"`
	TotalTax           decimal.Decimal       `json:"total_tax"`
	SubtotalWithTax    decimal.Decimal       `json:"subtotal_with_tax"`
	Discount           decimal.Decimal       `json:"discount"`
	RawGrandTotal      decimal.Decimal       `json:"raw_grand_total"`
	GrandTotal         decimal.Decimal       `json:"grand_total"`
	RoundingAdjustment decimal.Decimal       `json:"rounding_adjustment"`
	AmountInWords      string                `json:"amount_in_words,omitempty"`
}

// TransliterationRequest a single just-typed ASCII word. Seq is an opaque
// client edit counter echoed back unchanged so the caller can discard
// replies that arrive after further typing.
type TransliterationRequest struct {
	Word string `json:"word"`
	Seq  int64  `json:"seq,omitempty"`
}

// TransliterationResponse best-effort Hindi replacement. On any lookup
// failure Output is the input word plus a trailing space (the form inserts
// it as-is and typing continues).
type TransliterationResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Seq    int64  `json:"seq,omitempty"`
}
