// Package pdf renders the print-ready invoice document.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TAX INVOICE / BILL OF SUPPLY  (Original for Recipient)     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILLED BY: name / address / state / GSTIN / PAN / mobile   │
//	│  BILLED TO: name / address / state / GSTIN                  │
//	│  Invoice No | Date | Place of Supply | Ref / Letter No      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Description | HSN | Qty | Rate | Taxable |      │
//	│         CGST+SGST or IGST | Total                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: taxable / tax split / discount / round off / TOTAL │
//	│  Amount in words ─ Bank details ─ Terms ─ Signatory         │
//	└─────────────────────────────────────────────────────────────┘
//
// The label set follows the lang toggle (en/hi). Hindi output needs a
// Devanagari-capable TTF registered via PDFConfig.HindiFontPath; without
// one the generator silently renders the English labels instead of tofu.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	entities "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
	"github.com/gstbillpro/gst-billing-api/internal/domain/entity"
	"github.com/gstbillpro/gst-billing-api/pkg/i18n"
)

// Compile-time check that the generator implements the port.
var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorInk  = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const hindiFontFamily = "devanagari"

// MarotoPDFGenerator implements billing.InvoicePDFGenerator with Maroto v2.
type MarotoPDFGenerator struct {
	hindiFontPath string
}

// NewMarotoPDFGenerator builds the generator. hindiFontPath may be empty.
func NewMarotoPDFGenerator(hindiFontPath string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{hindiFontPath: hindiFontPath}
}

// GenerateInvoicePDF renders the document and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	session *entity.InvoiceSession,
	derived *entity.DerivedInvoice,
	lang string,
) ([]byte, error) {
	if lang == i18n.LangHindi && g.hindiFontPath == "" {
		lang = i18n.LangEnglish
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle(i18n.Label(i18n.LangEnglish, formatKey(session.Format)), true).
		WithAuthor(session.Seller.Name, true)

	if lang == i18n.LangHindi {
		builder = builder.
			WithCustomFonts([]*entities.CustomFont{
				{Family: hindiFontFamily, Style: fontstyle.Normal, File: g.hindiFontPath},
				{Family: hindiFontFamily, Style: fontstyle.Bold, File: g.hindiFontPath},
			}).
			WithDefaultFont(&props.Font{Family: hindiFontFamily, Size: 9})
	} else {
		builder = builder.WithDefaultFont(&props.Font{Family: "helvetica", Size: 9})
	}

	m := maroto.New(builder.Build())
	r := &renderer{session: session, derived: derived, lang: lang}

	m.AddRows(r.headerRows()...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.5}))
	m.AddRows(r.partiesRow())
	m.AddRows(r.metaRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.3}))

	m.AddRows(r.tableHeaderRow())
	for _, itemRow := range r.tableRows() {
		m.AddRows(itemRow)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.3}))
	m.AddRows(r.totalsRows()...)
	m.AddRows(r.wordsRow())
	if session.Seller.Bank != nil {
		m.AddRows(r.bankRows()...)
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(r.footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

type renderer struct {
	session *entity.InvoiceSession
	derived *entity.DerivedInvoice
	lang    string
}

func (r *renderer) label(key string) string {
	return i18n.Label(r.lang, key)
}

func (r *renderer) money(d decimal.Decimal) string {
	return i18n.FormatAmount(d, r.lang)
}

func formatKey(f entity.InvoiceFormat) string {
	if f == entity.FormatBillOfSupply {
		return "bill_of_supply"
	}
	return "tax_invoice"
}

func (r *renderer) headerRows() []core.Row {
	rows := []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New(r.label(formatKey(r.session.Format)), props.Text{
				Style: fontstyle.Bold, Size: 15, Align: align.Center, Color: colorInk, Top: 1,
			}),
			text.New(r.label("original_for_recipient"), props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 10,
			}),
		)),
	}
	if r.session.Format == entity.FormatBillOfSupply {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(r.label("composition_notice"), props.Text{
				Size: 7.5, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}

// partiesRow: seller on the left, buyer on the right.
func (r *renderer) partiesRow() core.Row {
	return row.New(34).Add(
		r.partyCol(r.label("billed_by"), r.session.Seller),
		r.partyCol(r.label("billed_to"), r.session.Buyer),
	)
}

func (r *renderer) partyCol(title string, p entity.Party) core.Col {
	c := col.New(6).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
		}),
		text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		text.New(p.Address, props.Text{Size: 8, Top: 11, Color: colorGray}),
		text.New(r.label("state")+": "+p.State, props.Text{Size: 8, Top: 19}),
		text.New(r.label("gstin")+": "+nonEmpty(p.GSTIN, "—"), props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 24,
		}),
	)
	extras := partyExtras(r, p)
	if extras != "" {
		c.Add(text.New(extras, props.Text{Size: 8, Top: 29, Color: colorGray}))
	}
	return c
}

func partyExtras(r *renderer, p entity.Party) string {
	out := ""
	if p.PAN != "" {
		out += r.label("pan") + ": " + p.PAN
	}
	if p.Mobile != "" {
		if out != "" {
			out += "   |   "
		}
		out += r.label("mobile") + ": " + p.Mobile
	}
	if p.TaxpayerType != "" {
		if out != "" {
			out += "   |   "
		}
		out += r.label("taxpayer_type") + ": " + p.TaxpayerType
	}
	return out
}

// metaRow: invoice number, date, place of supply and the optional reference
// fields of the bilingual format.
func (r *renderer) metaRow() core.Row {
	meta := r.session.Meta
	cells := []core.Col{
		col.New(3).Add(text.New(r.label("invoice_no")+": "+meta.Number, props.Text{Size: 8, Top: 2})),
		col.New(3).Add(text.New(r.label("date")+": "+meta.Date, props.Text{Size: 8, Top: 2})),
		col.New(3).Add(text.New(r.label("place_of_supply")+": "+r.session.Buyer.State, props.Text{Size: 8, Top: 2})),
	}
	refs := ""
	if meta.RefOrderNumber != "" {
		refs = r.label("ref_order_no") + ": " + meta.RefOrderNumber
	}
	if meta.LetterNumber != "" {
		if refs != "" {
			refs += "  "
		}
		refs += r.label("letter_no") + ": " + meta.LetterNumber
	}
	cells = append(cells, col.New(3).Add(text.New(refs, props.Text{Size: 8, Top: 2})))
	return row.New(7).Add(cells...)
}

// Table column widths over maroto's 12-column grid. The tax columns depend
// on the jurisdiction split, mirroring the on-screen table.
func (r *renderer) tableHeaderRow() core.Row {
	h := func(key string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(r.label(key), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorInk, Top: 2,
		}))
	}
	if r.derived.IsIntraState {
		return row.New(8).Add(
			h("serial_no", 1, align.Center),
			h("description", 3, align.Left),
			h("hsn_sac", 1, align.Center),
			h("qty", 1, align.Right),
			h("rate", 1, align.Right),
			h("taxable_value", 2, align.Right),
			h("cgst", 1, align.Right),
			h("sgst", 1, align.Right),
			h("line_total", 1, align.Right),
		)
	}
	return row.New(8).Add(
		h("serial_no", 1, align.Center),
		h("description", 4, align.Left),
		h("hsn_sac", 1, align.Center),
		h("qty", 1, align.Right),
		h("rate", 1, align.Right),
		h("taxable_value", 2, align.Right),
		h("igst", 1, align.Right),
		h("line_total", 1, align.Right),
	)
}

func (r *renderer) tableRows() []core.Row {
	result := make([]core.Row, 0, len(r.derived.Items))
	for _, it := range r.derived.Items {
		if it.IsHeading {
			// A heading row is a full-width section label.
			result = append(result, row.New(7).Add(col.New(12).Add(
				text.New(it.Description, props.Text{
					Style: fontstyle.Bold, Size: 8.5, Top: 1.5, Color: colorInk,
				}),
			)))
			continue
		}

		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
		}
		if r.derived.IsIntraState {
			result = append(result, row.New(7).Add(
				cell(fmt.Sprintf("%d", it.SerialNo), 1, align.Center),
				cell(it.Description, 3, align.Left),
				cell(it.HSN, 1, align.Center),
				cell(it.Quantity.String(), 1, align.Right),
				cell(r.money(it.UnitPrice), 1, align.Right),
				cell(r.money(it.TaxableValue), 2, align.Right),
				cell(r.money(it.CGST), 1, align.Right),
				cell(r.money(it.SGST), 1, align.Right),
				cell(r.money(it.LineTotal), 1, align.Right),
			))
			continue
		}
		result = append(result, row.New(7).Add(
			cell(fmt.Sprintf("%d", it.SerialNo), 1, align.Center),
			cell(it.Description, 4, align.Left),
			cell(it.HSN, 1, align.Center),
			cell(it.Quantity.String(), 1, align.Right),
			cell(r.money(it.UnitPrice), 1, align.Right),
			cell(r.money(it.TaxableValue), 2, align.Right),
			cell(r.money(it.IGST), 1, align.Right),
			cell(r.money(it.LineTotal), 1, align.Right),
		))
	}
	return result
}

// totalsRows: right-aligned summary block. The round-off line reconciles the
// printed grand total with the unrounded sum.
func (r *renderer) totalsRows() []core.Row {
	d := r.derived
	type entryT struct {
		key   string
		value decimal.Decimal
		bold  bool
	}
	entries := []entryT{{key: "total_taxable", value: d.TotalTaxableValue}}
	if d.IsIntraState {
		entries = append(entries,
			entryT{key: "total_cgst", value: d.TotalCGST},
			entryT{key: "total_sgst", value: d.TotalSGST})
	} else {
		entries = append(entries, entryT{key: "total_igst", value: d.TotalIGST})
	}
	if !d.Discount.IsZero() {
		entries = append(entries, entryT{key: "discount", value: d.Discount.Neg()})
	}
	entries = append(entries,
		entryT{key: "round_off", value: d.RoundingAdjustment},
		entryT{key: "grand_total", value: d.GrandTotal, bold: true})

	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		style := fontstyle.Normal
		size := 9.0
		if e.bold {
			style = fontstyle.Bold
			size = 11
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(r.label(e.key), props.Text{
				Style: fontstyle.Bold, Size: size - 1, Align: align.Right, Top: 1,
			})),
			// "Rs." rather than "₹": the rupee sign is outside the core
			// PDF fonts' cp1252 repertoire.
			col.New(3).Add(text.New("Rs. "+r.money(e.value), props.Text{
				Style: style, Size: size, Align: align.Right, Top: 1,
			})),
		))
	}
	return rows
}

func (r *renderer) wordsRow() core.Row {
	words := r.derived.AmountInWords
	if words == "" {
		return row.New(2)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(r.label("amount_in_words")+": "+words, props.Text{
			Style: fontstyle.Bold, Size: 8.5, Top: 2,
		}),
	))
}

func (r *renderer) bankRows() []core.Row {
	b := r.session.Seller.Bank
	detail := func(key, val string) string {
		if val == "" {
			return ""
		}
		return r.label(key) + ": " + val + "   "
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(r.label("bank_details"), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorInk, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				detail("bank_name", b.BankName)+
					detail("account_name", b.AccountName)+
					detail("account_number", b.AccountNumber)+
					detail("ifsc", b.IFSC)+
					detail("payee_id", b.PayeeID),
				props.Text{Size: 8, Color: colorGray, Top: 1},
			),
		)),
	}
}

func (r *renderer) footerRows() []core.Row {
	return []core.Row{
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(22).Add(
			col.New(7).Add(
				text.New(r.label("terms")+":", props.Text{
					Style: fontstyle.Bold, Size: 7.5, Top: 2,
				}),
				text.New("1. "+r.label("term_1"), props.Text{Size: 7, Top: 7, Color: colorGray}),
				text.New("2. "+r.label("term_2"), props.Text{Size: 7, Top: 11, Color: colorGray}),
				text.New("3. "+r.label("term_3"), props.Text{Size: 7, Top: 15, Color: colorGray}),
			),
			col.New(5).Add(
				text.New(r.label("authorized_signatory"), props.Text{
					Style: fontstyle.Bold, Size: 8.5, Align: align.Center, Top: 14,
				}),
				text.New(r.label("for")+" "+r.session.Seller.Name, props.Text{
					Size: 7.5, Align: align.Center, Top: 19, Color: colorGray,
				}),
			),
		),
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
