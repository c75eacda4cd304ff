package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
	"github.com/gstbillpro/gst-billing-api/internal/domain"
	"github.com/gstbillpro/gst-billing-api/internal/domain/entity"
	"github.com/gstbillpro/gst-billing-api/internal/domain/gst"
)

// ComputeInvoiceUseCase turns an editing-session request into the derived
// invoice. It owns the stringly-typed boundary: FlexNumber fields are
// parse-or-zeroed here, so the engine below it only ever sees decimals.
type ComputeInvoiceUseCase struct{}

// NewComputeInvoiceUseCase builds the use case.
func NewComputeInvoiceUseCase() *ComputeInvoiceUseCase {
	return &ComputeInvoiceUseCase{}
}

// Compute recomputes the whole derived invoice from the submitted session.
// The only rejectable input is an unrecognised format string; every numeric
// field is coerced, never validated, so a half-edited form still computes.
func (uc *ComputeInvoiceUseCase) Compute(ctx context.Context, in dto.InvoiceRequest) (*dto.DerivedInvoiceResponse, error) {
	session, err := uc.ToSession(in)
	if err != nil {
		return nil, err
	}
	derived := gst.Compute(session)

	words, err := gst.AmountInWords(derived.GrandTotal.IntPart())
	if err == nil {
		derived.AmountInWords = words
	}
	// On overflow the words line stays empty; the numeric total is intact.

	return toResponse(derived), nil
}

// ToSession converts the wire DTO into the entity session. Items arriving
// without an id get a UUID so the echoed list stays diffable across edits.
func (uc *ComputeInvoiceUseCase) ToSession(in dto.InvoiceRequest) (*entity.InvoiceSession, error) {
	format, err := parseFormat(in.Format)
	if err != nil {
		return nil, err
	}
	session := &entity.InvoiceSession{
		Format:   format,
		Seller:   toParty(in.Seller),
		Buyer:    toParty(in.Buyer),
		Meta:     toMeta(in.Meta),
		Discount: gst.ParseOrZero(in.Discount.String()),
		Items:    make([]entity.LineItem, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}
		session.Items = append(session.Items, entity.LineItem{
			ID:          id,
			IsHeading:   item.IsHeading,
			Description: item.Description,
			HSN:         item.HSN,
			Quantity:    gst.ParseOrZero(item.Qty.String()),
			UnitPrice:   gst.ParseOrZero(item.Rate.String()),
			GSTRate:     gst.ParseOrZero(item.GSTRate.String()),
		})
	}
	return session, nil
}

func parseFormat(s string) (entity.InvoiceFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "TAX_INVOICE":
		return entity.FormatTaxInvoice, nil
	case "BILL_OF_SUPPLY":
		return entity.FormatBillOfSupply, nil
	default:
		return "", domain.ErrUnknownFormat
	}
}

func toParty(p dto.PartyDTO) entity.Party {
	party := entity.Party{
		Name:         p.Name,
		GSTIN:        strings.ToUpper(strings.TrimSpace(p.GSTIN)),
		Address:      p.Address,
		State:        p.State,
		Mobile:       p.Mobile,
		PAN:          strings.ToUpper(strings.TrimSpace(p.PAN)),
		TaxpayerType: p.TaxpayerType,
	}
	if p.Bank != nil {
		party.Bank = &entity.BankDetails{
			PayeeID:       p.Bank.PayeeID,
			AccountName:   p.Bank.AccountName,
			BankName:      p.Bank.BankName,
			AccountNumber: p.Bank.AccountNumber,
			IFSC:          strings.ToUpper(strings.TrimSpace(p.Bank.IFSC)),
		}
	}
	return party
}

func toMeta(m dto.MetaDTO) entity.Meta {
	return entity.Meta{
		Number:         m.InvoiceNo,
		Date:           m.Date,
		RefOrderNumber: m.RefOrderNumber,
		LetterNumber:   m.LetterNumber,
	}
}

func toResponse(d *entity.DerivedInvoice) *dto.DerivedInvoiceResponse {
	resp := &dto.DerivedInvoiceResponse{
		Format:             string(d.Format),
		IsIntraState:       d.IsIntraState,
		Items:              make([]dto.DerivedLineResponse, 0, len(d.Items)),
		TotalTaxableValue:  d.TotalTaxableValue,
		TotalCGST:          d.TotalCGST,
		TotalSGST:          d.TotalSGST,
		TotalIGST:          d.TotalIGST,
		TotalTax:           d.TotalTax,
		SubtotalWithTax:    d.SubtotalWithTax,
		Discount:           d.Discount,
		RawGrandTotal:      d.RawGrandTotal,
		GrandTotal:         d.GrandTotal,
		RoundingAdjustment: d.RoundingAdjustment,
		AmountInWords:      d.AmountInWords,
	}
	for _, line := range d.Items {
		resp.Items = append(resp.Items, dto.DerivedLineResponse{
			ID:           line.ID,
			SerialNo:     line.SerialNo,
			IsHeading:    line.IsHeading,
			Description:  line.Description,
			HSN:          line.HSN,
			Qty:          line.Quantity,
			Rate:         line.UnitPrice,
			GSTRate:      line.GSTRate,
			TaxableValue: line.TaxableValue,
			CGST:         line.CGST,
			SGST:         line.SGST,
			IGST:         line.IGST,
			TaxAmount:    line.TaxAmount,
			LineTotal:    line.LineTotal,
		})
	}
	return resp
}

// SampleSession returns the example session the form loads with, so a fresh
// client can render something editable immediately.
func SampleSession() dto.InvoiceRequest {
	return dto.InvoiceRequest{
		Format: "tax_invoice",
		Seller: dto.PartyDTO{
			Name:    "Acme Corp Technologies",
			GSTIN:   "27AADCB2230M1Z2",
			Address: "123 Tech Park, Andheri East, Mumbai, 400069",
			State:   "Maharashtra",
		},
		Buyer: dto.PartyDTO{
			Name:    "Globex Corporation",
			GSTIN:   "29ABCDE1234F2Z5",
			Address: "456 Business Road, Koramangala, Bengaluru, 560034",
			State:   "Karnataka",
		},
		Meta: dto.MetaDTO{
			InvoiceNo: "INV-2026-001",
			Date:      time.Now().Format("2006-01-02"),
		},
		Items: []dto.LineItemRequest{
			{
				ID:          uuid.New().String(),
				Description: "Web Development Services",
				HSN:         "998311",
				Qty:         "1",
				Rate:        "50000",
				GSTRate:     "18",
			},
			{
				ID:          uuid.New().String(),
				Description: "Server Hosting (1 Year)",
				HSN:         "998315",
				Qty:         "1",
				Rate:        "15000",
				GSTRate:     "18",
			},
		},
	}
}
