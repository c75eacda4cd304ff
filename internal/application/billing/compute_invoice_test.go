package billing_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gst-billing-api/internal/application/billing"
	"github.com/gstbillpro/gst-billing-api/internal/application/dto"
	"github.com/gstbillpro/gst-billing-api/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func baseRequest() dto.InvoiceRequest {
	return dto.InvoiceRequest{
		Seller: dto.PartyDTO{Name: "Acme Corp", State: "Maharashtra"},
		Buyer:  dto.PartyDTO{Name: "Globex", State: "Karnataka"},
		Meta:   dto.MetaDTO{InvoiceNo: "INV-001", Date: "2026-08-28"},
		Items: []dto.LineItemRequest{
			{Description: "Consulting", Qty: "1", Rate: "50000", GSTRate: "18"},
		},
	}
}

func TestCompute_InterStateRequest(t *testing.T) {
	uc := billing.NewComputeInvoiceUseCase()

	resp, err := uc.Compute(context.Background(), baseRequest())

	require.NoError(t, err)
	assert.Equal(t, "TAX_INVOICE", resp.Format)
	assert.False(t, resp.IsIntraState)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].IGST.Equal(dec("9000")))
	assert.True(t, resp.GrandTotal.Equal(dec("59000")))
	assert.Equal(t, "Fifty Nine Thousand Only", resp.AmountInWords)
}

func TestCompute_AssignsItemIDs(t *testing.T) {
	uc := billing.NewComputeInvoiceUseCase()
	in := baseRequest()
	in.Items = append(in.Items, dto.LineItemRequest{ID: "row-2", Description: "Hosting", Qty: "1", Rate: "100", GSTRate: "18"})

	resp, err := uc.Compute(context.Background(), in)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Items[0].ID, "missing ids are generated so the client can diff the list")
	assert.Equal(t, "row-2", resp.Items[1].ID, "supplied ids are preserved")
}

func TestCompute_GarbageNumbersComputeAsZero(t *testing.T) {
	uc := billing.NewComputeInvoiceUseCase()
	in := baseRequest()
	in.Items = []dto.LineItemRequest{
		{Description: "cleared qty", Qty: "", Rate: "100", GSTRate: "18"},
		{Description: "junk rate", Qty: "2", Rate: "abc", GSTRate: "18"},
	}

	resp, err := uc.Compute(context.Background(), in)

	require.NoError(t, err, "malformed numeric input must coerce, never error")
	assert.True(t, resp.TotalTaxableValue.IsZero())
	assert.True(t, resp.GrandTotal.IsZero())
	assert.Equal(t, "Zero Only", resp.AmountInWords)
}

func TestCompute_BillOfSupplyForcesIntraSplit(t *testing.T) {
	uc := billing.NewComputeInvoiceUseCase()
	in := baseRequest()
	in.Format = "bill_of_supply"
	in.Discount = "10.35"
	in.Items = []dto.LineItemRequest{{Description: "Pipes", Qty: "10", Rate: "7", GSTRate: "18"}}

	resp, err := uc.Compute(context.Background(), in)

	require.NoError(t, err)
	assert.True(t, resp.IsIntraState, "bill of supply splits CGST/SGST even across states")
	assert.True(t, resp.Items[0].CGST.Equal(dec("6.3")))
	assert.True(t, resp.RawGrandTotal.Equal(dec("72.25")))
	assert.True(t, resp.GrandTotal.Equal(dec("72")))
}

func TestCompute_UnknownFormatRejected(t *testing.T) {
	uc := billing.NewComputeInvoiceUseCase()
	in := baseRequest()
	in.Format = "proforma"

	_, err := uc.Compute(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestCompute_WordsOverflowLeavesFieldEmpty(t *testing.T) {
	uc := billing.NewComputeInvoiceUseCase()
	in := baseRequest()
	// 10^9 taxable at 0%: grand total has ten digits.
	in.Items = []dto.LineItemRequest{{Description: "mega", Qty: "1", Rate: "1000000000", GSTRate: "0"}}

	resp, err := uc.Compute(context.Background(), in)

	require.NoError(t, err, "words overflow is a formatting failure, not a computation error")
	assert.True(t, resp.GrandTotal.Equal(dec("1000000000")))
	assert.Empty(t, resp.AmountInWords)
}

func TestCompute_EmptySessionIsLegal(t *testing.T) {
	uc := billing.NewComputeInvoiceUseCase()
	in := baseRequest()
	in.Items = nil

	resp, err := uc.Compute(context.Background(), in)

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.GrandTotal.IsZero())
}

func TestFlexNumber_AcceptsStringsNumbersAndNull(t *testing.T) {
	var item dto.LineItemRequest
	raw := `{"description":"x","qty":2,"rate":"15.5","gst_rate":null}`

	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, "2", item.Qty.String())
	assert.Equal(t, "15.5", item.Rate.String())
	assert.Equal(t, "", item.GSTRate.String())
}

func TestSampleSession(t *testing.T) {
	sample := billing.SampleSession()

	assert.Equal(t, "Maharashtra", sample.Seller.State)
	assert.Equal(t, "Karnataka", sample.Buyer.State)
	require.Len(t, sample.Items, 2)

	// The sample must compute cleanly through the engine.
	uc := billing.NewComputeInvoiceUseCase()
	resp, err := uc.Compute(context.Background(), sample)
	require.NoError(t, err)
	assert.True(t, resp.GrandTotal.Equal(dec("76700")), "50000+15000 taxable at 18% inter-state")
}
