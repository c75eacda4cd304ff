package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbillpro/gst-billing-api/internal/domain/gst"
)

func TestAmountInWords_Vectors(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "Zero Only"},
		{1, "One Only"},
		{7, "Seven Only"},
		{13, "Thirteen Only"},
		{20, "Twenty Only"},
		{45, "Forty Five Only"},
		{100, "One Hundred Only"},
		{105, "One Hundred and Five Only"},
		{567, "Five Hundred and Sixty Seven Only"},
		{1000, "One Thousand Only"},
		{1001, "One Thousand and One Only"},
		{19000, "Nineteen Thousand Only"},
		{100000, "One Lakh Only"},
		{902, "Nine Hundred and Two Only"},
		{59000, "Fifty Nine Thousand Only"},
		{1234567, "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Only"},
		{10000000, "One Crore Only"},
		{99999999, "Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred and Ninety Nine Only"},
		{999999999, "Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred and Ninety Nine Only"},
	}
	for _, tc := range cases {
		got, err := gst.AmountInWords(tc.amount)
		require.NoError(t, err, "amount %d", tc.amount)
		assert.Equal(t, tc.want, got, "amount %d", tc.amount)
	}
}

func TestAmountInWords_TenDigitsOverflows(t *testing.T) {
	_, err := gst.AmountInWords(1_000_000_000)
	assert.ErrorIs(t, err, gst.ErrAmountOverflow,
		"amounts of ten or more digits must be rejected, not truncated")
}

func TestAmountInWords_MaxSupportedAmount(t *testing.T) {
	got, err := gst.AmountInWords(99_99_99_999)
	require.NoError(t, err)
	assert.Equal(t,
		"Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred and Ninety Nine Only",
		got)
}

// A discount larger than the subtotal can push the grand total negative;
// the words line follows with a "Minus" prefix instead of failing.
func TestAmountInWords_Negative(t *testing.T) {
	got, err := gst.AmountInWords(-382)
	require.NoError(t, err)
	assert.Equal(t, "Minus Three Hundred and Eighty Two Only", got)
}
