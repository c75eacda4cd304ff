package gst

import (
	"errors"
	"strconv"
	"strings"
)

// ErrAmountOverflow is returned when the amount does not fit the nine-digit
// Indian grouping (i.e. ≥ ₹1,00,00,00,000). Callers treat it as a formatting
// failure and leave the words line blank; the numeric total is unaffected.
var ErrAmountOverflow = errors.New("gst: amount exceeds 99,99,99,999 and cannot be written in words")

var onesWords = [20]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [10]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// twoDigitWords spells 0–99; values under 20 come straight from the
// ones/teens table rather than a tens+ones combination.
func twoDigitWords(n int) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}

// AmountInWords renders a whole-rupee amount in the Indian numbering system:
// "Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven Only".
//
// The decimal representation is zero-padded to nine digits and partitioned
// from the left into fixed groups: crore(2), lakh(2), thousand(2),
// hundred(1), units(2). Each non-zero group gets its place-value word; the
// units group is prefixed with "and" when any higher group was non-zero.
// Fractional paise are not represented: the grand total is already rounded
// to whole rupees before this step. Negative amounts (a discount larger than
// the subtotal) come back prefixed with "Minus".
func AmountInWords(amount int64) (string, error) {
	if amount == 0 {
		return "Zero Only", nil
	}
	prefix := ""
	if amount < 0 {
		prefix = "Minus "
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	if len(s) > 9 {
		return "", ErrAmountOverflow
	}
	s = strings.Repeat("0", 9-len(s)) + s

	group := func(from, to int) int {
		n, _ := strconv.Atoi(s[from:to])
		return n
	}
	crore := group(0, 2)
	lakh := group(2, 4)
	thousand := group(4, 6)
	hundred := group(6, 7)
	units := group(7, 9)

	var parts []string
	if crore > 0 {
		parts = append(parts, twoDigitWords(crore)+" Crore")
	}
	if lakh > 0 {
		parts = append(parts, twoDigitWords(lakh)+" Lakh")
	}
	if thousand > 0 {
		parts = append(parts, twoDigitWords(thousand)+" Thousand")
	}
	if hundred > 0 {
		parts = append(parts, onesWords[hundred]+" Hundred")
	}
	if units > 0 {
		w := twoDigitWords(units)
		if len(parts) > 0 {
			w = "and " + w
		}
		parts = append(parts, w)
	}
	return prefix + strings.Join(parts, " ") + " Only", nil
}
