package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseOrZero converts a raw form field into a decimal, treating anything
// unparseable (empty string, "abc", a half-typed "1.") as zero. This is the single place where stringly-typed input enters the
// engine: a cleared quantity box must shrink the total, not crash the
// recalculation.
func ParseOrZero(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
