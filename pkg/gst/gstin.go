package gst

import (
	"fmt"
	"regexp"
	"strings"
)

// GSTIN layout: 2-digit state code, 10-character PAN, entity number, the
// literal 'Z', and a mod-36 check character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)

const gstinAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ValidateGSTIN checks the format and the check digit of a GST registration
// number. Input is upper-cased and trimmed first, so "27aadcb2230m1z2" and
// " 27AADCB2230M1Z2 " validate the same.
func ValidateGSTIN(gstin string) error {
	g := strings.ToUpper(strings.TrimSpace(gstin))
	if len(g) != 15 {
		return fmt.Errorf("gst: GSTIN must be 15 characters, got %d", len(g))
	}
	if !gstinPattern.MatchString(g) {
		return fmt.Errorf("gst: GSTIN %q does not match the required layout", g)
	}
	expected, err := ComputeGSTINCheckDigit(g[:14])
	if err != nil {
		return err
	}
	if g[14] != expected {
		return fmt.Errorf("gst: GSTIN check digit mismatch: expected %c, got %c", expected, g[14])
	}
	return nil
}

// ComputeGSTINCheckDigit computes the mod-36 check character over the first
// fourteen characters of a GSTIN. Each character maps to its value in the
// base-36 alphabet; alternate positions are weighted 1 and 2, and each
// weighted product contributes its base-36 quotient plus remainder.
func ComputeGSTINCheckDigit(base string) (byte, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if len(base) != 14 {
		return 0, fmt.Errorf("gst: check digit requires the first 14 GSTIN characters, got %d", len(base))
	}
	total := 0
	for i := 0; i < len(base); i++ {
		val := strings.IndexByte(gstinAlphabet, base[i])
		if val < 0 {
			return 0, fmt.Errorf("gst: invalid GSTIN character %q", base[i])
		}
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		product := val * factor
		total += product/36 + product%36
	}
	return gstinAlphabet[(36-total%36)%36], nil
}

// StateCodeOf returns the two-digit state code prefix of a GSTIN.
func StateCodeOf(gstin string) string {
	g := strings.TrimSpace(gstin)
	if len(g) < 2 {
		return ""
	}
	return g[:2]
}
