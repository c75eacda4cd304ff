// Package gst contains catalogues and validations for Indian GST invoicing:
// the state/UT list used for place-of-supply selection, the slab of GST
// rates, and GSTIN format/check-digit validation.
package gst

// States lists the states and union territories offered by the invoice
// form's place-of-supply dropdown, in display order.
var States = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Delhi", "Jammu and Kashmir", "Ladakh", "Chandigarh",
}

// StateCodes maps a state/UT to its two-digit GST state code, the first two
// characters of a GSTIN registered there.
var StateCodes = map[string]string{
	"Jammu and Kashmir": "01",
	"Himachal Pradesh":  "02",
	"Punjab":            "03",
	"Chandigarh":        "04",
	"Uttarakhand":       "05",
	"Haryana":           "06",
	"Delhi":             "07",
	"Rajasthan":         "08",
	"Uttar Pradesh":     "09",
	"Bihar":             "10",
	"Sikkim":            "11",
	"Arunachal Pradesh": "12",
	"Nagaland":          "13",
	"Manipur":           "14",
	"Mizoram":           "15",
	"Tripura":           "16",
	"Meghalaya":         "17",
	"Assam":             "18",
	"West Bengal":       "19",
	"Jharkhand":         "20",
	"Odisha":            "21",
	"Chhattisgarh":      "22",
	"Madhya Pradesh":    "23",
	"Gujarat":           "24",
	"Maharashtra":       "27",
	"Karnataka":         "29",
	"Goa":               "30",
	"Kerala":            "32",
	"Tamil Nadu":        "33",
	"Telangana":         "36",
	"Andhra Pradesh":    "37",
	"Ladakh":            "38",
}

// IsKnownState reports whether name is in the catalogue. Advisory only: the
// engine compares state strings as-is and never rejects an unknown one.
func IsKnownState(name string) bool {
	_, ok := StateCodes[name]
	return ok
}
