// Package i18n holds the static label tables for the two-valued language
// toggle (en/hi) and locale-aware amount formatting for the printed invoice.
package i18n

// Lang codes accepted by the print surface.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

var english = map[string]string{
	"tax_invoice":            "TAX INVOICE",
	"bill_of_supply":         "BILL OF SUPPLY",
	"original_for_recipient": "(Original for Recipient)",
	"composition_notice":     "Composition taxable person, not eligible to collect tax on supplies",
	"billed_by":              "Billed By",
	"billed_to":              "Billed To",
	"invoice_no":             "Invoice No",
	"date":                   "Date",
	"ref_order_no":           "Ref. Order No",
	"letter_no":              "Letter No",
	"place_of_supply":        "Place of Supply",
	"state":                  "State",
	"gstin":                  "GSTIN",
	"pan":                    "PAN",
	"mobile":                 "Mobile",
	"taxpayer_type":          "Taxpayer Type",
	"serial_no":              "#",
	"description":            "Item Description",
	"hsn_sac":                "HSN/SAC",
	"qty":                    "Qty",
	"rate":                   "Rate",
	"taxable_value":          "Taxable Val",
	"cgst":                   "CGST",
	"sgst":                   "SGST",
	"igst":                   "IGST",
	"line_total":             "Total",
	"total_taxable":          "Total Taxable Value",
	"total_cgst":             "Total CGST",
	"total_sgst":             "Total SGST",
	"total_igst":             "Total IGST",
	"discount":               "Discount",
	"round_off":              "Round Off",
	"grand_total":            "Grand Total",
	"amount_in_words":        "Amount in Words",
	"bank_details":           "Bank Details",
	"payee_id":               "UPI ID",
	"account_name":           "Account Name",
	"bank_name":              "Bank",
	"account_number":         "Account No",
	"ifsc":                   "IFSC",
	"terms":                  "Terms & Conditions",
	"term_1":                 "Goods once sold will not be taken back.",
	"term_2":                 "Interest @ 18% p.a. will be charged if payment is delayed.",
	"term_3":                 "Subject to local jurisdiction.",
	"authorized_signatory":   "Authorized Signatory",
	"for":                    "For",
}

var hindi = map[string]string{
	"tax_invoice":            "कर बीजक",
	"bill_of_supply":         "बिल ऑफ सप्लाई",
	"original_for_recipient": "(प्राप्तकर्ता हेतु मूल प्रति)",
	"composition_notice":     "संरचना करयोग्य व्यक्ति, आपूर्ति पर कर वसूलने हेतु पात्र नहीं",
	"billed_by":              "विक्रेता",
	"billed_to":              "क्रेता",
	"invoice_no":             "बीजक संख्या",
	"date":                   "दिनांक",
	"ref_order_no":           "संदर्भ आदेश संख्या",
	"letter_no":              "पत्रांक",
	"place_of_supply":        "आपूर्ति का स्थान",
	"state":                  "राज्य",
	"gstin":                  "जीएसटीआईएन",
	"pan":                    "पैन",
	"mobile":                 "मोबाइल",
	"taxpayer_type":          "करदाता प्रकार",
	"serial_no":              "क्र.",
	"description":            "विवरण",
	"hsn_sac":                "एचएसएन/एसएसी",
	"qty":                    "मात्रा",
	"rate":                   "दर",
	"taxable_value":          "कर योग्य मूल्य",
	"cgst":                   "सीजीएसटी",
	"sgst":                   "एसजीएसटी",
	"igst":                   "आईजीएसटी",
	"line_total":             "योग",
	"total_taxable":          "कुल कर योग्य मूल्य",
	"total_cgst":             "कुल सीजीएसटी",
	"total_sgst":             "कुल एसजीएसटी",
	"total_igst":             "कुल आईजीएसटी",
	"discount":               "छूट",
	"round_off":              "पूर्णांकन",
	"grand_total":            "कुल योग",
	"amount_in_words":        "राशि शब्दों में",
	"bank_details":           "बैंक विवरण",
	"payee_id":               "यूपीआई आईडी",
	"account_name":           "खाता नाम",
	"bank_name":              "बैंक",
	"account_number":         "खाता संख्या",
	"ifsc":                   "आईएफएससी",
	"terms":                  "नियम एवं शर्तें",
	"term_1":                 "बेचा गया माल वापस नहीं लिया जाएगा।",
	"term_2":                 "भुगतान में विलंब पर 18% वार्षिक ब्याज देय होगा।",
	"term_3":                 "स्थानीय न्याय क्षेत्र के अधीन।",
	"authorized_signatory":   "अधिकृत हस्ताक्षरकर्ता",
	"for":                    "कृते",
}

// Label resolves key for lang, falling back to English for an unknown
// language or a key missing from the Hindi table.
func Label(lang, key string) string {
	if lang == LangHindi {
		if s, ok := hindi[key]; ok {
			return s
		}
	}
	return english[key]
}
