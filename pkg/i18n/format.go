package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printers = map[string]*message.Printer{
	LangEnglish: message.NewPrinter(language.MustParse("en-IN")),
	LangHindi:   message.NewPrinter(language.MustParse("hi-IN")),
}

// FormatAmount renders a monetary value with Indian lakh/crore digit
// grouping and exactly two fraction digits: 1234567.8 → "12,34,567.80".
// Unknown languages format as en-IN.
func FormatAmount(d decimal.Decimal, lang string) string {
	p, ok := printers[lang]
	if !ok {
		p = printers[LangEnglish]
	}
	f, _ := d.Float64()
	return p.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}
