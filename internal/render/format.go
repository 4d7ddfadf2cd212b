package render

import (
	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amounts are shown in Indian rupees with en-IN digit grouping (1,50,000).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// Money formats an amount as rupees. Whole amounts carry no decimals;
// fractional amounts carry up to two.
func Money(amount float64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// DeliveryDate renders a raw date value in long form, e.g. "5 March 2025".
// The upstream payload carries dates in assorted formats; values that cannot
// be parsed at all render verbatim so that rendering stays total.
func DeliveryDate(raw string) string {
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return monday.Format(t, "2 January 2006", monday.LocaleEnGB)
}
