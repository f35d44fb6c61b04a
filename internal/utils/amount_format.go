package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with comma-grouped thousands and no forced
// decimal places: 3500 -> "3,500", 1234.5 -> "1,234.5".
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i:]
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Integer part does not fit in int64; leave it ungrouped.
		return s
	}
	return amountPrinter.Sprintf("%d", n) + fracPart
}

// FormatAmountWithCurrency appends the currency code to a grouped amount,
// e.g. "3,500 AFN".
func FormatAmountWithCurrency(d decimal.Decimal, currency string) string {
	return FormatAmount(d) + " " + currency
}
