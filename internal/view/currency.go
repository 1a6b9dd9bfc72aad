package view

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders an amount for display. The reconciliation engine
// takes one so its arithmetic stays locale independent.
type CurrencyFormatter func(amount decimal.Decimal) string

// digits that always fit an int64
const maxInt64Digits = 18

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD formats like en-US currency: "$1,234.50", "-$0.75". Amounts are
// rounded half away from zero to whole cents.
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.')+1:]

	return sign + "$" + groupThousands(rounded.Truncate(0).String()) + "." + cents
}

// groupThousands inserts separators into an unsigned digit string of any
// length. The printer only takes machine integers, so digits beyond int64 are
// grouped by hand.
func groupThousands(digits string) string {
	tail := ""
	for len(digits) > maxInt64Digits {
		tail = "," + digits[len(digits)-3:] + tail
		digits = digits[:len(digits)-3]
	}
	head, _ := strconv.ParseInt(digits, 10, 64)
	return usdPrinter.Sprintf("%d", head) + tail
}
