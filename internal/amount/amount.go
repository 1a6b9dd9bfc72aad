// Package amount validates and parses the free-text numeric strings typed into
// the deposit and BTC output fields.
package amount

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	btcOutputDraftRegex = regexp.MustCompile(`^\d*\.?\d*$`)

	// compiled patterns keyed by precision; the precision itself is always
	// supplied by the caller
	decimalRegexes sync.Map
)

// IsValidDecimalString reports whether input is empty or an unsigned decimal
// with at most maxDecimals fractional digits. A trailing dot ("12.") and a
// lone dot (".") are accepted as in-progress input. A negative maxDecimals is
// treated as 0.
func IsValidDecimalString(input string, maxDecimals int) bool {
	if input == "" {
		return true
	}
	return decimalRegex(maxDecimals).MatchString(input)
}

func decimalRegex(maxDecimals int) *regexp.Regexp {
	if maxDecimals < 0 {
		maxDecimals = 0
	}
	if re, ok := decimalRegexes.Load(maxDecimals); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(fmt.Sprintf(`^\d*(\.\d{0,%d})?$`, maxDecimals))
	actual, _ := decimalRegexes.LoadOrStore(maxDecimals, re)
	return actual.(*regexp.Regexp)
}

// IsValidBtcOutputDraft is the permissive check applied to the BTC output
// field, which has no precision bound while typing.
func IsValidBtcOutputDraft(input string) bool {
	if input == "" {
		return true
	}
	return btcOutputDraftRegex.MatchString(input)
}

// Parse converts a validated amount string to a decimal. The second return
// value is false for the unset forms ("", ".") and for anything unparseable.
func Parse(input string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(input)
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
