// Package percentage handles the signed profit percentage field: the
// permissive check used while typing, the canonical "+12.5%" display form
// applied on blur, and parsing back to a number.
package percentage

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/btc-sell-order/internal/amount"
	"github.com/dwarvesf/btc-sell-order/internal/consts"
)

const suffix = "%"

// optional minus sign, at most two fractional digits
var draftRegex = regexp.MustCompile(`^-?\d*(\.\d{0,2})?$`)

// IsValidDraft is the keystroke level check. It accepts the empty string and
// transient states such as "-" or "3.".
func IsValidDraft(input string) bool {
	if input == "" {
		return true
	}
	return draftRegex.MatchString(input)
}

// CanonicalizeOnBlur turns a draft into its display form: non-negative values
// that start with a digit get a "+" prefix and every value gets a "%" suffix.
// A bare "-" clears the field.
func CanonicalizeOnBlur(input string) string {
	if input == "" || input == "-" {
		return ""
	}
	if strings.HasSuffix(input, suffix) {
		return withSign(input)
	}
	return withSign(input) + suffix
}

// StripForEditing removes the trailing "%" and a leading "+" so the user edits
// the raw number.
func StripForEditing(input string) string {
	return strings.TrimPrefix(strings.TrimSuffix(input, suffix), "+")
}

// Format renders a computed percentage, rounded to two decimals, in canonical
// display form.
func Format(value decimal.Decimal) string {
	return CanonicalizeOnBlur(value.StringFixed(consts.PERCENTAGE_DECIMALS))
}

// Parse reads a draft or canonical percentage. The second return value is
// false when the field holds no number yet ("", "-", "%", ".").
func Parse(input string) (decimal.Decimal, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(input), suffix)

	negative := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	}
	if strings.ContainsAny(s, "+-") {
		return decimal.Zero, false
	}

	value, ok := amount.Parse(s)
	if !ok {
		return decimal.Zero, false
	}
	if negative {
		value = value.Neg()
	}
	return value, true
}

func withSign(s string) string {
	if s[0] >= '0' && s[0] <= '9' {
		return "+" + s
	}
	return s
}
