package model

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Web3BigInt is an exact integer amount in the smallest unit of an asset
// (satoshis, token base units) together with the number of decimals it is
// scaled by.
type Web3BigInt struct {
	Value   string `json:"value"`
	Decimal int    `json:"decimal"`
}

// NewWeb3BigIntFromString parses a human readable amount such as "12.5" into
// smallest units. More fractional digits than decimals is an error, nothing is
// silently truncated.
func NewWeb3BigIntFromString(amount string, decimals int) (*Web3BigInt, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if decimals < 0 {
		return nil, fmt.Errorf("invalid decimals %d", decimals)
	}

	d, err := decimal.NewFromString(normalizeAmountString(amount))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %v", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("negative amount %q", amount)
	}

	scaled := d.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("amount %q has more than %d decimals", amount, decimals)
	}

	return &Web3BigInt{
		Value:   scaled.BigInt().String(),
		Decimal: decimals,
	}, nil
}

// normalizeAmountString accepts the partial forms an input field allows,
// ".5" and "5.", which decimal.NewFromString is not guaranteed to.
func normalizeAmountString(s string) string {
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return s
}

func (w *Web3BigInt) BigInt() *big.Int {
	num, ok := new(big.Int).SetString(w.Value, 10)
	if !ok {
		return big.NewInt(0)
	}
	return num
}

func (w *Web3BigInt) IsZero() bool {
	return w.BigInt().Sign() == 0
}

// ToDecimal converts back to a human readable decimal. Display only.
func (w *Web3BigInt) ToDecimal() decimal.Decimal {
	return decimal.NewFromBigInt(w.BigInt(), -int32(w.Decimal))
}

// Rescale returns the same amount expressed with a larger number of decimals,
// e.g. a 6 decimal token amount buffered to 18 decimals.
func (w *Web3BigInt) Rescale(decimals int) (*Web3BigInt, error) {
	if decimals < w.Decimal {
		return nil, fmt.Errorf("cannot rescale from %d to %d decimals without losing precision", w.Decimal, decimals)
	}

	multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals-w.Decimal)), nil)
	result := new(big.Int).Mul(w.BigInt(), multiplier)

	return &Web3BigInt{
		Value:   result.String(),
		Decimal: decimals,
	}, nil
}
