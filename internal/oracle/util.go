package oracle

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// getConversionRatio returns how many deposit tokens one BTC buys, rounded to
// the token's decimals.
func getConversionRatio(btcPriceUSD, assetPriceUSD decimal.Decimal, decimals int) (decimal.Decimal, error) {
	if assetPriceUSD.IsZero() {
		return decimal.Zero, fmt.Errorf("asset price is zero")
	}

	ratio := btcPriceUSD.DivRound(assetPriceUSD, int32(decimals)+1)
	return ratio.Round(int32(decimals)), nil
}
