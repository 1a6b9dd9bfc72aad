package model

import "github.com/shopspring/decimal"

// ExchangeContext is the snapshot of live market inputs a recompute reads.
// It is owned by the surrounding application and never mutated by the engine.
type ExchangeContext struct {
	DepositAsset              string
	DepositAssetDecimals      int
	DepositAssetPriceUSD      decimal.NullDecimal
	BTCPriceUSD               decimal.NullDecimal
	ExchangeRateInTokenPerBTC decimal.NullDecimal
}

// HasPrices reports whether both USD prices are known and non-zero.
func (c ExchangeContext) HasPrices() bool {
	return isSetAndNonZero(c.DepositAssetPriceUSD) && isSetAndNonZero(c.BTCPriceUSD)
}

func (c ExchangeContext) HasExchangeRate() bool {
	return isSetAndNonZero(c.ExchangeRateInTokenPerBTC)
}

func isSetAndNonZero(d decimal.NullDecimal) bool {
	return d.Valid && !d.Decimal.IsZero()
}
