package oracle

import (
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/btc-sell-order/internal/model"
)

type IOracle interface {
	// UpdatePriceUSD publishes the USD price of an asset (BTC included).
	// Zero or negative prices clear the stored price
	UpdatePriceUSD(asset string, price decimal.Decimal) error

	// UpdateExchangeRateInTokenPerBTC publishes how many deposit tokens one
	// BTC is worth. Zero or negative rates clear the stored rate
	UpdateExchangeRateInTokenPerBTC(asset string, rate decimal.Decimal) error

	// ExchangeContext returns the market snapshot for a deposit asset
	ExchangeContext(asset string) (model.ExchangeContext, error)
}
