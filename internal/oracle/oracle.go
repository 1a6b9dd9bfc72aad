package oracle

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/utils/config"
	"github.com/dwarvesf/btc-sell-order/internal/utils/logger"
)

type PriceOracle struct {
	mux *sync.RWMutex

	pricesUSD        map[string]decimal.Decimal
	tokenPerBTCRates map[string]decimal.Decimal
	logger           *logger.Logger
}

// New seeds the cache with the static asset prices and whatever the config
// carries for the configured deposit asset.
func New(appConfig *config.AppConfig, log *logger.Logger) IOracle {
	if log == nil {
		log = logger.NewNop()
	}
	o := &PriceOracle{
		mux:              &sync.RWMutex{},
		pricesUSD:        map[string]decimal.Decimal{},
		tokenPerBTCRates: map[string]decimal.Decimal{},
		logger:           log,
	}

	for _, name := range model.ValidAssetNames() {
		asset, _ := model.LookupAsset(name)
		if asset.PriceUSD.Valid {
			o.set(o.pricesUSD, name, asset.PriceUSD.Decimal)
		}
		if asset.ExchangeRateInTokenPerBTC.Valid {
			o.set(o.tokenPerBTCRates, name, asset.ExchangeRateInTokenPerBTC.Decimal)
		}
	}

	if appConfig == nil {
		return o
	}

	prices := appConfig.Prices
	if prices.BTCPriceUSD.Valid {
		o.set(o.pricesUSD, model.AssetBTC, prices.BTCPriceUSD.Decimal)
	}
	if _, ok := model.LookupAsset(appConfig.Deposit.Asset); ok {
		if prices.DepositAssetPriceUSD.Valid {
			o.set(o.pricesUSD, appConfig.Deposit.Asset, prices.DepositAssetPriceUSD.Decimal)
		}
		if prices.ExchangeRateInTokenPerBTC.Valid {
			o.set(o.tokenPerBTCRates, appConfig.Deposit.Asset, prices.ExchangeRateInTokenPerBTC.Decimal)
		}
	} else {
		o.logger.Error("[PriceOracle][New]", map[string]string{
			"error": fmt.Sprintf("unknown deposit asset %q", appConfig.Deposit.Asset),
		})
	}

	return o
}

func (o *PriceOracle) UpdatePriceUSD(asset string, price decimal.Decimal) error {
	if _, ok := model.LookupAsset(asset); !ok {
		o.logger.Error("[PriceOracle][UpdatePriceUSD]", map[string]string{
			"asset": asset,
			"error": "unknown asset",
		})
		return fmt.Errorf("unknown asset %q", asset)
	}

	o.set(o.pricesUSD, asset, price)
	return nil
}

func (o *PriceOracle) UpdateExchangeRateInTokenPerBTC(asset string, rate decimal.Decimal) error {
	if _, ok := model.LookupAsset(asset); !ok || asset == model.AssetBTC {
		o.logger.Error("[PriceOracle][UpdateExchangeRateInTokenPerBTC]", map[string]string{
			"asset": asset,
			"error": "not a deposit asset",
		})
		return fmt.Errorf("%q is not a deposit asset", asset)
	}

	o.set(o.tokenPerBTCRates, asset, rate)
	return nil
}

func (o *PriceOracle) ExchangeContext(asset string) (model.ExchangeContext, error) {
	depositAsset, ok := model.LookupAsset(asset)
	if !ok || asset == model.AssetBTC {
		return model.ExchangeContext{}, fmt.Errorf("%q is not a deposit asset", asset)
	}

	o.mux.RLock()
	defer o.mux.RUnlock()

	ctx := model.ExchangeContext{
		DepositAsset:              depositAsset.Name,
		DepositAssetDecimals:      depositAsset.Decimals,
		DepositAssetPriceUSD:      lookup(o.pricesUSD, asset),
		BTCPriceUSD:               lookup(o.pricesUSD, model.AssetBTC),
		ExchangeRateInTokenPerBTC: lookup(o.tokenPerBTCRates, asset),
	}

	if !ctx.ExchangeRateInTokenPerBTC.Valid && ctx.HasPrices() {
		rate, err := getConversionRatio(ctx.BTCPriceUSD.Decimal, ctx.DepositAssetPriceUSD.Decimal, depositAsset.Decimals)
		if err != nil {
			o.logger.Error("[PriceOracle][ExchangeContext][getConversionRatio]", map[string]string{
				"asset": asset,
				"error": err.Error(),
			})
			return ctx, nil
		}
		ctx.ExchangeRateInTokenPerBTC = decimal.NewNullDecimal(rate)
	}

	return ctx, nil
}

func (o *PriceOracle) set(values map[string]decimal.Decimal, key string, value decimal.Decimal) {
	o.mux.Lock()
	defer o.mux.Unlock()

	if !value.IsPositive() {
		delete(values, key)
		return
	}
	values[key] = value
}

func lookup(values map[string]decimal.Decimal, key string) decimal.NullDecimal {
	value, ok := values[key]
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(value)
}
