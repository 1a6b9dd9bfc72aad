package model

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/btc-sell-order/internal/consts"
)

// Asset describes a depositable token (or BTC itself) and the live market data
// the sell order flow needs for it.
type Asset struct {
	Name                      string
	DisplayName               string
	Decimals                  int
	ContractChainID           int64
	PriceUSD                  decimal.NullDecimal
	ExchangeRateInTokenPerBTC decimal.NullDecimal
}

func (a Asset) Label() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Name
}

const (
	AssetBTC      = "BTC"
	AssetUSDT     = "USDT"
	AssetBaseUSDC = "BASE_USDC"
)

var validAssets = map[string]Asset{
	AssetBTC: {
		Name:     AssetBTC,
		Decimals: consts.BTC_DECIMALS,
	},
	AssetUSDT: {
		Name:            AssetUSDT,
		Decimals:        6,
		ContractChainID: consts.MAINNET_ARBITRUM_CHAIN_ID,
		PriceUSD:        decimal.NewNullDecimal(decimal.NewFromInt(1)),
	},
	AssetBaseUSDC: {
		Name:            AssetBaseUSDC,
		DisplayName:     "USDC",
		Decimals:        6,
		ContractChainID: consts.MAINNET_BASE_CHAIN_ID,
		PriceUSD:        decimal.NewNullDecimal(decimal.NewFromInt(1)),
	},
}

// LookupAsset returns a copy of the known asset with the given name.
func LookupAsset(name string) (Asset, bool) {
	asset, ok := validAssets[name]
	return asset, ok
}

func ValidAssetNames() []string {
	names := make([]string, 0, len(validAssets))
	for name := range validAssets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
