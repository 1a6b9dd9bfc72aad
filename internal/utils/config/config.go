package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/btc-sell-order/internal/consts"
	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	Bitcoin     BitcoinConfig
	Deposit     DepositConfig
	Prices      PriceConfig
	Quote       QuoteConfig
}

type BitcoinConfig struct {
	Network string
}

type DepositConfig struct {
	Asset              string
	ConfirmationBlocks int
}

// PriceConfig seeds the price oracle when no live feed is attached.
type PriceConfig struct {
	DepositAssetPriceUSD      decimal.NullDecimal
	BTCPriceUSD               decimal.NullDecimal
	ExchangeRateInTokenPerBTC decimal.NullDecimal
}

// QuoteConfig holds the raw field values replayed by cmd/quote.
type QuoteConfig struct {
	DepositAmount    string
	ProfitPercentage string
	BtcPayoutAddress string
	DepositorAddress string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	depositAsset := os.Getenv("DEPOSIT_ASSET")
	if depositAsset == "" {
		depositAsset = model.AssetBaseUSDC
	}

	return &AppConfig{
		Environment: environments.Environment(env),
		Bitcoin: BitcoinConfig{
			Network: strings.ToLower(os.Getenv("BTC_NETWORK")),
		},
		Deposit: DepositConfig{
			Asset:              depositAsset,
			ConfirmationBlocks: envVarAtoiOrDefault("DEPOSIT_CONFIRMATION_BLOCKS", consts.DEFAULT_CONFIRMATION_BLOCKS),
		},
		Prices: PriceConfig{
			DepositAssetPriceUSD:      envVarAsDecimal("DEPOSIT_ASSET_PRICE_USD"),
			BTCPriceUSD:               envVarAsDecimal("BTC_PRICE_USD"),
			ExchangeRateInTokenPerBTC: envVarAsDecimal("EXCHANGE_RATE_TOKEN_PER_BTC"),
		},
		Quote: QuoteConfig{
			DepositAmount:    os.Getenv("QUOTE_DEPOSIT_AMOUNT"),
			ProfitPercentage: os.Getenv("QUOTE_PROFIT_PERCENTAGE"),
			BtcPayoutAddress: os.Getenv("QUOTE_BTC_PAYOUT_ADDRESS"),
			DepositorAddress: os.Getenv("QUOTE_DEPOSITOR_ADDRESS"),
		},
	}
}

// NetworkParams maps BTC_NETWORK to chain parameters, defaulting to mainnet.
func (c BitcoinConfig) NetworkParams() *chaincfg.Params {
	switch c.Network {
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params
	case "regtest":
		return &chaincfg.RegressionNetParams
	case "signet":
		return &chaincfg.SigNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

func envVarAtoiOrDefault(envName string, fallback int) int {
	valueStr := os.Getenv(envName)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}

	return value
}

// envVarAsDecimal treats missing and unparseable values as unset.
func envVarAsDecimal(envName string) decimal.NullDecimal {
	valueStr := strings.TrimSpace(os.Getenv(envName))
	if valueStr == "" {
		return decimal.NullDecimal{}
	}

	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(value)
}
