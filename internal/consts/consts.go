package consts

const (
	BTC_DECIMALS = 8

	// fractional digits shown in the BTC output field
	BTC_OUTPUT_DISPLAY_DECIMALS = 7

	PERCENTAGE_DECIMALS = 2

	// exchange rates are expressed against deposit amounts buffered to 18 decimals
	EXCHANGE_RATE_DECIMALS = 18

	MIN_CONFIRMATION_BLOCKS     = 2
	MAX_CONFIRMATION_BLOCKS     = 6
	DEFAULT_CONFIRMATION_BLOCKS = 2

	MAINNET_BASE_CHAIN_ID     = 8453
	MAINNET_ARBITRUM_CHAIN_ID = 42161
)

// default value of every USD display field
const ZERO_USD = "$0.00"
