package model

import "github.com/dwarvesf/btc-sell-order/internal/consts"

// ReconciliationState holds the three user editable fields of a sell order and
// their USD equivalents. Amount fields use the empty string for "unset".
type ReconciliationState struct {
	DepositAmount    string `json:"deposit_amount"`
	ProfitPercentage string `json:"profit_percentage"`
	BtcOutputAmount  string `json:"btc_output_amount"`

	DepositAmountUSD   string `json:"deposit_amount_usd"`
	ProfitAmountUSD    string `json:"profit_amount_usd"`
	BtcOutputAmountUSD string `json:"btc_output_amount_usd"`
}

func NewReconciliationState() ReconciliationState {
	return ReconciliationState{
		DepositAmountUSD:   consts.ZERO_USD,
		ProfitAmountUSD:    consts.ZERO_USD,
		BtcOutputAmountUSD: consts.ZERO_USD,
	}
}
