package reconciler

import "github.com/dwarvesf/btc-sell-order/internal/model"

// IEngine keeps deposit amount, profit percentage and BTC output amount
// consistent. Every handler returns false when the raw input was rejected, in
// which case state is left untouched.
type IEngine interface {
	OnDepositAmountChange(state *model.ReconciliationState, ctx model.ExchangeContext, raw string) bool
	OnProfitPercentageChange(state *model.ReconciliationState, ctx model.ExchangeContext, raw string) bool
	OnBtcOutputAmountChange(state *model.ReconciliationState, ctx model.ExchangeContext, raw string) bool

	// OnProfitPercentageFocus strips the display form so the raw number can be edited
	OnProfitPercentageFocus(state *model.ReconciliationState)
	// OnProfitPercentageBlur puts the percentage back into "+12.5%" form
	OnProfitPercentageBlur(state *model.ReconciliationState)

	// Reset empties the state, e.g. once a deposit is confirmed
	Reset(state *model.ReconciliationState)
}
