package reconciler

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/btc-sell-order/internal/amount"
	"github.com/dwarvesf/btc-sell-order/internal/consts"
	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/percentage"
)

// a zero output is shown as an empty field rather than "0.0"
const zeroBtcOutput = "0.0"

var hundred = decimal.NewFromInt(100)

// profitPercentageDraft strips the "%" suffix from a keystroke and reports
// whether what is left is an acceptable draft. A leading "+" left over from
// the display form is tolerated.
func profitPercentageDraft(raw string) (string, bool) {
	draft := strings.TrimSuffix(raw, "%")

	unsigned := draft
	if strings.HasPrefix(draft, "+") {
		unsigned = draft[1:]
		if unsigned == "" || unsigned[0] == '-' {
			return "", false
		}
	}
	return draft, percentage.IsValidDraft(unsigned)
}

// computeBtcOutputAmount is (deposit + deposit*pct/100) * assetPrice / btcPrice,
// clamped at zero and shown with 7 decimals. An unset operand yields "".
func computeBtcOutputAmount(state model.ReconciliationState, ctx model.ExchangeContext) string {
	deposit, ok := amount.Parse(state.DepositAmount)
	if !ok {
		return ""
	}
	pct, ok := percentage.Parse(state.ProfitPercentage)
	if !ok {
		return ""
	}

	assetPrice := ctx.DepositAssetPriceUSD.Decimal
	profitInAsset := deposit.Mul(pct).Div(hundred)
	totalUSD := deposit.Mul(assetPrice).Add(profitInAsset.Mul(assetPrice))

	output := totalUSD.Div(ctx.BTCPriceUSD.Decimal)
	if !output.IsPositive() {
		return ""
	}
	return output.StringFixed(consts.BTC_OUTPUT_DISPLAY_DECIMALS)
}

// computeProfitPercentage derives the percentage implied by a BTC output:
// ((output*rate - deposit) / deposit) * 100, rounded to two decimals.
func computeProfitPercentage(rawBtcOutput string, state model.ReconciliationState, ctx model.ExchangeContext) (decimal.Decimal, bool) {
	if !ctx.HasExchangeRate() {
		return decimal.Zero, false
	}
	output, ok := amount.Parse(rawBtcOutput)
	if !ok {
		return decimal.Zero, false
	}
	deposit, ok := amount.Parse(state.DepositAmount)
	if !ok || deposit.IsZero() {
		return decimal.Zero, false
	}

	endValue := output.Mul(ctx.ExchangeRateInTokenPerBTC.Decimal)
	pct := endValue.Sub(deposit).Div(deposit).Mul(hundred)
	return pct.Round(consts.PERCENTAGE_DECIMALS), true
}

func (e *Engine) depositAmountUSD(state model.ReconciliationState, ctx model.ExchangeContext) string {
	deposit, ok := amount.Parse(state.DepositAmount)
	if !ok || !ctx.DepositAssetPriceUSD.Valid {
		return consts.ZERO_USD
	}
	return e.formatter(deposit.Mul(ctx.DepositAssetPriceUSD.Decimal))
}

func (e *Engine) profitAmountUSD(state model.ReconciliationState, ctx model.ExchangeContext) string {
	deposit, ok := amount.Parse(state.DepositAmount)
	if !ok || !ctx.DepositAssetPriceUSD.Valid {
		return consts.ZERO_USD
	}
	pct, ok := percentage.Parse(state.ProfitPercentage)
	if !ok {
		return consts.ZERO_USD
	}
	return e.formatter(deposit.Mul(pct).Div(hundred).Mul(ctx.DepositAssetPriceUSD.Decimal))
}

func (e *Engine) btcOutputAmountUSD(state model.ReconciliationState, ctx model.ExchangeContext) string {
	output, ok := amount.Parse(state.BtcOutputAmount)
	if !ok || !ctx.BTCPriceUSD.Valid {
		return consts.ZERO_USD
	}
	return e.formatter(output.Mul(ctx.BTCPriceUSD.Decimal))
}
