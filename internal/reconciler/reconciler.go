package reconciler

import (
	"github.com/dwarvesf/btc-sell-order/internal/amount"
	"github.com/dwarvesf/btc-sell-order/internal/consts"
	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/monitoring"
	"github.com/dwarvesf/btc-sell-order/internal/percentage"
	"github.com/dwarvesf/btc-sell-order/internal/utils/logger"
	"github.com/dwarvesf/btc-sell-order/internal/view"
)

type Engine struct {
	logger    *logger.Logger
	metrics   *monitoring.SellOrderMetrics
	formatter view.CurrencyFormatter
}

// New returns an engine formatting USD amounts with formatter, or
// view.FormatUSD when formatter is nil. metrics may be nil.
func New(log *logger.Logger, metrics *monitoring.SellOrderMetrics, formatter view.CurrencyFormatter) IEngine {
	if formatter == nil {
		formatter = view.FormatUSD
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Engine{
		logger:    log,
		metrics:   metrics,
		formatter: formatter,
	}
}

func (e *Engine) OnDepositAmountChange(state *model.ReconciliationState, ctx model.ExchangeContext, raw string) bool {
	// decimals are read from the context on every call, they change with the asset
	if !amount.IsValidDecimalString(raw, ctx.DepositAssetDecimals) {
		e.reject(monitoring.FieldDepositAmount, raw)
		return false
	}
	e.metrics.RecordInputEdit(monitoring.FieldDepositAmount, monitoring.EditAccepted)

	state.DepositAmount = raw
	e.recompute(state, ctx, monitoring.FieldDepositAmount)
	return true
}

func (e *Engine) OnProfitPercentageChange(state *model.ReconciliationState, ctx model.ExchangeContext, raw string) bool {
	draft, ok := profitPercentageDraft(raw)
	if !ok {
		e.reject(monitoring.FieldProfitPercentage, raw)
		return false
	}
	e.metrics.RecordInputEdit(monitoring.FieldProfitPercentage, monitoring.EditAccepted)

	state.ProfitPercentage = draft
	e.recompute(state, ctx, monitoring.FieldProfitPercentage)
	return true
}

// OnBtcOutputAmountChange only flows one way: the output drives the profit
// percentage, the deposit amount and its USD value are never touched.
func (e *Engine) OnBtcOutputAmountChange(state *model.ReconciliationState, ctx model.ExchangeContext, raw string) bool {
	if !amount.IsValidBtcOutputDraft(raw) {
		e.reject(monitoring.FieldBtcOutputAmount, raw)
		return false
	}
	e.metrics.RecordInputEdit(monitoring.FieldBtcOutputAmount, monitoring.EditAccepted)

	if raw == zeroBtcOutput {
		state.BtcOutputAmount = ""
	} else {
		state.BtcOutputAmount = raw
	}

	if !ctx.HasPrices() {
		e.metrics.RecordRecompute(monitoring.FieldBtcOutputAmount, monitoring.RecomputeSkippedNoPrice)
		return true
	}
	e.metrics.RecordRecompute(monitoring.FieldBtcOutputAmount, monitoring.RecomputeComputed)

	state.BtcOutputAmountUSD = e.btcOutputAmountUSD(*state, ctx)

	pct, ok := computeProfitPercentage(raw, *state, ctx)
	if !ok {
		return true
	}
	if !percentage.IsValidDraft(pct.StringFixed(consts.PERCENTAGE_DECIMALS)) {
		return true
	}
	state.ProfitPercentage = percentage.Format(pct)
	state.ProfitAmountUSD = e.profitAmountUSD(*state, ctx)

	return true
}

func (e *Engine) OnProfitPercentageFocus(state *model.ReconciliationState) {
	state.ProfitPercentage = percentage.StripForEditing(state.ProfitPercentage)
}

func (e *Engine) OnProfitPercentageBlur(state *model.ReconciliationState) {
	state.ProfitPercentage = percentage.CanonicalizeOnBlur(state.ProfitPercentage)
}

func (e *Engine) Reset(state *model.ReconciliationState) {
	*state = model.NewReconciliationState()
}

// recompute derives the BTC output and every USD field from the deposit
// amount and profit percentage. Nothing is derived until both prices are known.
func (e *Engine) recompute(state *model.ReconciliationState, ctx model.ExchangeContext, trigger monitoring.Field) {
	if !ctx.HasPrices() {
		e.metrics.RecordRecompute(trigger, monitoring.RecomputeSkippedNoPrice)
		return
	}
	e.metrics.RecordRecompute(trigger, monitoring.RecomputeComputed)

	state.BtcOutputAmount = computeBtcOutputAmount(*state, ctx)
	state.BtcOutputAmountUSD = e.btcOutputAmountUSD(*state, ctx)
	state.ProfitAmountUSD = e.profitAmountUSD(*state, ctx)
	state.DepositAmountUSD = e.depositAmountUSD(*state, ctx)
}

func (e *Engine) reject(field monitoring.Field, raw string) {
	e.metrics.RecordInputEdit(field, monitoring.EditRejected)
	e.logger.Debug("[Engine][reject]", map[string]string{
		"field": string(field),
		"input": raw,
	})
}
