// Package quote wires the sell order packages together and replays the
// configured inputs through them, the way the deposit form would.
package quote

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dwarvesf/btc-sell-order/internal/btcaddress"
	"github.com/dwarvesf/btc-sell-order/internal/deposit"
	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/monitoring"
	"github.com/dwarvesf/btc-sell-order/internal/oracle"
	"github.com/dwarvesf/btc-sell-order/internal/reconciler"
	"github.com/dwarvesf/btc-sell-order/internal/utils/config"
	"github.com/dwarvesf/btc-sell-order/internal/utils/logger"
)

type Quote struct {
	appConfig        *config.AppConfig
	logger           *logger.Logger
	oracle           oracle.IOracle
	engine           reconciler.IEngine
	addressValidator btcaddress.IValidator
	builder          deposit.IBuilder
}

type Result struct {
	DepositAsset  string                    `json:"deposit_asset"`
	State         model.ReconciliationState `json:"state"`
	PayoutAddress *model.BitcoinAddress     `json:"payout_address,omitempty"`
	DepositParams *deposit.Params           `json:"deposit_params,omitempty"`
}

// New registers the sell order metrics on registry when it is not nil.
func New(appConfig *config.AppConfig, logger *logger.Logger, registry *prometheus.Registry) *Quote {
	metrics := monitoring.NewSellOrderMetrics()
	if registry != nil {
		metrics.MustRegister(registry)
	}

	addressValidator := btcaddress.New(appConfig.Bitcoin.NetworkParams(), logger, metrics)

	return &Quote{
		appConfig:        appConfig,
		logger:           logger,
		oracle:           oracle.New(appConfig, logger),
		engine:           reconciler.New(logger, metrics, nil),
		addressValidator: addressValidator,
		builder:          deposit.New(addressValidator, nil, logger, metrics),
	}
}

func (q *Quote) Run() (*Result, error) {
	ctx, err := q.oracle.ExchangeContext(q.appConfig.Deposit.Asset)
	if err != nil {
		q.logger.Error("[Quote][Run][ExchangeContext]", map[string]string{
			"asset": q.appConfig.Deposit.Asset,
			"error": err.Error(),
		})
		return nil, err
	}

	input := q.appConfig.Quote
	state := model.NewReconciliationState()

	if input.DepositAmount != "" && !q.engine.OnDepositAmountChange(&state, ctx, input.DepositAmount) {
		q.logger.Warn("[Quote][Run][OnDepositAmountChange]", map[string]string{
			"input": input.DepositAmount,
		})
	}
	if input.ProfitPercentage != "" {
		if !q.engine.OnProfitPercentageChange(&state, ctx, input.ProfitPercentage) {
			q.logger.Warn("[Quote][Run][OnProfitPercentageChange]", map[string]string{
				"input": input.ProfitPercentage,
			})
		}
		q.engine.OnProfitPercentageBlur(&state)
	}

	result := &Result{State: state}
	if asset, ok := model.LookupAsset(ctx.DepositAsset); ok {
		result.DepositAsset = asset.Label()
	}

	if input.BtcPayoutAddress == "" {
		return result, nil
	}
	payoutAddress := q.addressValidator.Validate(input.BtcPayoutAddress)
	result.PayoutAddress = &payoutAddress

	if !payoutAddress.Valid || input.DepositorAddress == "" {
		return result, nil
	}

	req := deposit.NewRequest(state, ctx, input.BtcPayoutAddress, input.DepositorAddress, q.appConfig.Deposit.ConfirmationBlocks)
	params, err := q.builder.Build(req)
	if err != nil {
		q.logger.Warn("[Quote][Run][Build]", map[string]string{
			"error": err.Error(),
		})
		return result, nil
	}
	result.DepositParams = params

	return result, nil
}

// Fields flattens the result for structured logging.
func (r *Result) Fields() map[string]string {
	fields := map[string]string{
		"depositAsset":       r.DepositAsset,
		"depositAmount":      r.State.DepositAmount,
		"profitPercentage":   r.State.ProfitPercentage,
		"btcOutputAmount":    r.State.BtcOutputAmount,
		"depositAmountUSD":   r.State.DepositAmountUSD,
		"profitAmountUSD":    r.State.ProfitAmountUSD,
		"btcOutputAmountUSD": r.State.BtcOutputAmountUSD,
	}
	if r.PayoutAddress != nil {
		fields["payoutAddressValid"] = strconv.FormatBool(r.PayoutAddress.Valid)
		if !r.PayoutAddress.Valid {
			fields["payoutAddressReason"] = string(r.PayoutAddress.Reason)
		}
	}
	if r.DepositParams != nil {
		fields["expectedSats"] = r.DepositParams.ExpectedSats.Value
		fields["exchangeRate"] = r.DepositParams.ExchangeRate.String()
		fields["depositSalt"] = r.DepositParams.DepositSalt.Hex()
	}
	return fields
}
