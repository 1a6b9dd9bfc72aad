package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SellOrderMetrics counts what happens in the sell order form. A nil
// *SellOrderMetrics is valid and records nothing.
type SellOrderMetrics struct {
	// keystroke level edits per field
	inputEdits *prometheus.CounterVec

	// recompute passes per triggering field
	recomputes *prometheus.CounterVec

	// payout address verdicts
	addressChecks *prometheus.CounterVec

	// deposit parameter derivations
	depositParams *prometheus.CounterVec
}

// NewSellOrderMetrics creates a new instance of sell order metrics
func NewSellOrderMetrics() *SellOrderMetrics {
	return &SellOrderMetrics{
		inputEdits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sell_order_input_edits_total",
				Help: "Total number of sell order field edits by outcome",
			},
			[]string{"field", "outcome"},
		),

		recomputes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sell_order_recomputes_total",
				Help: "Total number of reconciliation passes by triggering field",
			},
			[]string{"trigger", "status"},
		),

		addressChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sell_order_payout_address_checks_total",
				Help: "Total number of BTC payout address checks by result",
			},
			[]string{"result"},
		),

		depositParams: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sell_order_deposit_params_total",
				Help: "Total number of deposit parameter derivations by status",
			},
			[]string{"status"},
		),
	}
}

// MustRegister registers all metrics with the provided registry
func (m *SellOrderMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.inputEdits,
		m.recomputes,
		m.addressChecks,
		m.depositParams,
	)
}

func (m *SellOrderMetrics) RecordInputEdit(field Field, outcome EditOutcome) {
	if m == nil {
		return
	}
	m.inputEdits.WithLabelValues(string(field), string(outcome)).Inc()
}

func (m *SellOrderMetrics) RecordRecompute(trigger Field, status RecomputeStatus) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(string(trigger), string(status)).Inc()
}

// RecordAddressCheck takes "valid" or the invalid reason as result.
func (m *SellOrderMetrics) RecordAddressCheck(result string) {
	if m == nil {
		return
	}
	m.addressChecks.WithLabelValues(result).Inc()
}

func (m *SellOrderMetrics) RecordDepositParams(status string) {
	if m == nil {
		return
	}
	m.depositParams.WithLabelValues(status).Inc()
}
