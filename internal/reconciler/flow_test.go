package reconciler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/btc-sell-order/internal/consts"
	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/oracle"
	"github.com/dwarvesf/btc-sell-order/internal/reconciler"
	"github.com/dwarvesf/btc-sell-order/internal/utils/logger"
)

var _ = Describe("Sell order flow", func() {
	var (
		engine      reconciler.IEngine
		priceOracle oracle.IOracle
		state       model.ReconciliationState
	)

	exchangeContext := func() model.ExchangeContext {
		ctx, err := priceOracle.ExchangeContext(model.AssetBaseUSDC)
		Expect(err).NotTo(HaveOccurred())
		return ctx
	}

	BeforeEach(func() {
		engine = reconciler.New(logger.NewNop(), nil, nil)
		priceOracle = oracle.New(nil, logger.NewNop())
		state = model.NewReconciliationState()
	})

	Context("before the BTC price is known", func() {
		It("should store edits without deriving anything", func() {
			Expect(engine.OnDepositAmountChange(&state, exchangeContext(), "1000")).To(BeTrue())
			Expect(engine.OnProfitPercentageChange(&state, exchangeContext(), "10")).To(BeTrue())

			Expect(state.DepositAmount).To(Equal("1000"))
			Expect(state.ProfitPercentage).To(Equal("10"))
			Expect(state.BtcOutputAmount).To(BeEmpty())
			Expect(state.DepositAmountUSD).To(Equal(consts.ZERO_USD))
			Expect(state.ProfitAmountUSD).To(Equal(consts.ZERO_USD))
			Expect(state.BtcOutputAmountUSD).To(Equal(consts.ZERO_USD))
		})
	})

	Context("with live prices", func() {
		BeforeEach(func() {
			Expect(priceOracle.UpdatePriceUSD(model.AssetBTC, decimal.NewFromInt(100000))).To(Succeed())
		})

		It("should derive the BTC output from deposit and profit", func() {
			Expect(engine.OnProfitPercentageChange(&state, exchangeContext(), "10")).To(BeTrue())
			engine.OnProfitPercentageBlur(&state)
			Expect(state.ProfitPercentage).To(Equal("+10%"))

			Expect(engine.OnDepositAmountChange(&state, exchangeContext(), "1000")).To(BeTrue())

			Expect(state.BtcOutputAmount).To(Equal("0.0110000"))
			Expect(state.ProfitAmountUSD).To(Equal("$100.00"))
			Expect(state.DepositAmountUSD).To(Equal("$1,000.00"))
			Expect(state.BtcOutputAmountUSD).To(Equal("$1,100.00"))
		})

		It("should derive the profit from an edited BTC output", func() {
			engine.OnDepositAmountChange(&state, exchangeContext(), "1000")
			engine.OnProfitPercentageChange(&state, exchangeContext(), "10")

			Expect(engine.OnBtcOutputAmountChange(&state, exchangeContext(), "0.0125")).To(BeTrue())

			Expect(state.ProfitPercentage).To(Equal("+25.00%"))
			Expect(state.ProfitAmountUSD).To(Equal("$250.00"))
			Expect(state.BtcOutputAmountUSD).To(Equal("$1,250.00"))
			Expect(state.DepositAmount).To(Equal("1000"))
			Expect(state.DepositAmountUSD).To(Equal("$1,000.00"))
		})

		It("should round trip the percentage through focus and blur", func() {
			engine.OnProfitPercentageChange(&state, exchangeContext(), "12.5")
			engine.OnProfitPercentageBlur(&state)
			Expect(state.ProfitPercentage).To(Equal("+12.5%"))

			engine.OnProfitPercentageFocus(&state)
			Expect(state.ProfitPercentage).To(Equal("12.5"))
		})

		It("should keep the last valid state across rejected keystrokes", func() {
			engine.OnDepositAmountChange(&state, exchangeContext(), "1000")
			engine.OnProfitPercentageChange(&state, exchangeContext(), "10")
			before := state

			Expect(engine.OnDepositAmountChange(&state, exchangeContext(), "1000.0000001")).To(BeFalse())
			Expect(engine.OnProfitPercentageChange(&state, exchangeContext(), "10.001")).To(BeFalse())
			Expect(engine.OnBtcOutputAmountChange(&state, exchangeContext(), "0..1")).To(BeFalse())

			Expect(state).To(Equal(before))
		})

		It("should follow a price update on the next edit", func() {
			engine.OnProfitPercentageChange(&state, exchangeContext(), "0")
			engine.OnDepositAmountChange(&state, exchangeContext(), "1000")
			Expect(state.BtcOutputAmount).To(Equal("0.0100000"))

			Expect(priceOracle.UpdatePriceUSD(model.AssetBTC, decimal.NewFromInt(50000))).To(Succeed())
			engine.OnDepositAmountChange(&state, exchangeContext(), "1000")
			Expect(state.BtcOutputAmount).To(Equal("0.0200000"))
		})

		It("should be empty again after a reset", func() {
			engine.OnDepositAmountChange(&state, exchangeContext(), "1000")
			engine.Reset(&state)

			Expect(state).To(Equal(model.NewReconciliationState()))
		})
	})
})
