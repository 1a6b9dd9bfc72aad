package deposit

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/dwarvesf/btc-sell-order/internal/amount"
	"github.com/dwarvesf/btc-sell-order/internal/btcaddress"
	"github.com/dwarvesf/btc-sell-order/internal/consts"
	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/monitoring"
	"github.com/dwarvesf/btc-sell-order/internal/utils/logger"
)

var (
	ErrDepositAmountUnset   = errors.New("deposit amount is not set")
	ErrBtcOutputAmountUnset = errors.New("bitcoin output amount is not set")
	ErrInvalidPayoutAddress = errors.New("invalid bitcoin payout address")
	ErrExchangeRateTooLow   = errors.New("exchange rate rounds down to zero")
)

// Request is what the submission flow knows at the time the user confirms.
type Request struct {
	DepositAmount        string
	BtcOutputAmount      string
	DepositAssetDecimals int    `validate:"gte=0,lte=18"`
	BtcPayoutAddress     string `validate:"required"`
	DepositorAddress     string `validate:"required,eth_addr"`
	ConfirmationBlocks   int    `validate:"gte=2,lte=6"`
}

func NewRequest(state model.ReconciliationState, ctx model.ExchangeContext, btcPayoutAddress, depositorAddress string, confirmationBlocks int) Request {
	return Request{
		DepositAmount:        state.DepositAmount,
		BtcOutputAmount:      state.BtcOutputAmount,
		DepositAssetDecimals: ctx.DepositAssetDecimals,
		BtcPayoutAddress:     btcPayoutAddress,
		DepositorAddress:     depositorAddress,
		ConfirmationBlocks:   confirmationBlocks,
	}
}

// Params are the arguments of the vault deposit call.
type Params struct {
	SpecifiedPayoutAddress            common.Address    `json:"specified_payout_address"`
	DepositAmountInSmallestTokenUnit  *model.Web3BigInt `json:"deposit_amount_in_smallest_token_unit"`
	DepositAmountBufferedTo18Decimals *model.Web3BigInt `json:"deposit_amount_buffered_to_18_decimals"`
	ExpectedSats                      *model.Web3BigInt `json:"expected_sats"`
	ExchangeRate                      *big.Int          `json:"exchange_rate"`
	BtcPayoutScriptPubKey             []byte            `json:"btc_payout_script_pub_key"`
	DepositSalt                       common.Hash       `json:"deposit_salt"`
	ConfirmationBlocks                uint8             `json:"confirmation_blocks"`
}

type Builder struct {
	addressValidator btcaddress.IValidator
	entropy          io.Reader
	validate         *validator.Validate
	logger           *logger.Logger
	metrics          *monitoring.SellOrderMetrics
}

// New returns a builder drawing salt entropy from entropy, or crypto/rand
// when it is nil. A nil log discards output.
func New(addressValidator btcaddress.IValidator, entropy io.Reader, log *logger.Logger, metrics *monitoring.SellOrderMetrics) IBuilder {
	if entropy == nil {
		entropy = rand.Reader
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Builder{
		addressValidator: addressValidator,
		entropy:          entropy,
		validate:         validator.New(),
		logger:           log,
		metrics:          metrics,
	}
}

func (b *Builder) Build(req Request) (*Params, error) {
	params, err := b.build(req)
	if err != nil {
		b.metrics.RecordDepositParams(monitoring.DepositParamsFailed)
		b.logger.Error("[Builder][Build]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	b.metrics.RecordDepositParams(monitoring.DepositParamsBuilt)
	b.logger.Info("[Builder][Build]", map[string]string{
		"depositAmount": params.DepositAmountInSmallestTokenUnit.ToDecimal().String(),
		"expectedSats":  params.ExpectedSats.Value,
		"exchangeRate":  params.ExchangeRate.String(),
	})
	return params, nil
}

func (b *Builder) build(req Request) (*Params, error) {
	if _, ok := amount.Parse(req.DepositAmount); !ok {
		return nil, ErrDepositAmountUnset
	}
	if _, ok := amount.Parse(req.BtcOutputAmount); !ok {
		return nil, ErrBtcOutputAmountUnset
	}

	if err := b.validate.Struct(req); err != nil {
		return nil, errors.Wrap(err, "invalid deposit request")
	}

	depositAmount, err := model.NewWeb3BigIntFromString(req.DepositAmount, req.DepositAssetDecimals)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse deposit amount")
	}
	buffered, err := depositAmount.Rescale(consts.EXCHANGE_RATE_DECIMALS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to buffer deposit amount")
	}

	expectedSats, err := model.NewWeb3BigIntFromString(req.BtcOutputAmount, consts.BTC_DECIMALS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse bitcoin output amount")
	}
	if expectedSats.IsZero() {
		return nil, ErrBtcOutputAmountUnset
	}

	exchangeRate, err := clippedExchangeRate(buffered, expectedSats)
	if err != nil {
		return nil, errors.Wrapf(err, "deposit %s for %s sats", depositAmount.Value, expectedSats.Value)
	}

	script, err := b.addressValidator.PayoutScript(req.BtcPayoutAddress)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPayoutAddress, err.Error())
	}

	depositor := common.HexToAddress(req.DepositorAddress)
	salt, err := depositSalt(depositor, b.entropy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate deposit salt")
	}

	return &Params{
		SpecifiedPayoutAddress:            depositor,
		DepositAmountInSmallestTokenUnit:  depositAmount,
		DepositAmountBufferedTo18Decimals: buffered,
		ExpectedSats:                      expectedSats,
		ExchangeRate:                      exchangeRate,
		BtcPayoutScriptPubKey:             script,
		DepositSalt:                       salt,
		ConfirmationBlocks:                uint8(req.ConfirmationBlocks),
	}, nil
}
