package deposit

import (
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dwarvesf/btc-sell-order/internal/consts"
	"github.com/dwarvesf/btc-sell-order/internal/model"
)

const saltEntropySize = 32

// exchange rates are clipped down to a multiple of this
var ratePrecision = new(big.Int).Exp(big.NewInt(10), big.NewInt(consts.BTC_DECIMALS), nil)

// clippedExchangeRate is buffered / sats rounded down to a multiple of 10^8.
func clippedExchangeRate(buffered, expectedSats *model.Web3BigInt) (*big.Int, error) {
	rate := new(big.Int).Quo(buffered.BigInt(), expectedSats.BigInt())
	rate.Quo(rate, ratePrecision)
	rate.Mul(rate, ratePrecision)

	if rate.Sign() <= 0 {
		return nil, ErrExchangeRateTooLow
	}
	return rate, nil
}

// depositSalt is keccak256(depositor || 32 random bytes).
func depositSalt(depositor common.Address, entropy io.Reader) (common.Hash, error) {
	random := make([]byte, saltEntropySize)
	if _, err := io.ReadFull(entropy, random); err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(depositor.Bytes(), random), nil
}
