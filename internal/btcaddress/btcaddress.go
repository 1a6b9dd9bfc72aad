package btcaddress

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/dwarvesf/btc-sell-order/internal/model"
	"github.com/dwarvesf/btc-sell-order/internal/monitoring"
	"github.com/dwarvesf/btc-sell-order/internal/utils/logger"
)

const (
	p2wpkhProgramSize = 20
	p2wshProgramSize  = 32
)

type Validator struct {
	params  *chaincfg.Params
	logger  *logger.Logger
	metrics *monitoring.SellOrderMetrics
}

// New defaults to mainnet for nil params and a discarding logger for a nil log.
func New(params *chaincfg.Params, log *logger.Logger, metrics *monitoring.SellOrderMetrics) IValidator {
	if params == nil {
		params = &chaincfg.MainNetParams
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Validator{
		params:  params,
		logger:  log,
		metrics: metrics,
	}
}

// ValidateBitcoinPayoutAddress reports whether address is a mainnet Segwit v0
// address (P2WPKH or P2WSH). It never panics.
func ValidateBitcoinPayoutAddress(address string) bool {
	return Verify(address, &chaincfg.MainNetParams).Valid
}

// Verify checks, in order, the bech32 encoding, the network prefix, the
// witness version and the witness program length.
func Verify(address string, params *chaincfg.Params) model.BitcoinAddress {
	result := model.BitcoinAddress{Address: address}

	hrp, data, encoding, err := bech32.DecodeGeneric(address)
	if err != nil || len(data) == 0 {
		result.Reason = model.AddressInvalidBech32
		return result
	}

	version := data[0]
	// v0 programs must carry a bech32 checksum, later versions bech32m
	if version == 0 && encoding != bech32.Version0 {
		result.Reason = model.AddressInvalidBech32
		return result
	}

	if hrp != params.Bech32HRPSegwit {
		result.Reason = model.AddressWrongNetwork
		return result
	}

	if version != 0 {
		result.Reason = model.AddressWrongWitnessVersion
		return result
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		result.Reason = model.AddressInvalidBech32
		return result
	}

	if len(program) != p2wpkhProgramSize && len(program) != p2wshProgramSize {
		result.Reason = model.AddressWrongDataLength
		return result
	}

	result.Valid = true
	return result
}

func (v *Validator) Validate(address string) model.BitcoinAddress {
	result := Verify(address, v.params)
	if result.Valid {
		v.metrics.RecordAddressCheck(monitoring.AddressCheckValid)
		return result
	}

	v.metrics.RecordAddressCheck(string(result.Reason))
	v.logger.Debug("[BtcAddress][Validate]", map[string]string{
		"address": address,
		"reason":  string(result.Reason),
	})
	return result
}

func (v *Validator) PayoutScript(address string) ([]byte, error) {
	result := v.Validate(address)
	if !result.Valid {
		return nil, fmt.Errorf("invalid payout address %q: %s", address, result.Reason)
	}
	return payoutScript(address, v.params)
}

func payoutScript(address string, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, fmt.Errorf("failed to decode address: %v", err)
	}

	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create locking script: %v", err)
	}

	return script, nil
}
