package btcaddress

import "github.com/dwarvesf/btc-sell-order/internal/model"

type IValidator interface {
	// Validate reports whether address is a Segwit v0 payout address on the
	// configured network, with the reason when it is not
	Validate(address string) model.BitcoinAddress

	// PayoutScript returns the locking script paying to a valid address
	PayoutScript(address string) ([]byte, error)
}
