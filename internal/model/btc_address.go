package model

type AddressInvalidReason string

const (
	AddressInvalidBech32       AddressInvalidReason = "invalid-bech32"
	AddressWrongNetwork        AddressInvalidReason = "wrong-network"
	AddressWrongWitnessVersion AddressInvalidReason = "wrong-witness-version"
	AddressWrongDataLength     AddressInvalidReason = "wrong-data-length"
)

// BitcoinAddress is a payout address together with its validity verdict.
// Reason is empty when Valid is true.
type BitcoinAddress struct {
	Address string               `json:"address"`
	Valid   bool                 `json:"valid"`
	Reason  AddressInvalidReason `json:"reason,omitempty"`
}
