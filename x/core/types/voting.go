package types

import (
	"bytes"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// PowerEntry is an address with its voting power
type PowerEntry struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Power   uint64         `json:"power" yaml:"power"`
}

// ValidateBasic performs stateless checks
func (p PowerEntry) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(p.Address); err != nil {
		return sdkerrors.Wrap(err, "address")
	}
	return nil
}

// RankedBefore is the total order of the power ranking: power descending and
// address bytes ascending on ties.
func RankedBefore(a, b PowerEntry) bool {
	if a.Power != b.Power {
		return a.Power > b.Power
	}
	return bytes.Compare(a.Address, b.Address) < 0
}

// SortByPower sorts in place into ranking order
func SortByPower(entries []PowerEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return RankedBefore(entries[i], entries[j])
	})
}

// IsRanked returns true when all adjacent entries are in strict ranking order
func IsRanked(entries []PowerEntry) bool {
	for i := 1; i < len(entries); i++ {
		if !RankedBefore(entries[i-1], entries[i]) {
			return false
		}
	}
	return true
}
