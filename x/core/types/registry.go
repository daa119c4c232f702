package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MaxAliasLength limits the human readable names stored with registry entries
const MaxAliasLength = 128

// Indexer is an address allowed to gather evidence for campaigns
type Indexer struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Alias   string         `json:"alias" yaml:"alias"`
}

// ValidateBasic performs stateless checks
func (i Indexer) ValidateBasic() error {
	return validateAliased(i.Address, i.Alias)
}

// Relayer is an address participating in the voting power weighted parts of the protocol
type Relayer struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Alias   string         `json:"alias" yaml:"alias"`
}

// ValidateBasic performs stateless checks
func (r Relayer) ValidateBasic() error {
	return validateAliased(r.Address, r.Alias)
}

// Delegate is a campaign scoped participant
type Delegate struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Alias   string         `json:"alias" yaml:"alias"`
}

// ValidateBasic performs stateless checks
func (d Delegate) ValidateBasic() error {
	return validateAliased(d.Address, d.Alias)
}

// ValidateAlias returns an error for blank or oversized aliases
func ValidateAlias(alias string) error {
	if strings.TrimSpace(alias) == "" {
		return sdkerrors.Wrap(ErrEmpty, "alias")
	}
	if len(alias) > MaxAliasLength {
		return sdkerrors.Wrapf(ErrInvalid, "alias exceeds %d bytes", MaxAliasLength)
	}
	return nil
}

func validateAliased(addr sdk.AccAddress, alias string) error {
	if err := sdk.VerifyAddressFormat(addr); err != nil {
		return sdkerrors.Wrap(err, "address")
	}
	return sdkerrors.Wrap(ValidateAlias(alias), "alias")
}

// EthAddress links a hub account to its address on an external chain
type EthAddress struct {
	Address    sdk.AccAddress `json:"address" yaml:"address"`
	ExternalID string         `json:"external_id" yaml:"external_id"`
}

// ValidateBasic performs stateless checks
func (e EthAddress) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(e.Address); err != nil {
		return sdkerrors.Wrap(err, "address")
	}
	if e.ExternalID == "" {
		return sdkerrors.Wrap(ErrEmpty, "external id")
	}
	return nil
}
