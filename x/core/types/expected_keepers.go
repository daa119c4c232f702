package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// ConfirmationPolicy decides who may accept or reject the criteria of a campaign
type ConfirmationPolicy interface {
	CanConfirm(ctx sdk.Context, campaign Campaign, sender sdk.AccAddress) bool
}
