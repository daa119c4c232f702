package core

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/keeper"
	"github.com/filament-network/hub/x/core/types"
)

// DefaultGenesis returns the amino JSON of the default genesis state
func DefaultGenesis() json.RawMessage {
	return types.ModuleCdc.MustMarshalJSON(types.DefaultGenesisState())
}

// ValidateGenesis decodes and validates the module section of a genesis document
func ValidateGenesis(bz json.RawMessage) error {
	state, err := DecodeGenesis(bz)
	if err != nil {
		return err
	}
	return types.ValidateGenesis(state)
}

// DecodeGenesis decodes the module section of a genesis document
func DecodeGenesis(bz json.RawMessage) (types.GenesisState, error) {
	var state types.GenesisState
	if err := types.ModuleCdc.UnmarshalJSON(bz, &state); err != nil {
		return types.GenesisState{}, sdkerrors.Wrapf(sdkerrors.ErrJSONUnmarshal, "%s genesis: %s", types.ModuleName, err)
	}
	return state, nil
}

// InitGenesis applies the module section of a genesis document
func InitGenesis(ctx sdk.Context, k keeper.Keeper, bz json.RawMessage) error {
	state, err := DecodeGenesis(bz)
	if err != nil {
		return err
	}
	return keeper.InitGenesis(ctx, k, state)
}

// ExportGenesis returns the amino JSON of the current module state
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) json.RawMessage {
	return types.ModuleCdc.MustMarshalJSON(keeper.ExportGenesis(ctx, k))
}
