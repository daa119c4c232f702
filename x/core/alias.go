// nolint

package core

import (
	"github.com/filament-network/hub/x/core/keeper"
	"github.com/filament-network/hub/x/core/types"
)

const (
	ModuleName   = types.ModuleName
	StoreKey     = types.StoreKey
	RouterKey    = types.RouterKey
	QuerierRoute = types.QuerierRoute
)

var (
	NewKeeper        = keeper.NewKeeper
	NewQuerier       = keeper.NewQuerier
	NewLegacyQuerier = keeper.NewLegacyQuerier
	ModuleCdc        = types.ModuleCdc
)

type (
	Keeper       = keeper.Keeper
	GenesisState = types.GenesisState
	SignedCall   = types.SignedCall
)
