package keeper

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/filament-network/hub/x/core/types"
)

// CreateTestInput mounts the module store on an in memory db and returns a keeper without genesis applied
func CreateTestInput(t testing.TB, opts ...Option) (sdk.Context, Keeper) {
	db := dbm.NewMemDB()
	keyCore := sdk.NewKVStoreKey(types.StoreKey)
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(keyCore, sdk.StoreTypeIAVL, db)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())
	return ctx, NewKeeper(types.ModuleCdc, keyCore, opts...)
}

// CreateTestInputWithGenesis returns a keeper with the given genesis state applied
func CreateTestInputWithGenesis(t testing.TB, state types.GenesisState, opts ...Option) (sdk.Context, Keeper) {
	ctx, k := CreateTestInput(t, opts...)
	require.NoError(t, InitGenesis(ctx, k, state))
	return ctx, k
}
