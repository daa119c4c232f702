package keeper

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filament-network/hub/x/core/types"
)

func TestCampaignLifecycle(t *testing.T) {
	admin := types.RandomAccAddress()
	indexer := types.RandomAccAddress()
	campaigner := types.RandomAccAddress()
	ctx, k := CreateTestInputWithGenesis(t, types.GenesisState{
		Admin:    admin,
		Indexers: []types.Indexer{{Address: indexer, Alias: "idx1"}},
	})
	q := NewQuerier(k)

	id, err := k.CreateCampaign(ctx, campaigner, *types.MsgCreateCampaignFixture(func(m *types.MsgCreateCampaign) {
		m.Indexer = indexer
	}))
	require.NoError(t, err)
	require.Equal(t, uint64(0), id)
	assertPhase(t, ctx, k, id, types.PhaseInit)

	require.NoError(t, k.OpenCriteria(ctx, campaigner, id))
	require.NoError(t, k.ConfirmCriteria(ctx, campaigner, id, nil))
	assertPhase(t, ctx, k, id, types.PhasePublish)

	require.NoError(t, k.IndexCampaign(ctx, indexer, id))
	assertPhase(t, ctx, k, id, types.PhaseIndexing)

	data := &types.GithubSegment{Entries: []types.GithubEntry{
		{ExternalID: 42, Payout: sdk.NewCoins(sdk.NewInt64Coin("ufila", 1000))},
	}}
	segment, err := types.NewEd25519Segment(ed25519.GenPrivKey(), data, sdk.NewUint(1700000000))
	require.NoError(t, err)
	require.NoError(t, k.PostSegment(ctx, indexer, id, segment))
	assertPhase(t, ctx, k, id, types.PhaseDistribution)

	rsp, err := q.Segment(sdk.WrapSDKContext(ctx), &types.QuerySegmentRequest{CampaignID: id})
	require.NoError(t, err)
	require.IsType(t, &types.GithubSegment{}, rsp.Segment.Data)
	got := rsp.Segment.Data.(*types.GithubSegment)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, uint64(42), got.Entries[0].ExternalID)
	assert.Equal(t, "1000ufila", got.Entries[0].Payout.String())
	require.NoError(t, rsp.Segment.Verify())

	// evidence is admitted only once
	gotErr := k.PostSegment(ctx, indexer, id, segment)
	assert.True(t, types.ErrSegmentExists.Is(gotErr), "got %+v", gotErr)

	require.NoError(t, k.SettleCampaign(ctx, campaigner, id))
	require.NoError(t, k.FinalizeCampaign(ctx, campaigner, id))
	assertPhase(t, ctx, k, id, types.PhaseSettled)
	assert.True(t, types.ErrInvalidTransition.Is(k.CancelCampaign(ctx, campaigner, id)))
}

func TestRegisterIndexerByNonAdminLeavesRegistry(t *testing.T) {
	admin := types.RandomAccAddress()
	indexer := types.Indexer{Address: types.RandomAccAddress(), Alias: "idx1"}
	ctx, k := CreateTestInputWithGenesis(t, types.GenesisState{
		Admin:    admin,
		Indexers: []types.Indexer{indexer},
	})

	gotErr := k.RegisterIndexer(ctx, types.RandomAccAddress(), types.RandomAccAddress(), "intruder")
	require.True(t, types.ErrSenderNotAdmin.Is(gotErr), "got %+v", gotErr)
	assert.Equal(t, []types.Indexer{indexer}, k.GetIndexers(ctx))
}

func assertPhase(t *testing.T, ctx sdk.Context, k Keeper, id uint64, exp types.Phase) {
	t.Helper()
	c, found := k.GetCampaign(ctx, id)
	require.True(t, found)
	assert.Equal(t, exp, c.Phase)
}
