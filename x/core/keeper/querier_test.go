package keeper

import (
	"strings"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/filament-network/hub/x/core/types"
)

func TestLegacyQuerier(t *testing.T) {
	genesis := types.GenesisStateFixture(func(g *types.GenesisState) {
		g.Campaigns = []types.Campaign{types.CampaignFixture()}
	})
	ctx, k := CreateTestInputWithGenesis(t, genesis)
	indexer := genesis.Indexers[0]
	relayer := genesis.Relayers[0]
	campaigner := genesis.Campaigns[0].Campaigner

	specs := map[string]struct {
		path   string
		expErr *sdkerrors.Error
		assert func(t *testing.T, bz []byte)
	}{
		"admin": {
			path: types.QueryAdmin,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryAdminResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, genesis.Admin, rsp.Admin)
			},
		},
		"campaign": {
			path: types.QueryCampaign + "/0",
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryCampaignResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, campaigner, rsp.Campaign.Campaigner)
			},
		},
		"campaigns by campaigner": {
			path: types.QueryCampaignsByCampaigner + "/" + campaigner.String(),
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryCampaignsResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Len(t, rsp.Campaigns, 1)
			},
		},
		"indexer": {
			path: types.QueryIndexer + "/" + indexer.Address.String(),
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryIndexerResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, indexer, rsp.Indexer)
			},
		},
		"relayers": {
			path: types.QueryRelayers,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryRelayersResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, []types.Relayer{relayer}, rsp.Relayers)
			},
		},
		"ranking": {
			path: types.QueryRanking,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryRankingResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, uint64(100), rsp.TotalPower)
				assert.Len(t, rsp.Entries, 1)
			},
		},
		"unknown campaign": {
			path:   types.QueryCampaign + "/1",
			expErr: types.ErrNotFound,
		},
		"missing segment": {
			path:   types.QuerySegment + "/0",
			expErr: types.ErrNotFound,
		},
		"malformed id": {
			path:   types.QueryCampaign + "/abc",
			expErr: sdkerrors.ErrInvalidRequest,
		},
		"missing id": {
			path:   types.QueryCriteriaProposal + "/0",
			expErr: sdkerrors.ErrInvalidRequest,
		},
		"malformed address": {
			path:   types.QueryPower + "/notbech32",
			expErr: sdkerrors.ErrInvalidAddress,
		},
		"unknown path": {
			path:   "unknown",
			expErr: sdkerrors.ErrUnknownRequest,
		},
	}
	querier := NewLegacyQuerier(k)
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			bz, gotErr := querier(ctx, strings.Split(spec.path, "/"), abci.RequestQuery{})
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %+v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			spec.assert(t, bz)
		})
	}
}
