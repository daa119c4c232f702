package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filament-network/hub/x/core/keeper"
	"github.com/filament-network/hub/x/core/types"
)

func TestRoutes(t *testing.T) {
	genesis := types.GenesisStateFixture(func(g *types.GenesisState) {
		g.Campaigns = []types.Campaign{types.CampaignFixture()}
	})
	ctx, k := keeper.CreateTestInputWithGenesis(t, genesis)
	r := mux.NewRouter()
	RegisterRoutes(r, keeper.NewQuerier(k), func() (sdk.Context, error) { return ctx, nil })

	relayer := genesis.Relayers[0].Address
	campaigner := genesis.Campaigns[0].Campaigner

	specs := map[string]struct {
		path      string
		expStatus int
		assert    func(t *testing.T, bz []byte)
	}{
		"admin": {
			path:      "/core/admin",
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryAdminResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, genesis.Admin, rsp.Admin)
			},
		},
		"campaign": {
			path:      "/core/campaigns/0",
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryCampaignResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, genesis.Campaigns[0].Title, rsp.Campaign.Title)
				assert.True(t, campaigner.Equals(rsp.Campaign.Campaigner))
			},
		},
		"campaigns by campaigner": {
			path:      "/core/campaigners/" + campaigner.String() + "/campaigns",
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryCampaignsResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				require.Len(t, rsp.Campaigns, 1)
				assert.Equal(t, uint64(0), rsp.Campaigns[0].ID)
			},
		},
		"relayers": {
			path:      "/core/relayers",
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryRelayersResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				require.Len(t, rsp.Relayers, 1)
				assert.Equal(t, "relayer1", rsp.Relayers[0].Alias)
			},
		},
		"indexer": {
			path:      "/core/indexers/" + genesis.Indexers[0].Address.String(),
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryIndexerResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, "idx1", rsp.Indexer.Alias)
			},
		},
		"delegates": {
			path:      "/core/delegates",
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryDelegatesResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Len(t, rsp.Delegates, 3)
			},
		},
		"power": {
			path:      "/core/powers/" + relayer.String(),
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryPowerResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, uint64(100), rsp.Power)
			},
		},
		"ranking": {
			path:      "/core/powers",
			expStatus: http.StatusOK,
			assert: func(t *testing.T, bz []byte) {
				var rsp types.QueryRankingResponse
				require.NoError(t, types.ModuleCdc.UnmarshalJSON(bz, &rsp))
				assert.Equal(t, uint64(100), rsp.TotalPower)
				require.Len(t, rsp.Entries, 1)
			},
		},
		"unknown campaign": {
			path:      "/core/campaigns/99",
			expStatus: http.StatusNotFound,
		},
		"no segment": {
			path:      "/core/campaigns/0/segment",
			expStatus: http.StatusNotFound,
		},
		"unknown power": {
			path:      "/core/powers/" + types.RandomAccAddress().String(),
			expStatus: http.StatusNotFound,
		},
		"invalid id": {
			path:      "/core/campaigns/abc",
			expStatus: http.StatusBadRequest,
		},
		"invalid address": {
			path:      "/core/relayers/notanaddress",
			expStatus: http.StatusBadRequest,
		},
		"unknown route": {
			path:      "/core/unknown",
			expStatus: http.StatusNotFound,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			// when
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, spec.path, nil))
			// then
			require.Equal(t, spec.expStatus, rec.Code, rec.Body.String())
			if spec.assert != nil {
				spec.assert(t, rec.Body.Bytes())
			}
		})
	}
}

func TestRoutesRejectWrites(t *testing.T) {
	ctx, k := keeper.CreateTestInputWithGenesis(t, types.GenesisStateFixture())
	r := mux.NewRouter()
	RegisterRoutes(r, keeper.NewQuerier(k), func() (sdk.Context, error) { return ctx, nil })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/core/admin", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRoutesContextFailure(t *testing.T) {
	_, k := keeper.CreateTestInputWithGenesis(t, types.GenesisStateFixture())
	r := mux.NewRouter()
	RegisterRoutes(r, keeper.NewQuerier(k), func() (sdk.Context, error) { return sdk.Context{}, errors.New("no state") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/core/admin", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
