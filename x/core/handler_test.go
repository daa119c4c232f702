package core

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filament-network/hub/x/core/keeper"
	"github.com/filament-network/hub/x/core/types"
)

type unknownMsg struct{}

func (unknownMsg) Route() string        { return types.RouterKey }
func (unknownMsg) Type() string         { return "unknown" }
func (unknownMsg) ValidateBasic() error { return nil }

func TestHandler(t *testing.T) {
	genesis := types.GenesisStateFixture(func(g *types.GenesisState) {
		g.Campaigns = []types.Campaign{types.CampaignFixture(func(c *types.Campaign) {
			c.Phase = types.PhaseCriteria
		})}
	})
	campaigner := genesis.Campaigns[0].Campaigner
	delegate := genesis.Campaigns[0].Delegates[0].Address
	parentCtx, k := keeper.CreateTestInputWithGenesis(t, genesis)
	h := NewHandler(k)

	specs := map[string]struct {
		sender    sdk.AccAddress
		src       types.CallMessage
		expErr    *sdkerrors.Error
		expData   []byte
		expEvents []string
	}{
		"create campaign returns id": {
			sender:    types.RandomAccAddress(),
			src:       types.MsgCreateCampaignFixture(),
			expData:   sdk.Uint64ToBigEndian(1),
			expEvents: []string{types.EventTypeCampaignInitialized},
		},
		"propose criteria returns proposal id": {
			sender:    delegate,
			src:       &types.MsgProposeCriteria{CampaignID: 0, Criteria: types.Criteria{types.CriterionFixture()}},
			expData:   sdk.Uint64ToBigEndian(0),
			expEvents: []string{types.EventTypeCriteriaProposed},
		},
		"confirm criteria": {
			sender:    campaigner,
			src:       &types.MsgConfirmCriteria{CampaignID: 0},
			expEvents: []string{types.EventTypeCriteriaConfirmed},
		},
		"register relayer": {
			sender:    genesis.Admin,
			src:       &types.MsgRegisterRelayer{Address: types.RandomAccAddress(), Alias: "relayer2"},
			expEvents: []string{types.EventTypeRelayerRegistered},
		},
		"stateless validation fails": {
			sender: campaigner,
			src:    &types.MsgProposeCriteria{CampaignID: 0},
			expErr: types.ErrMissingCriteria,
		},
		"keeper rejects": {
			sender: types.RandomAccAddress(),
			src:    &types.MsgConfirmCriteria{CampaignID: 0},
			expErr: types.ErrUnauthorized,
		},
		"unknown message": {
			sender: campaigner,
			src:    unknownMsg{},
			expErr: sdkerrors.ErrUnknownRequest,
		},
		"nil message": {
			sender: campaigner,
			expErr: sdkerrors.ErrUnknownRequest,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, _ := parentCtx.CacheContext()
			em := sdk.NewEventManager()
			ctx = ctx.WithEventManager(em)
			before := keeper.ExportGenesis(ctx, k)
			// when
			gotRes, gotErr := h(ctx, spec.sender, spec.src)
			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %+v", gotErr)
				assert.Nil(t, gotRes)
				assert.Empty(t, em.Events())
				after := keeper.ExportGenesis(ctx, k)
				assert.Equal(t, types.ModuleCdc.MustMarshalJSON(before), types.ModuleCdc.MustMarshalJSON(after))
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expData, gotRes.Data)
			var gotEvents []string
			for _, e := range em.Events() {
				gotEvents = append(gotEvents, e.Type)
			}
			assert.Equal(t, spec.expEvents, gotEvents)
			assert.Len(t, gotRes.Events, len(spec.expEvents))
		})
	}
}

func TestHandlerCommitsOnlyOnSuccess(t *testing.T) {
	genesis := types.GenesisStateFixture()
	relayer := genesis.Relayers[0].Address
	ctx, k := keeper.CreateTestInputWithGenesis(t, genesis)
	h := NewHandler(k)

	_, err := h(ctx, relayer, &types.MsgUpdateVotingPower{Address: relayer, Power: 42})
	require.NoError(t, err)
	got, _ := k.GetPower(ctx, relayer)
	assert.Equal(t, uint64(42), got)

	_, err = h(ctx, types.RandomAccAddress(), &types.MsgUpdateVotingPower{Address: relayer, Power: 1})
	require.True(t, types.ErrRelayerNotRegistered.Is(err), "got %+v", err)
	got, _ = k.GetPower(ctx, relayer)
	assert.Equal(t, uint64(42), got)
	assert.Equal(t, uint64(42), k.GetTotalPower(ctx))
}
