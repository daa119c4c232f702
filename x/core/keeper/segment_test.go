package keeper

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filament-network/hub/x/core/types"
)

func TestPostSegment(t *testing.T) {
	genesis := types.GenesisStateFixture()
	indexer := genesis.Indexers[0].Address
	indexing := types.CampaignFixture(func(c *types.Campaign) {
		c.Phase = types.PhaseIndexing
		c.Indexer = indexer
		p := types.PlaybookFixture()
		c.Playbook = &p
	})
	existing := types.SignedSegmentFixture()

	specs := map[string]struct {
		campaign types.Campaign
		sender   sdk.AccAddress
		segment  types.Segment
		posted   bool
		expErr   *sdkerrors.Error
	}{
		"github segment": {
			campaign: indexing,
			sender:   indexer,
			segment:  types.SignedSegmentFixture(),
		},
		"plain segment": {
			campaign: indexing,
			sender:   indexer,
			segment: func() types.Segment {
				s, err := types.NewEd25519Segment(ed25519.GenPrivKey(), &types.PlainSegment{Allocations: []types.Allocation{
					{Recipient: "octocat", Amount: 1},
				}}, sdk.NewUint(1))
				require.NoError(t, err)
				return s
			}(),
		},
		"already posted": {
			campaign: indexing,
			sender:   indexer,
			segment:  types.SignedSegmentFixture(),
			posted:   true,
			expErr:   types.ErrSegmentExists,
		},
		"tampered data": {
			campaign: indexing,
			sender:   indexer,
			segment: types.SignedSegmentFixture(func(s *types.Segment) {
				s.Data = types.GithubSegmentFixture(func(g *types.GithubSegment) {
					g.Entries[0].Payout = sdk.NewCoins(sdk.NewInt64Coin("ufila", 999999))
				})
			}),
			expErr: types.ErrProofVerification,
		},
		"tampered signature": {
			campaign: indexing,
			sender:   indexer,
			segment: types.SignedSegmentFixture(func(s *types.Segment) {
				sig := s.Proof.(*types.Ed25519Signature)
				sig.Signature[0] ^= 0xff
			}),
			expErr: types.ErrProofVerification,
		},
		"missing proof": {
			campaign: indexing,
			sender:   indexer,
			segment: types.SignedSegmentFixture(func(s *types.Segment) {
				s.Proof = nil
			}),
			expErr: types.ErrEmpty,
		},
		"not the assigned indexer": {
			campaign: indexing,
			sender:   types.RandomAccAddress(),
			segment:  types.SignedSegmentFixture(),
			expErr:   types.ErrIndexerMismatch,
		},
		"not indexing": {
			campaign: types.CampaignFixture(func(c *types.Campaign) {
				c.Phase = types.PhasePublish
				c.Indexer = indexer
			}),
			sender:  indexer,
			segment: types.SignedSegmentFixture(),
			expErr:  types.ErrInvalidTransition,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, k := CreateTestInputWithGenesis(t, types.GenesisStateFixture(func(g *types.GenesisState) {
				*g = genesis
				g.Campaigns = []types.Campaign{spec.campaign}
				if spec.posted {
					g.Segments = []types.GenesisSegment{{CampaignID: 0, Segment: existing}}
				}
			}))
			em := sdk.NewEventManager()
			ctx = ctx.WithEventManager(em)
			// when
			gotErr := k.PostSegment(ctx, spec.sender, 0, spec.segment)
			// then
			got, _ := k.GetCampaign(ctx, 0)
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "got %+v", gotErr)
				assert.Equal(t, spec.campaign.Phase, got.Phase)
				assert.Equal(t, spec.posted, k.HasSegment(ctx, 0))
				if spec.posted {
					stored, found := k.GetSegment(ctx, 0)
					require.True(t, found)
					assert.JSONEq(t, string(types.ModuleCdc.MustMarshalJSON(existing)), string(types.ModuleCdc.MustMarshalJSON(stored)))
				}
				assert.Empty(t, em.Events())
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, types.PhaseDistribution, got.Phase)
			stored, found := k.GetSegment(ctx, 0)
			require.True(t, found)
			require.NoError(t, stored.Verify())
			assert.IsType(t, spec.segment.Data, stored.Data)
			require.Len(t, em.Events(), 1)
			assert.Equal(t, types.EventTypeSegmentPosted, em.Events()[0].Type)
		})
	}
}
