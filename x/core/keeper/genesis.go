package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/types"
)

// InitGenesis applies the genesis state in a fixed order: admin, campaigns with
// their proposals and segments, delegate pool, indexer and relayer registries,
// external addresses and finally powers with the materialized ranking.
func InitGenesis(ctx sdk.Context, k Keeper, state types.GenesisState) error {
	if err := types.ValidateGenesis(state); err != nil {
		return sdkerrors.Wrap(err, "genesis")
	}
	if len(state.Admin) != 0 {
		k.SetAdmin(ctx, state.Admin)
	}

	for i, c := range state.Campaigns {
		c.ID = uint64(i)
		k.importCampaign(ctx, c)
	}
	k.nextCampaignID.SetUint64(ctx, uint64(len(state.Campaigns)))
	for _, p := range state.Proposals {
		k.setCriteriaProposal(ctx, p)
	}
	for _, s := range state.Segments {
		k.segments.Set(ctx, types.CampaignKey(s.CampaignID), s.Segment)
	}

	for _, d := range state.Delegates {
		k.AddDelegate(ctx, d)
	}
	for _, v := range state.Indexers {
		k.indexers.set(ctx, v.Address, v.Alias)
	}
	for _, v := range state.Relayers {
		k.relayers.set(ctx, v.Address, v.Alias)
	}
	for _, v := range state.EthAddresses {
		k.SetEthAddress(ctx, v.Address, v.ExternalID)
	}
	if err := k.SetPowers(ctx, state.Powers); err != nil {
		return sdkerrors.Wrap(err, "powers")
	}
	ModuleLogger(ctx).Info("genesis imported", "campaigns", len(state.Campaigns), "indexers", len(state.Indexers), "relayers", len(state.Relayers))
	return nil
}

// ExportGenesis returns a genesis state that InitGenesis restores to the current state.
// Powers are exported in ranking order.
func ExportGenesis(ctx sdk.Context, k Keeper) types.GenesisState {
	r := types.DefaultGenesisState()
	if admin, ok := k.GetAdmin(ctx); ok {
		r.Admin = admin
	}
	k.IterateCampaigns(ctx, func(c types.Campaign) bool {
		r.Campaigns = append(r.Campaigns, c)
		r.Proposals = append(r.Proposals, k.GetCriteriaProposals(ctx, c.ID)...)
		return false
	})
	k.IterateSegments(ctx, func(campaignID uint64, s types.Segment) bool {
		r.Segments = append(r.Segments, types.GenesisSegment{CampaignID: campaignID, Segment: s})
		return false
	})
	r.Delegates = append(r.Delegates, k.GetDelegates(ctx)...)
	r.Indexers = append(r.Indexers, k.GetIndexers(ctx)...)
	r.Relayers = append(r.Relayers, k.GetRelayers(ctx)...)
	r.Powers = append(r.Powers, k.GetRanking(ctx)...)
	k.IterateEthAddresses(ctx, func(e types.EthAddress) bool {
		r.EthAddresses = append(r.EthAddresses, e)
		return false
	})
	return r
}
