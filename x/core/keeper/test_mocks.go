package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/filament-network/hub/x/core/types"
)

var _ ViewKeeper = ViewKeeperMock{}

// ViewKeeperMock mocks the read only keeper methods
type ViewKeeperMock struct {
	GetAdminFn                 func(ctx sdk.Context) (sdk.AccAddress, bool)
	GetCampaignFn              func(ctx sdk.Context, id uint64) (types.Campaign, bool)
	GetCampaignsByCampaignerFn func(ctx sdk.Context, campaigner sdk.AccAddress) []types.Campaign
	GetCriteriaProposalFn      func(ctx sdk.Context, campaignID, proposalID uint64) (types.CriteriaProposal, bool)
	GetCriteriaProposalsFn     func(ctx sdk.Context, campaignID uint64) []types.CriteriaProposal
	GetSegmentFn               func(ctx sdk.Context, campaignID uint64) (types.Segment, bool)
	GetIndexerFn               func(ctx sdk.Context, addr sdk.AccAddress) (types.Indexer, bool)
	GetIndexersFn              func(ctx sdk.Context) []types.Indexer
	GetRelayerFn               func(ctx sdk.Context, addr sdk.AccAddress) (types.Relayer, bool)
	GetRelayersFn              func(ctx sdk.Context) []types.Relayer
	GetDelegatesFn             func(ctx sdk.Context) []types.Delegate
	GetPowerFn                 func(ctx sdk.Context, addr sdk.AccAddress) (uint64, bool)
	GetRankingFn               func(ctx sdk.Context) []types.PowerEntry
	GetTotalPowerFn            func(ctx sdk.Context) uint64
}

func (m ViewKeeperMock) GetAdmin(ctx sdk.Context) (sdk.AccAddress, bool) {
	if m.GetAdminFn == nil {
		panic("not expected to be called")
	}
	return m.GetAdminFn(ctx)
}

func (m ViewKeeperMock) GetCampaign(ctx sdk.Context, id uint64) (types.Campaign, bool) {
	if m.GetCampaignFn == nil {
		panic("not expected to be called")
	}
	return m.GetCampaignFn(ctx, id)
}

func (m ViewKeeperMock) GetCampaignsByCampaigner(ctx sdk.Context, campaigner sdk.AccAddress) []types.Campaign {
	if m.GetCampaignsByCampaignerFn == nil {
		panic("not expected to be called")
	}
	return m.GetCampaignsByCampaignerFn(ctx, campaigner)
}

func (m ViewKeeperMock) GetCriteriaProposal(ctx sdk.Context, campaignID, proposalID uint64) (types.CriteriaProposal, bool) {
	if m.GetCriteriaProposalFn == nil {
		panic("not expected to be called")
	}
	return m.GetCriteriaProposalFn(ctx, campaignID, proposalID)
}

func (m ViewKeeperMock) GetCriteriaProposals(ctx sdk.Context, campaignID uint64) []types.CriteriaProposal {
	if m.GetCriteriaProposalsFn == nil {
		panic("not expected to be called")
	}
	return m.GetCriteriaProposalsFn(ctx, campaignID)
}

func (m ViewKeeperMock) GetSegment(ctx sdk.Context, campaignID uint64) (types.Segment, bool) {
	if m.GetSegmentFn == nil {
		panic("not expected to be called")
	}
	return m.GetSegmentFn(ctx, campaignID)
}

func (m ViewKeeperMock) GetIndexer(ctx sdk.Context, addr sdk.AccAddress) (types.Indexer, bool) {
	if m.GetIndexerFn == nil {
		panic("not expected to be called")
	}
	return m.GetIndexerFn(ctx, addr)
}

func (m ViewKeeperMock) GetIndexers(ctx sdk.Context) []types.Indexer {
	if m.GetIndexersFn == nil {
		panic("not expected to be called")
	}
	return m.GetIndexersFn(ctx)
}

func (m ViewKeeperMock) GetRelayer(ctx sdk.Context, addr sdk.AccAddress) (types.Relayer, bool) {
	if m.GetRelayerFn == nil {
		panic("not expected to be called")
	}
	return m.GetRelayerFn(ctx, addr)
}

func (m ViewKeeperMock) GetRelayers(ctx sdk.Context) []types.Relayer {
	if m.GetRelayersFn == nil {
		panic("not expected to be called")
	}
	return m.GetRelayersFn(ctx)
}

func (m ViewKeeperMock) GetDelegates(ctx sdk.Context) []types.Delegate {
	if m.GetDelegatesFn == nil {
		panic("not expected to be called")
	}
	return m.GetDelegatesFn(ctx)
}

func (m ViewKeeperMock) GetPower(ctx sdk.Context, addr sdk.AccAddress) (uint64, bool) {
	if m.GetPowerFn == nil {
		panic("not expected to be called")
	}
	return m.GetPowerFn(ctx, addr)
}

func (m ViewKeeperMock) GetRanking(ctx sdk.Context) []types.PowerEntry {
	if m.GetRankingFn == nil {
		panic("not expected to be called")
	}
	return m.GetRankingFn(ctx)
}

func (m ViewKeeperMock) GetTotalPower(ctx sdk.Context) uint64 {
	if m.GetTotalPowerFn == nil {
		panic("not expected to be called")
	}
	return m.GetTotalPowerFn(ctx)
}
