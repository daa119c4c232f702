package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/filament-network/hub/x/core/types"
)

var _ types.QueryServer = &Querier{}

// ViewKeeper is the read only subset of the keeper
type ViewKeeper interface {
	GetAdmin(ctx sdk.Context) (sdk.AccAddress, bool)
	GetCampaign(ctx sdk.Context, id uint64) (types.Campaign, bool)
	GetCampaignsByCampaigner(ctx sdk.Context, campaigner sdk.AccAddress) []types.Campaign
	GetCriteriaProposal(ctx sdk.Context, campaignID, proposalID uint64) (types.CriteriaProposal, bool)
	GetCriteriaProposals(ctx sdk.Context, campaignID uint64) []types.CriteriaProposal
	GetSegment(ctx sdk.Context, campaignID uint64) (types.Segment, bool)
	GetIndexer(ctx sdk.Context, addr sdk.AccAddress) (types.Indexer, bool)
	GetIndexers(ctx sdk.Context) []types.Indexer
	GetRelayer(ctx sdk.Context, addr sdk.AccAddress) (types.Relayer, bool)
	GetRelayers(ctx sdk.Context) []types.Relayer
	GetDelegates(ctx sdk.Context) []types.Delegate
	GetPower(ctx sdk.Context, addr sdk.AccAddress) (uint64, bool)
	GetRanking(ctx sdk.Context) []types.PowerEntry
	GetTotalPower(ctx sdk.Context) uint64
}

// Querier serves the read only surface. It never writes.
type Querier struct {
	keeper ViewKeeper
}

// NewQuerier constructor
func NewQuerier(keeper ViewKeeper) *Querier {
	return &Querier{keeper: keeper}
}

func (q Querier) Admin(c context.Context, _ *types.QueryAdminRequest) (*types.QueryAdminResponse, error) {
	admin, ok := q.keeper.GetAdmin(sdk.UnwrapSDKContext(c))
	if !ok {
		return nil, status.Error(codes.NotFound, types.ErrAdminNotSet.Error())
	}
	return &types.QueryAdminResponse{Admin: admin}, nil
}

func (q Querier) Campaign(c context.Context, req *types.QueryCampaignRequest) (*types.QueryCampaignResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	campaign, ok := q.keeper.GetCampaign(sdk.UnwrapSDKContext(c), req.CampaignID)
	if !ok {
		return nil, status.Error(codes.NotFound, "campaign")
	}
	return &types.QueryCampaignResponse{Campaign: campaign}, nil
}

func (q Querier) CampaignsByCampaigner(c context.Context, req *types.QueryCampaignsByCampaignerRequest) (*types.QueryCampaignsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if err := sdk.VerifyAddressFormat(req.Campaigner); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &types.QueryCampaignsResponse{
		Campaigns: q.keeper.GetCampaignsByCampaigner(sdk.UnwrapSDKContext(c), req.Campaigner),
	}, nil
}

func (q Querier) CriteriaProposal(c context.Context, req *types.QueryCriteriaProposalRequest) (*types.QueryCriteriaProposalResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	p, ok := q.keeper.GetCriteriaProposal(sdk.UnwrapSDKContext(c), req.CampaignID, req.ProposalID)
	if !ok {
		return nil, status.Error(codes.NotFound, "criteria proposal")
	}
	return &types.QueryCriteriaProposalResponse{Proposal: p}, nil
}

func (q Querier) CriteriaProposals(c context.Context, req *types.QueryCriteriaProposalsRequest) (*types.QueryCriteriaProposalsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	return &types.QueryCriteriaProposalsResponse{
		Proposals: q.keeper.GetCriteriaProposals(sdk.UnwrapSDKContext(c), req.CampaignID),
	}, nil
}

func (q Querier) Segment(c context.Context, req *types.QuerySegmentRequest) (*types.QuerySegmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	s, ok := q.keeper.GetSegment(sdk.UnwrapSDKContext(c), req.CampaignID)
	if !ok {
		return nil, status.Error(codes.NotFound, "segment")
	}
	return &types.QuerySegmentResponse{Segment: s}, nil
}

func (q Querier) Indexer(c context.Context, req *types.QueryAddressRequest) (*types.QueryIndexerResponse, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}
	v, ok := q.keeper.GetIndexer(sdk.UnwrapSDKContext(c), req.Address)
	if !ok {
		return nil, status.Error(codes.NotFound, "indexer")
	}
	return &types.QueryIndexerResponse{Indexer: v}, nil
}

func (q Querier) Indexers(c context.Context, _ *types.QueryListRequest) (*types.QueryIndexersResponse, error) {
	return &types.QueryIndexersResponse{Indexers: q.keeper.GetIndexers(sdk.UnwrapSDKContext(c))}, nil
}

func (q Querier) Relayer(c context.Context, req *types.QueryAddressRequest) (*types.QueryRelayerResponse, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}
	v, ok := q.keeper.GetRelayer(sdk.UnwrapSDKContext(c), req.Address)
	if !ok {
		return nil, status.Error(codes.NotFound, "relayer")
	}
	return &types.QueryRelayerResponse{Relayer: v}, nil
}

func (q Querier) Relayers(c context.Context, _ *types.QueryListRequest) (*types.QueryRelayersResponse, error) {
	return &types.QueryRelayersResponse{Relayers: q.keeper.GetRelayers(sdk.UnwrapSDKContext(c))}, nil
}

func (q Querier) Delegates(c context.Context, _ *types.QueryListRequest) (*types.QueryDelegatesResponse, error) {
	return &types.QueryDelegatesResponse{Delegates: q.keeper.GetDelegates(sdk.UnwrapSDKContext(c))}, nil
}

func (q Querier) Power(c context.Context, req *types.QueryAddressRequest) (*types.QueryPowerResponse, error) {
	if err := validateAddressRequest(req); err != nil {
		return nil, err
	}
	p, ok := q.keeper.GetPower(sdk.UnwrapSDKContext(c), req.Address)
	if !ok {
		return nil, status.Error(codes.NotFound, "power")
	}
	return &types.QueryPowerResponse{Power: p}, nil
}

func (q Querier) Ranking(c context.Context, _ *types.QueryListRequest) (*types.QueryRankingResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	return &types.QueryRankingResponse{
		Entries:    q.keeper.GetRanking(ctx),
		TotalPower: q.keeper.GetTotalPower(ctx),
	}, nil
}

func validateAddressRequest(req *types.QueryAddressRequest) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "empty request")
	}
	if err := sdk.VerifyAddressFormat(req.Address); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}
