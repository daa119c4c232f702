package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// legacy querier paths
const (
	QueryAdmin                 = "admin"
	QueryCampaign              = "campaign"
	QueryCampaignsByCampaigner = "campaigns-by-campaigner"
	QueryCriteriaProposal      = "proposal"
	QueryCriteriaProposals     = "proposals"
	QuerySegment               = "segment"
	QueryIndexer               = "indexer"
	QueryIndexers              = "indexers"
	QueryRelayer               = "relayer"
	QueryRelayers              = "relayers"
	QueryDelegates             = "delegates"
	QueryPower                 = "power"
	QueryRanking               = "ranking"
)

// QueryServer is the read only surface of the module
type QueryServer interface {
	Admin(context.Context, *QueryAdminRequest) (*QueryAdminResponse, error)
	Campaign(context.Context, *QueryCampaignRequest) (*QueryCampaignResponse, error)
	CampaignsByCampaigner(context.Context, *QueryCampaignsByCampaignerRequest) (*QueryCampaignsResponse, error)
	CriteriaProposal(context.Context, *QueryCriteriaProposalRequest) (*QueryCriteriaProposalResponse, error)
	CriteriaProposals(context.Context, *QueryCriteriaProposalsRequest) (*QueryCriteriaProposalsResponse, error)
	Segment(context.Context, *QuerySegmentRequest) (*QuerySegmentResponse, error)
	Indexer(context.Context, *QueryAddressRequest) (*QueryIndexerResponse, error)
	Indexers(context.Context, *QueryListRequest) (*QueryIndexersResponse, error)
	Relayer(context.Context, *QueryAddressRequest) (*QueryRelayerResponse, error)
	Relayers(context.Context, *QueryListRequest) (*QueryRelayersResponse, error)
	Delegates(context.Context, *QueryListRequest) (*QueryDelegatesResponse, error)
	Power(context.Context, *QueryAddressRequest) (*QueryPowerResponse, error)
	Ranking(context.Context, *QueryListRequest) (*QueryRankingResponse, error)
}

type QueryAdminRequest struct{}

type QueryAdminResponse struct {
	Admin sdk.AccAddress `json:"admin" yaml:"admin"`
}

type QueryCampaignRequest struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

type QueryCampaignResponse struct {
	Campaign Campaign `json:"campaign" yaml:"campaign"`
}

type QueryCampaignsByCampaignerRequest struct {
	Campaigner sdk.AccAddress `json:"campaigner" yaml:"campaigner"`
}

type QueryCampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns" yaml:"campaigns"`
}

type QueryCriteriaProposalRequest struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
	ProposalID uint64 `json:"proposal_id" yaml:"proposal_id"`
}

type QueryCriteriaProposalResponse struct {
	Proposal CriteriaProposal `json:"proposal" yaml:"proposal"`
}

type QueryCriteriaProposalsRequest struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

type QueryCriteriaProposalsResponse struct {
	Proposals []CriteriaProposal `json:"proposals" yaml:"proposals"`
}

type QuerySegmentRequest struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

type QuerySegmentResponse struct {
	Segment Segment `json:"segment" yaml:"segment"`
}

// QueryAddressRequest looks up a single registry or power entry
type QueryAddressRequest struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
}

// QueryListRequest lists a full collection in its canonical order
type QueryListRequest struct{}

type QueryIndexerResponse struct {
	Indexer Indexer `json:"indexer" yaml:"indexer"`
}

type QueryIndexersResponse struct {
	Indexers []Indexer `json:"indexers" yaml:"indexers"`
}

type QueryRelayerResponse struct {
	Relayer Relayer `json:"relayer" yaml:"relayer"`
}

type QueryRelayersResponse struct {
	Relayers []Relayer `json:"relayers" yaml:"relayers"`
}

type QueryDelegatesResponse struct {
	Delegates []Delegate `json:"delegates" yaml:"delegates"`
}

type QueryPowerResponse struct {
	Power uint64 `json:"power" yaml:"power"`
}

type QueryRankingResponse struct {
	Entries    []PowerEntry `json:"entries" yaml:"entries"`
	TotalPower uint64       `json:"total_power" yaml:"total_power"`
}
