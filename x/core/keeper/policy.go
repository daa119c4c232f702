package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/filament-network/hub/x/core/types"
)

var (
	_ types.ConfirmationPolicy = CampaignerPolicy{}
	_ types.ConfirmationPolicy = RankedRelayerPolicy{}
)

// CampaignerPolicy lets only the campaigner confirm the criteria of a campaign
type CampaignerPolicy struct{}

func (CampaignerPolicy) CanConfirm(_ sdk.Context, campaign types.Campaign, sender sdk.AccAddress) bool {
	return campaign.Campaigner.Equals(sender)
}

// RankingSource is the subset of the keeper the ranked policy reads from
type RankingSource interface {
	IsRelayer(ctx sdk.Context, addr sdk.AccAddress) bool
	GetRanking(ctx sdk.Context) []types.PowerEntry
}

// RankedRelayerPolicy lets the n highest ranked registered relayers confirm criteria.
// Ranked addresses that are not relayers do not take a slot.
type RankedRelayerPolicy struct {
	source RankingSource
	topN   int
}

func NewRankedRelayerPolicy(source RankingSource, topN int) RankedRelayerPolicy {
	return RankedRelayerPolicy{source: source, topN: topN}
}

func (p RankedRelayerPolicy) CanConfirm(ctx sdk.Context, _ types.Campaign, sender sdk.AccAddress) bool {
	if !p.source.IsRelayer(ctx, sender) {
		return false
	}
	var seen int
	for _, e := range p.source.GetRanking(ctx) {
		if seen >= p.topN {
			return false
		}
		if !p.source.IsRelayer(ctx, e.Address) {
			continue
		}
		if e.Address.Equals(sender) {
			return true
		}
		seen++
	}
	return false
}
