package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/types"
)

// ProposeCriteria stores a criteria proposal of a campaign delegate and returns the
// per campaign proposal id. Only legal in the criteria phase.
func (k Keeper) ProposeCriteria(ctx sdk.Context, sender sdk.AccAddress, campaignID uint64, criteria types.Criteria) (uint64, error) {
	c, err := k.mustGetCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if c.Phase != types.PhaseCriteria {
		return 0, sdkerrors.Wrapf(types.ErrInvalidCriteriaProposal, "campaign %d is %s", campaignID, c.Phase)
	}
	if !c.IsDelegate(sender) {
		return 0, sdkerrors.Wrapf(types.ErrInvalidProposer, "%s is not a delegate of campaign %d", sender, campaignID)
	}
	proposal := types.CriteriaProposal{
		CampaignID: campaignID,
		ProposalID: k.nextProposalID(ctx, campaignID),
		Proposer:   sender,
		Criteria:   criteria,
	}
	if err := proposal.ValidateBasic(); err != nil {
		return 0, sdkerrors.Wrap(types.ErrInvalidCriteriaProposal, err.Error())
	}
	k.setCriteriaProposal(ctx, proposal)
	k.emit(ctx, types.CriteriaProposed{CampaignID: campaignID, ProposalID: proposal.ProposalID, Proposer: sender})
	ModuleLogger(ctx).Info("criteria proposed", "campaign_id", campaignID, "proposal_id", proposal.ProposalID)
	return proposal.ProposalID, nil
}

func (k Keeper) nextProposalID(ctx sdk.Context, campaignID uint64) uint64 {
	id, _ := k.nextProposalIDs.GetUint64(ctx, types.CampaignKey(campaignID))
	return id
}

// setCriteriaProposal stores the proposal and advances the campaign proposal counter past it
func (k Keeper) setCriteriaProposal(ctx sdk.Context, p types.CriteriaProposal) {
	k.proposals.Set(ctx, types.ProposalKey(p.CampaignID, p.ProposalID), p)
	if p.ProposalID >= k.nextProposalID(ctx, p.CampaignID) {
		k.nextProposalIDs.SetUint64(ctx, types.CampaignKey(p.CampaignID), p.ProposalID+1)
	}
}

// GetCriteriaProposal returns the proposal and false when it does not exist
func (k Keeper) GetCriteriaProposal(ctx sdk.Context, campaignID, proposalID uint64) (types.CriteriaProposal, bool) {
	var p types.CriteriaProposal
	if !k.proposals.Get(ctx, types.ProposalKey(campaignID, proposalID), &p) {
		return types.CriteriaProposal{}, false
	}
	return p, true
}

// GetCriteriaProposals returns all proposals of a campaign in proposal id order
func (k Keeper) GetCriteriaProposals(ctx sdk.Context, campaignID uint64) []types.CriteriaProposal {
	var r []types.CriteriaProposal
	k.proposals.Iterate(ctx, types.ProposalsPrefix(campaignID), func(_, value []byte) bool {
		var p types.CriteriaProposal
		k.proposals.Decode(value, &p)
		r = append(r, p)
		return false
	})
	return r
}

// ConfirmCriteria moves a campaign from criteria to publish. The confirmation policy
// decides who may confirm. With a proposal id the proposed criteria become the campaign criteria.
func (k Keeper) ConfirmCriteria(ctx sdk.Context, sender sdk.AccAddress, campaignID uint64, proposalID *uint64) error {
	c, err := k.mustGetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if err := transition(&c, types.PhasePublish); err != nil {
		return err
	}
	if !k.policy.CanConfirm(ctx, c, sender) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "confirm criteria of campaign %d", campaignID)
	}
	if proposalID != nil {
		p, ok := k.GetCriteriaProposal(ctx, campaignID, *proposalID)
		if !ok {
			return sdkerrors.Wrapf(types.ErrProposalNotFound, "campaign %d proposal %d", campaignID, *proposalID)
		}
		c.Criteria = p.Criteria
	}
	if len(c.Criteria) == 0 {
		return sdkerrors.Wrapf(types.ErrMissingCriteria, "campaign %d", campaignID)
	}
	k.setCampaign(ctx, c)
	k.emit(ctx, types.CriteriaConfirmed{CampaignID: campaignID, ProposalID: proposalID, Sender: sender})
	ModuleLogger(ctx).Info("criteria confirmed", "campaign_id", campaignID)
	return nil
}
