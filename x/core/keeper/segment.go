package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/types"
)

// PostSegment records the evidence of a campaign and moves it from indexing to
// distribution. Only the assigned indexer may post and only once. Nothing is
// written unless the proof verifies.
func (k Keeper) PostSegment(ctx sdk.Context, sender sdk.AccAddress, campaignID uint64, segment types.Segment) error {
	c, err := k.mustGetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if err := k.requireIndexer(ctx, c, sender); err != nil {
		return err
	}
	if k.HasSegment(ctx, campaignID) {
		return sdkerrors.Wrapf(types.ErrSegmentExists, "campaign %d", campaignID)
	}
	if err := transition(&c, types.PhaseDistribution); err != nil {
		return err
	}
	if declared := c.DeclaredProofMechanism(); declared != "" && segment.Proof != nil && segment.Proof.Mechanism() != declared {
		return sdkerrors.Wrapf(types.ErrUnsupportedProof, "campaign %d expects %s", campaignID, declared)
	}
	if err := segment.Verify(); err != nil {
		return err
	}
	k.segments.Set(ctx, types.CampaignKey(campaignID), segment)
	k.setCampaign(ctx, c)
	k.emit(ctx, types.SegmentPosted{CampaignID: campaignID, Indexer: sender})
	ModuleLogger(ctx).Info("segment posted", "campaign_id", campaignID, "indexer", sender.String())
	return nil
}

// GetSegment returns the segment of a campaign and false when none was posted
func (k Keeper) GetSegment(ctx sdk.Context, campaignID uint64) (types.Segment, bool) {
	var s types.Segment
	if !k.segments.Get(ctx, types.CampaignKey(campaignID), &s) {
		return types.Segment{}, false
	}
	return s, true
}

func (k Keeper) HasSegment(ctx sdk.Context, campaignID uint64) bool {
	return k.segments.Has(ctx, types.CampaignKey(campaignID))
}

// IterateSegments in campaign id order
func (k Keeper) IterateSegments(ctx sdk.Context, cb func(campaignID uint64, s types.Segment) bool) {
	k.segments.Iterate(ctx, nil, func(key, value []byte) bool {
		var s types.Segment
		k.segments.Decode(value, &s)
		return cb(sdk.BigEndianToUint64(key), s)
	})
}
