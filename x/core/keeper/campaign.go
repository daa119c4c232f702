package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/types"
)

// CreateCampaign stores a new campaign in the init phase and returns its id.
// The delegates are the genesis delegate pool minus the requested evictions.
func (k Keeper) CreateCampaign(ctx sdk.Context, sender sdk.AccAddress, msg types.MsgCreateCampaign) (uint64, error) {
	if err := sdk.VerifyAddressFormat(sender); err != nil {
		return 0, sdkerrors.Wrap(err, "sender")
	}
	id, ok := k.nextCampaignID.GetUint64(ctx)
	if !ok {
		return 0, types.ErrNextIDMissing
	}
	if k.campaigns.Has(ctx, types.CampaignKey(id)) {
		return 0, sdkerrors.Wrapf(types.ErrIDExists, "campaign %d", id)
	}
	if msg.Origin != "" && k.campaignsByOrigin.Has(ctx, types.OriginKey(msg.Origin, msg.OriginID)) {
		return 0, sdkerrors.Wrapf(types.ErrCampaignExists, "origin %s id %d", msg.Origin, msg.OriginID)
	}
	if len(msg.Indexer) != 0 && !k.IsIndexer(ctx, msg.Indexer) {
		return 0, sdkerrors.Wrap(types.ErrIndexerNotRegistered, msg.Indexer.String())
	}
	pool := k.GetDelegates(ctx)
	delegates, err := types.SplitEvictions(pool, msg.Evictions)
	if err != nil {
		return 0, err
	}
	campaign := types.Campaign{
		ID:                id,
		Campaigner:        sender,
		Phase:             types.PhaseInit,
		Title:             msg.Title,
		Description:       msg.Description,
		Origin:            msg.Origin,
		OriginID:          msg.OriginID,
		Attester:          msg.Attester,
		Playbook:          msg.Playbook,
		Criteria:          msg.Criteria,
		ProposedDelegates: pool,
		Delegates:         delegates,
		Evictions:         msg.Evictions,
		Indexer:           msg.Indexer,
	}
	if err := campaign.ValidateBasic(); err != nil {
		return 0, sdkerrors.Wrap(err, "campaign")
	}

	k.importCampaign(ctx, campaign)
	k.nextCampaignID.SetUint64(ctx, id+1)
	k.emit(ctx, types.CampaignInitialized{CampaignID: id, Campaigner: sender, Evictions: msg.Evictions})
	ModuleLogger(ctx).Info("campaign initialized", "campaign_id", id, "campaigner", sender.String())
	return id, nil
}

// importCampaign stores the campaign with its indexes. No checks.
func (k Keeper) importCampaign(ctx sdk.Context, c types.Campaign) {
	k.setCampaign(ctx, c)
	if c.Origin != "" {
		k.campaignsByOrigin.SetUint64(ctx, types.OriginKey(c.Origin, c.OriginID), c.ID)
	}
	k.campaignsByCampaigner.SetUint64(ctx, types.CampaignerIndexKey(c.Campaigner, c.ID), c.ID)
}

func (k Keeper) setCampaign(ctx sdk.Context, c types.Campaign) {
	k.campaigns.Set(ctx, types.CampaignKey(c.ID), c)
}

// GetCampaign returns the campaign and false when it does not exist
func (k Keeper) GetCampaign(ctx sdk.Context, id uint64) (types.Campaign, bool) {
	var c types.Campaign
	if !k.campaigns.Get(ctx, types.CampaignKey(id), &c) {
		return types.Campaign{}, false
	}
	// an unset playbook may decode as empty struct
	if c.Playbook != nil && c.Playbook.Payout == "" {
		c.Playbook = nil
	}
	return c, true
}

func (k Keeper) mustGetCampaign(ctx sdk.Context, id uint64) (types.Campaign, error) {
	c, ok := k.GetCampaign(ctx, id)
	if !ok {
		return types.Campaign{}, sdkerrors.Wrapf(types.ErrCampaignNotFound, "campaign %d", id)
	}
	return c, nil
}

// GetCampaignIDByOrigin returns the id a campaign from an external chain was imported with
func (k Keeper) GetCampaignIDByOrigin(ctx sdk.Context, origin string, originID uint64) (uint64, bool) {
	return k.campaignsByOrigin.GetUint64(ctx, types.OriginKey(origin, originID))
}

// GetNextCampaignID returns the id the next campaign will get and false before genesis
func (k Keeper) GetNextCampaignID(ctx sdk.Context) (uint64, bool) {
	return k.nextCampaignID.GetUint64(ctx)
}

// IterateCampaigns in id order
func (k Keeper) IterateCampaigns(ctx sdk.Context, cb func(types.Campaign) bool) {
	k.campaigns.Iterate(ctx, nil, func(key, _ []byte) bool {
		c, _ := k.GetCampaign(ctx, sdk.BigEndianToUint64(key))
		return cb(c)
	})
}

// GetCampaignsByCampaigner returns all campaigns of one campaigner in id order
func (k Keeper) GetCampaignsByCampaigner(ctx sdk.Context, campaigner sdk.AccAddress) []types.Campaign {
	var r []types.Campaign
	if len(campaigner) == 0 {
		return r
	}
	k.campaignsByCampaigner.Iterate(ctx, types.CampaignerIndexPrefix(campaigner), func(key, _ []byte) bool {
		if c, ok := k.GetCampaign(ctx, sdk.BigEndianToUint64(key)); ok {
			r = append(r, c)
		}
		return false
	})
	return r
}

// transition moves the campaign to the attempted phase when the edge is legal
func transition(c *types.Campaign, attempted types.Phase) error {
	if err := types.ValidateTransition(c.ID, c.Phase, attempted); err != nil {
		return err
	}
	c.Phase = attempted
	return nil
}

func requireCampaigner(c types.Campaign, sender sdk.AccAddress) error {
	if !c.Campaigner.Equals(sender) {
		return sdkerrors.Wrapf(types.ErrSenderNotCampaigner, "campaign %d", c.ID)
	}
	return nil
}

// OpenCriteria moves a campaign from init to criteria. Campaigner only.
func (k Keeper) OpenCriteria(ctx sdk.Context, sender sdk.AccAddress, id uint64) error {
	c, err := k.mustGetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if err := requireCampaigner(c, sender); err != nil {
		return err
	}
	if err := transition(&c, types.PhaseCriteria); err != nil {
		return err
	}
	k.setCampaign(ctx, c)
	k.emit(ctx, types.CriteriaOpened{CampaignID: id, Campaigner: sender})
	ModuleLogger(ctx).Info("criteria opened", "campaign_id", id)
	return nil
}

// CancelCampaign ends a non terminal campaign. Campaigner or admin.
func (k Keeper) CancelCampaign(ctx sdk.Context, sender sdk.AccAddress, id uint64) error {
	c, err := k.mustGetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if !c.Campaigner.Equals(sender) && !k.isAdmin(ctx, sender) {
		return sdkerrors.Wrapf(types.ErrSenderNotCampaigner, "campaign %d", id)
	}
	if err := transition(&c, types.PhaseCanceled); err != nil {
		return err
	}
	k.setCampaign(ctx, c)
	k.emit(ctx, types.PhaseChanged{Type: types.EventTypeCampaignCanceled, CampaignID: id, Sender: sender, Phase: c.Phase})
	ModuleLogger(ctx).Info("campaign canceled", "campaign_id", id, "sender", sender.String())
	return nil
}

// RejectCampaign ends a non terminal campaign as rejected. Allowed for whoever
// the confirmation policy accepts and for the admin.
func (k Keeper) RejectCampaign(ctx sdk.Context, sender sdk.AccAddress, id uint64) error {
	c, err := k.mustGetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if !k.policy.CanConfirm(ctx, c, sender) && !k.isAdmin(ctx, sender) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "reject campaign %d", id)
	}
	if err := transition(&c, types.PhaseRejected); err != nil {
		return err
	}
	k.setCampaign(ctx, c)
	k.emit(ctx, types.PhaseChanged{Type: types.EventTypeCampaignRejected, CampaignID: id, Sender: sender, Phase: c.Phase})
	ModuleLogger(ctx).Info("campaign rejected", "campaign_id", id, "sender", sender.String())
	return nil
}

// AssignIndexer sets the indexer of a campaign created without one. Campaigner only.
func (k Keeper) AssignIndexer(ctx sdk.Context, sender sdk.AccAddress, id uint64, indexer sdk.AccAddress) error {
	c, err := k.mustGetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if err := requireCampaigner(c, sender); err != nil {
		return err
	}
	if c.Phase.IsTerminal() {
		return sdkerrors.Wrapf(types.ErrInvalid, "campaign %d is %s", id, c.Phase)
	}
	if c.HasIndexer() {
		return sdkerrors.Wrapf(types.ErrIndexerAssigned, "campaign %d", id)
	}
	if !k.IsIndexer(ctx, indexer) {
		return sdkerrors.Wrap(types.ErrIndexerNotRegistered, indexer.String())
	}
	c.Indexer = indexer
	k.setCampaign(ctx, c)
	k.emit(ctx, types.IndexerAssigned{CampaignID: id, Indexer: indexer})
	ModuleLogger(ctx).Info("indexer assigned", "campaign_id", id, "indexer", indexer.String())
	return nil
}

// IndexCampaign moves a published campaign into indexing. Assigned indexer only.
func (k Keeper) IndexCampaign(ctx sdk.Context, sender sdk.AccAddress, id uint64) error {
	c, err := k.mustGetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if err := k.requireIndexer(ctx, c, sender); err != nil {
		return err
	}
	if err := transition(&c, types.PhaseIndexing); err != nil {
		return err
	}
	k.setCampaign(ctx, c)
	k.emit(ctx, types.CampaignIndexing{CampaignID: id, Indexer: sender})
	ModuleLogger(ctx).Info("campaign indexing", "campaign_id", id, "indexer", sender.String())
	return nil
}

func (k Keeper) requireIndexer(ctx sdk.Context, c types.Campaign, sender sdk.AccAddress) error {
	if !c.HasIndexer() {
		return sdkerrors.Wrapf(types.ErrIndexerNotRegistered, "campaign %d has no indexer", c.ID)
	}
	if !c.Indexer.Equals(sender) {
		return sdkerrors.Wrapf(types.ErrIndexerMismatch, "campaign %d", c.ID)
	}
	if !k.IsIndexer(ctx, sender) {
		return sdkerrors.Wrap(types.ErrIndexerNotRegistered, sender.String())
	}
	return nil
}

// EvictDelegate moves an active delegate to the evictions of a campaign. Campaigner
// only and only before the criteria are confirmed. The cap is enforced, the cost is not charged.
func (k Keeper) EvictDelegate(ctx sdk.Context, sender sdk.AccAddress, id uint64, delegate sdk.AccAddress) error {
	c, err := k.mustGetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if err := requireCampaigner(c, sender); err != nil {
		return err
	}
	if c.Phase != types.PhaseInit && c.Phase != types.PhaseCriteria {
		return sdkerrors.Wrapf(types.ErrInvalidEviction, "campaign %d is %s", id, c.Phase)
	}
	if len(c.Evictions) >= types.MaxEvictions {
		return sdkerrors.Wrapf(types.ErrInvalidEviction, "max %d evictions reached", types.MaxEvictions)
	}
	pos := -1
	for i, d := range c.Delegates {
		if d.Address.Equals(delegate) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return sdkerrors.Wrapf(types.ErrInvalidEviction, "%s is not a delegate", delegate)
	}
	c.Delegates = append(c.Delegates[:pos:pos], c.Delegates[pos+1:]...)
	c.Evictions = append(c.Evictions, delegate)
	k.setCampaign(ctx, c)
	k.emit(ctx, types.DelegateEvicted{CampaignID: id, Delegate: delegate})
	ModuleLogger(ctx).Info("delegate evicted", "campaign_id", id, "delegate", delegate.String(), "cost", types.EvictionCost)
	return nil
}

// SettleCampaign moves a campaign from distribution to settle. Attester, or campaigner when no attester is set.
func (k Keeper) SettleCampaign(ctx sdk.Context, sender sdk.AccAddress, id uint64) error {
	return k.settlementStep(ctx, sender, id, types.PhaseSettle, types.EventTypeCampaignSettling)
}

// FinalizeCampaign moves a campaign from settle to settled. Same authority as settle.
func (k Keeper) FinalizeCampaign(ctx sdk.Context, sender sdk.AccAddress, id uint64) error {
	return k.settlementStep(ctx, sender, id, types.PhaseSettled, types.EventTypeCampaignSettled)
}

func (k Keeper) settlementStep(ctx sdk.Context, sender sdk.AccAddress, id uint64, attempted types.Phase, eventType string) error {
	c, err := k.mustGetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if !c.SettlementAuthority().Equals(sender) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "settle campaign %d", id)
	}
	if err := transition(&c, attempted); err != nil {
		return err
	}
	k.setCampaign(ctx, c)
	k.emit(ctx, types.PhaseChanged{Type: eventType, CampaignID: id, Sender: sender, Phase: c.Phase})
	ModuleLogger(ctx).Info("campaign phase changed", "campaign_id", id, "phase", c.Phase.String())
	return nil
}

func (k Keeper) isAdmin(ctx sdk.Context, addr sdk.AccAddress) bool {
	admin, ok := k.GetAdmin(ctx)
	return ok && admin.Equals(addr)
}
