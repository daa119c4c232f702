package core

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/keeper"
	"github.com/filament-network/hub/x/core/types"
)

// Handler executes an authenticated call against the module state
type Handler func(ctx sdk.Context, sender sdk.AccAddress, msg types.CallMessage) (*sdk.Result, error)

// NewHandler constructor. Each call runs on a cached store and is only
// committed, with its events, when it succeeds.
func NewHandler(k keeper.Keeper) Handler {
	return func(ctx sdk.Context, sender sdk.AccAddress, msg types.CallMessage) (*sdk.Result, error) {
		if msg == nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "empty message")
		}
		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}
		cacheCtx, commit := ctx.CacheContext()
		em := sdk.NewEventManager()
		cacheCtx = cacheCtx.WithEventManager(em)

		data, err := dispatch(cacheCtx, k, sender, msg)
		if err != nil {
			return nil, err
		}
		commit()
		ctx.EventManager().EmitEvents(em.Events())
		return &sdk.Result{Data: data, Events: em.ABCIEvents()}, nil
	}
}

// dispatch returns the big endian encoded id for calls that create something
func dispatch(ctx sdk.Context, k keeper.Keeper, sender sdk.AccAddress, msg types.CallMessage) ([]byte, error) {
	switch msg := msg.(type) {
	case *types.MsgCreateCampaign:
		id, err := k.CreateCampaign(ctx, sender, *msg)
		if err != nil {
			return nil, err
		}
		return sdk.Uint64ToBigEndian(id), nil
	case *types.MsgOpenCriteria:
		return nil, k.OpenCriteria(ctx, sender, msg.CampaignID)
	case *types.MsgProposeCriteria:
		id, err := k.ProposeCriteria(ctx, sender, msg.CampaignID, msg.Criteria)
		if err != nil {
			return nil, err
		}
		return sdk.Uint64ToBigEndian(id), nil
	case *types.MsgConfirmCriteria:
		return nil, k.ConfirmCriteria(ctx, sender, msg.CampaignID, msg.ProposalID)
	case *types.MsgRejectCampaign:
		return nil, k.RejectCampaign(ctx, sender, msg.CampaignID)
	case *types.MsgCancelCampaign:
		return nil, k.CancelCampaign(ctx, sender, msg.CampaignID)
	case *types.MsgAssignIndexer:
		return nil, k.AssignIndexer(ctx, sender, msg.CampaignID, msg.Indexer)
	case *types.MsgIndexCampaign:
		return nil, k.IndexCampaign(ctx, sender, msg.CampaignID)
	case *types.MsgPostSegment:
		return nil, k.PostSegment(ctx, sender, msg.CampaignID, msg.Segment)
	case *types.MsgEvictDelegate:
		return nil, k.EvictDelegate(ctx, sender, msg.CampaignID, msg.Delegate)
	case *types.MsgSettleCampaign:
		return nil, k.SettleCampaign(ctx, sender, msg.CampaignID)
	case *types.MsgFinalizeCampaign:
		return nil, k.FinalizeCampaign(ctx, sender, msg.CampaignID)
	case *types.MsgRegisterIndexer:
		return nil, k.RegisterIndexer(ctx, sender, msg.Address, msg.Alias)
	case *types.MsgUnregisterIndexer:
		return nil, k.UnregisterIndexer(ctx, sender, msg.Address)
	case *types.MsgRegisterRelayer:
		return nil, k.RegisterRelayer(ctx, sender, msg.Address, msg.Alias)
	case *types.MsgUnregisterRelayer:
		return nil, k.UnregisterRelayer(ctx, sender, msg.Address)
	case *types.MsgUpdateVotingPower:
		return nil, k.UpdateVotingPower(ctx, sender, msg.Address, msg.Power)
	default:
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
	}
}
