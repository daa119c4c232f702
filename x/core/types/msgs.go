package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// CallMessage is a mutating call. The authenticated sender is supplied
// next to the message by the transaction layer.
type CallMessage interface {
	Route() string
	Type() string
	ValidateBasic() error
}

const (
	TypeMsgCreateCampaign    = "create_campaign"
	TypeMsgOpenCriteria      = "open_criteria"
	TypeMsgProposeCriteria   = "propose_criteria"
	TypeMsgConfirmCriteria   = "confirm_criteria"
	TypeMsgRejectCampaign    = "reject_campaign"
	TypeMsgCancelCampaign    = "cancel_campaign"
	TypeMsgAssignIndexer     = "assign_indexer"
	TypeMsgIndexCampaign     = "index_campaign"
	TypeMsgPostSegment       = "post_segment"
	TypeMsgEvictDelegate     = "evict_delegate"
	TypeMsgSettleCampaign    = "settle_campaign"
	TypeMsgFinalizeCampaign  = "finalize_campaign"
	TypeMsgRegisterIndexer   = "register_indexer"
	TypeMsgUnregisterIndexer = "unregister_indexer"
	TypeMsgRegisterRelayer   = "register_relayer"
	TypeMsgUnregisterRelayer = "unregister_relayer"
	TypeMsgUpdateVotingPower = "update_voting_power"
)

var (
	_ CallMessage = &MsgCreateCampaign{}
	_ CallMessage = &MsgOpenCriteria{}
	_ CallMessage = &MsgProposeCriteria{}
	_ CallMessage = &MsgConfirmCriteria{}
	_ CallMessage = &MsgRejectCampaign{}
	_ CallMessage = &MsgCancelCampaign{}
	_ CallMessage = &MsgAssignIndexer{}
	_ CallMessage = &MsgIndexCampaign{}
	_ CallMessage = &MsgPostSegment{}
	_ CallMessage = &MsgEvictDelegate{}
	_ CallMessage = &MsgSettleCampaign{}
	_ CallMessage = &MsgFinalizeCampaign{}
	_ CallMessage = &MsgRegisterIndexer{}
	_ CallMessage = &MsgUnregisterIndexer{}
	_ CallMessage = &MsgRegisterRelayer{}
	_ CallMessage = &MsgUnregisterRelayer{}
	_ CallMessage = &MsgUpdateVotingPower{}
)

// MsgCreateCampaign starts a new campaign in the init phase
type MsgCreateCampaign struct {
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Origin      string         `json:"origin,omitempty" yaml:"origin"`
	OriginID    uint64         `json:"origin_id,omitempty" yaml:"origin_id"`
	Indexer     sdk.AccAddress `json:"indexer,omitempty" yaml:"indexer"`
	Attester    sdk.AccAddress `json:"attester,omitempty" yaml:"attester"`
	Playbook    *Playbook      `json:"playbook,omitempty" yaml:"playbook"`
	Criteria    Criteria       `json:"criteria,omitempty" yaml:"criteria"`
	// Evictions are removed from the delegate pool for this campaign
	Evictions []sdk.AccAddress `json:"evictions,omitempty" yaml:"evictions"`
}

func (msg MsgCreateCampaign) Route() string { return RouterKey }
func (msg MsgCreateCampaign) Type() string  { return TypeMsgCreateCampaign }

// ValidateBasic performs stateless checks
func (msg MsgCreateCampaign) ValidateBasic() error {
	if err := validateTitle(msg.Title, msg.Description); err != nil {
		return err
	}
	if msg.Origin == "" && msg.OriginID != 0 {
		return sdkerrors.Wrap(ErrInvalid, "origin id without origin")
	}
	if len(msg.Indexer) != 0 {
		if err := sdk.VerifyAddressFormat(msg.Indexer); err != nil {
			return sdkerrors.Wrap(err, "indexer")
		}
	}
	if len(msg.Attester) != 0 {
		if err := sdk.VerifyAddressFormat(msg.Attester); err != nil {
			return sdkerrors.Wrap(err, "attester")
		}
	}
	if msg.Playbook != nil {
		if err := msg.Playbook.ValidateBasic(); err != nil {
			return sdkerrors.Wrap(err, "playbook")
		}
	}
	if err := msg.Criteria.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "criteria")
	}
	if len(msg.Evictions) > MaxEvictions {
		return sdkerrors.Wrapf(ErrInvalidEviction, "max %d evictions", MaxEvictions)
	}
	return nil
}

// MsgOpenCriteria moves a campaign from init into the criteria phase
type MsgOpenCriteria struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

func (msg MsgOpenCriteria) Route() string        { return RouterKey }
func (msg MsgOpenCriteria) Type() string         { return TypeMsgOpenCriteria }
func (msg MsgOpenCriteria) ValidateBasic() error { return nil }

// MsgProposeCriteria is a delegate's criteria suggestion for a campaign
type MsgProposeCriteria struct {
	CampaignID uint64   `json:"campaign_id" yaml:"campaign_id"`
	Criteria   Criteria `json:"criteria" yaml:"criteria"`
}

func (msg MsgProposeCriteria) Route() string { return RouterKey }
func (msg MsgProposeCriteria) Type() string  { return TypeMsgProposeCriteria }

// ValidateBasic performs stateless checks
func (msg MsgProposeCriteria) ValidateBasic() error {
	if len(msg.Criteria) == 0 {
		return ErrMissingCriteria
	}
	return msg.Criteria.ValidateBasic()
}

// MsgConfirmCriteria accepts the criteria of a campaign. With a proposal id the
// proposed criteria replace the campaign criteria.
type MsgConfirmCriteria struct {
	CampaignID uint64  `json:"campaign_id" yaml:"campaign_id"`
	ProposalID *uint64 `json:"proposal_id,omitempty" yaml:"proposal_id"`
}

func (msg MsgConfirmCriteria) Route() string        { return RouterKey }
func (msg MsgConfirmCriteria) Type() string         { return TypeMsgConfirmCriteria }
func (msg MsgConfirmCriteria) ValidateBasic() error { return nil }

// MsgRejectCampaign ends a campaign as rejected
type MsgRejectCampaign struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

func (msg MsgRejectCampaign) Route() string        { return RouterKey }
func (msg MsgRejectCampaign) Type() string         { return TypeMsgRejectCampaign }
func (msg MsgRejectCampaign) ValidateBasic() error { return nil }

type MsgCancelCampaign struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

func (msg MsgCancelCampaign) Route() string        { return RouterKey }
func (msg MsgCancelCampaign) Type() string         { return TypeMsgCancelCampaign }
func (msg MsgCancelCampaign) ValidateBasic() error { return nil }

// MsgAssignIndexer sets the indexer of a campaign that was created without one
type MsgAssignIndexer struct {
	CampaignID uint64         `json:"campaign_id" yaml:"campaign_id"`
	Indexer    sdk.AccAddress `json:"indexer" yaml:"indexer"`
}

func (msg MsgAssignIndexer) Route() string { return RouterKey }
func (msg MsgAssignIndexer) Type() string  { return TypeMsgAssignIndexer }
func (msg MsgAssignIndexer) ValidateBasic() error {
	return sdkerrors.Wrap(sdk.VerifyAddressFormat(msg.Indexer), "indexer")
}

type MsgIndexCampaign struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

func (msg MsgIndexCampaign) Route() string        { return RouterKey }
func (msg MsgIndexCampaign) Type() string         { return TypeMsgIndexCampaign }
func (msg MsgIndexCampaign) ValidateBasic() error { return nil }

type MsgPostSegment struct {
	CampaignID uint64  `json:"campaign_id" yaml:"campaign_id"`
	Segment    Segment `json:"segment" yaml:"segment"`
}

func (msg MsgPostSegment) Route() string { return RouterKey }
func (msg MsgPostSegment) Type() string  { return TypeMsgPostSegment }

// ValidateBasic checks the segment shape. The proof is verified by the keeper.
func (msg MsgPostSegment) ValidateBasic() error {
	return msg.Segment.ValidateBasic()
}

type MsgEvictDelegate struct {
	CampaignID uint64         `json:"campaign_id" yaml:"campaign_id"`
	Delegate   sdk.AccAddress `json:"delegate" yaml:"delegate"`
}

func (msg MsgEvictDelegate) Route() string { return RouterKey }
func (msg MsgEvictDelegate) Type() string  { return TypeMsgEvictDelegate }
func (msg MsgEvictDelegate) ValidateBasic() error {
	return sdkerrors.Wrap(sdk.VerifyAddressFormat(msg.Delegate), "delegate")
}

type MsgSettleCampaign struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

func (msg MsgSettleCampaign) Route() string        { return RouterKey }
func (msg MsgSettleCampaign) Type() string         { return TypeMsgSettleCampaign }
func (msg MsgSettleCampaign) ValidateBasic() error { return nil }

type MsgFinalizeCampaign struct {
	CampaignID uint64 `json:"campaign_id" yaml:"campaign_id"`
}

func (msg MsgFinalizeCampaign) Route() string        { return RouterKey }
func (msg MsgFinalizeCampaign) Type() string         { return TypeMsgFinalizeCampaign }
func (msg MsgFinalizeCampaign) ValidateBasic() error { return nil }

type MsgRegisterIndexer struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Alias   string         `json:"alias" yaml:"alias"`
}

func (msg MsgRegisterIndexer) Route() string { return RouterKey }
func (msg MsgRegisterIndexer) Type() string  { return TypeMsgRegisterIndexer }
func (msg MsgRegisterIndexer) ValidateBasic() error {
	return Indexer{Address: msg.Address, Alias: msg.Alias}.ValidateBasic()
}

type MsgUnregisterIndexer struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
}

func (msg MsgUnregisterIndexer) Route() string { return RouterKey }
func (msg MsgUnregisterIndexer) Type() string  { return TypeMsgUnregisterIndexer }
func (msg MsgUnregisterIndexer) ValidateBasic() error {
	return sdkerrors.Wrap(sdk.VerifyAddressFormat(msg.Address), "address")
}

type MsgRegisterRelayer struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Alias   string         `json:"alias" yaml:"alias"`
}

func (msg MsgRegisterRelayer) Route() string { return RouterKey }
func (msg MsgRegisterRelayer) Type() string  { return TypeMsgRegisterRelayer }
func (msg MsgRegisterRelayer) ValidateBasic() error {
	return Relayer{Address: msg.Address, Alias: msg.Alias}.ValidateBasic()
}

type MsgUnregisterRelayer struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
}

func (msg MsgUnregisterRelayer) Route() string { return RouterKey }
func (msg MsgUnregisterRelayer) Type() string  { return TypeMsgUnregisterRelayer }
func (msg MsgUnregisterRelayer) ValidateBasic() error {
	return sdkerrors.Wrap(sdk.VerifyAddressFormat(msg.Address), "address")
}

// MsgUpdateVotingPower sets the power of a single address. Zero removes it from the ranking.
type MsgUpdateVotingPower struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Power   uint64         `json:"power" yaml:"power"`
}

func (msg MsgUpdateVotingPower) Route() string { return RouterKey }
func (msg MsgUpdateVotingPower) Type() string  { return TypeMsgUpdateVotingPower }
func (msg MsgUpdateVotingPower) ValidateBasic() error {
	return sdkerrors.Wrap(sdk.VerifyAddressFormat(msg.Address), "address")
}

// SignedCall is an authenticated call as delivered by the transaction layer
type SignedCall struct {
	Sender sdk.AccAddress `json:"sender" yaml:"sender"`
	Msg    CallMessage    `json:"msg" yaml:"msg"`
}
