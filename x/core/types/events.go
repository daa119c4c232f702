package types

import (
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeCampaignInitialized = "campaign_initialized"
	EventTypeCriteriaOpened      = "criteria_opened"
	EventTypeCriteriaProposed    = "criteria_proposed"
	EventTypeCriteriaConfirmed   = "criteria_confirmed"
	EventTypeCampaignRejected    = "campaign_rejected"
	EventTypeCampaignCanceled    = "campaign_canceled"
	EventTypeIndexerAssigned     = "indexer_assigned"
	EventTypeCampaignIndexing    = "campaign_indexing"
	EventTypeSegmentPosted       = "segment_posted"
	EventTypeDelegateEvicted     = "delegate_evicted"
	EventTypeCampaignSettling    = "campaign_settling"
	EventTypeCampaignSettled     = "campaign_settled"
	EventTypeIndexerRegistered   = "indexer_registered"
	EventTypeIndexerUnregistered = "indexer_unregistered"
	EventTypeRelayerRegistered   = "relayer_registered"
	EventTypeRelayerUnregistered = "relayer_unregistered"
	EventTypeVotingPowerUpdated  = "voting_power_updated"

	AttributeKeyCampaignID = "campaign_id"
	AttributeKeyCampaigner = "campaigner"
	AttributeKeyEvictions  = "evictions"
	AttributeKeyProposalID = "proposal_id"
	AttributeKeyProposer   = "proposer"
	AttributeKeySender     = "sender"
	AttributeKeyIndexer    = "indexer"
	AttributeKeyDelegate   = "delegate"
	AttributeKeyAddress    = "addr"
	AttributeKeyAlias      = "alias"
	AttributeKeyPower      = "power"
	AttributeKeyRelayer    = "relayer"
	AttributeKeyPhase      = "phase"
	AttributeValueCategory = ModuleName
)

// Event is a typed protocol event. Each mutation emits exactly one.
type Event interface {
	EventType() string
	Attributes() []sdk.Attribute
}

// NewSDKEvent converts into the sdk representation with the module attribute first
func NewSDKEvent(e Event) sdk.Event {
	attrs := append([]sdk.Attribute{sdk.NewAttribute(sdk.AttributeKeyModule, AttributeValueCategory)}, e.Attributes()...)
	return sdk.NewEvent(e.EventType(), attrs...)
}

func idAttr(id uint64) sdk.Attribute {
	return sdk.NewAttribute(AttributeKeyCampaignID, strconv.FormatUint(id, 10))
}

type CampaignInitialized struct {
	CampaignID uint64
	Campaigner sdk.AccAddress
	Evictions  []sdk.AccAddress
}

func (e CampaignInitialized) EventType() string { return EventTypeCampaignInitialized }
func (e CampaignInitialized) Attributes() []sdk.Attribute {
	evictions := make([]string, len(e.Evictions))
	for i, v := range e.Evictions {
		evictions[i] = v.String()
	}
	return []sdk.Attribute{
		idAttr(e.CampaignID),
		sdk.NewAttribute(AttributeKeyCampaigner, e.Campaigner.String()),
		sdk.NewAttribute(AttributeKeyEvictions, strings.Join(evictions, ",")),
	}
}

type CriteriaOpened struct {
	CampaignID uint64
	Campaigner sdk.AccAddress
}

func (e CriteriaOpened) EventType() string { return EventTypeCriteriaOpened }
func (e CriteriaOpened) Attributes() []sdk.Attribute {
	return []sdk.Attribute{idAttr(e.CampaignID), sdk.NewAttribute(AttributeKeyCampaigner, e.Campaigner.String())}
}

type CriteriaProposed struct {
	CampaignID uint64
	ProposalID uint64
	Proposer   sdk.AccAddress
}

func (e CriteriaProposed) EventType() string { return EventTypeCriteriaProposed }
func (e CriteriaProposed) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		idAttr(e.CampaignID),
		sdk.NewAttribute(AttributeKeyProposalID, strconv.FormatUint(e.ProposalID, 10)),
		sdk.NewAttribute(AttributeKeyProposer, e.Proposer.String()),
	}
}

// CriteriaConfirmed has no proposal id when the campaign criteria were confirmed as they are.
type CriteriaConfirmed struct {
	CampaignID uint64
	ProposalID *uint64
	Sender     sdk.AccAddress
}

func (e CriteriaConfirmed) EventType() string { return EventTypeCriteriaConfirmed }
func (e CriteriaConfirmed) Attributes() []sdk.Attribute {
	attrs := []sdk.Attribute{idAttr(e.CampaignID)}
	if e.ProposalID != nil {
		attrs = append(attrs, sdk.NewAttribute(AttributeKeyProposalID, strconv.FormatUint(*e.ProposalID, 10)))
	}
	return append(attrs, sdk.NewAttribute(AttributeKeySender, e.Sender.String()))
}

// PhaseChanged covers the transitions that only carry the campaign and the acting sender.
type PhaseChanged struct {
	Type       string
	CampaignID uint64
	Sender     sdk.AccAddress
	Phase      Phase
}

func (e PhaseChanged) EventType() string { return e.Type }
func (e PhaseChanged) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		idAttr(e.CampaignID),
		sdk.NewAttribute(AttributeKeySender, e.Sender.String()),
		sdk.NewAttribute(AttributeKeyPhase, e.Phase.String()),
	}
}

type IndexerAssigned struct {
	CampaignID uint64
	Indexer    sdk.AccAddress
}

func (e IndexerAssigned) EventType() string { return EventTypeIndexerAssigned }
func (e IndexerAssigned) Attributes() []sdk.Attribute {
	return []sdk.Attribute{idAttr(e.CampaignID), sdk.NewAttribute(AttributeKeyIndexer, e.Indexer.String())}
}

type CampaignIndexing struct {
	CampaignID uint64
	Indexer    sdk.AccAddress
}

func (e CampaignIndexing) EventType() string { return EventTypeCampaignIndexing }
func (e CampaignIndexing) Attributes() []sdk.Attribute {
	return []sdk.Attribute{idAttr(e.CampaignID), sdk.NewAttribute(AttributeKeyIndexer, e.Indexer.String())}
}

type SegmentPosted struct {
	CampaignID uint64
	Indexer    sdk.AccAddress
}

func (e SegmentPosted) EventType() string { return EventTypeSegmentPosted }
func (e SegmentPosted) Attributes() []sdk.Attribute {
	return []sdk.Attribute{idAttr(e.CampaignID), sdk.NewAttribute(AttributeKeyIndexer, e.Indexer.String())}
}

type DelegateEvicted struct {
	CampaignID uint64
	Delegate   sdk.AccAddress
}

func (e DelegateEvicted) EventType() string { return EventTypeDelegateEvicted }
func (e DelegateEvicted) Attributes() []sdk.Attribute {
	return []sdk.Attribute{idAttr(e.CampaignID), sdk.NewAttribute(AttributeKeyDelegate, e.Delegate.String())}
}

// Registered is emitted for indexer and relayer registrations
type Registered struct {
	Type   string
	Addr   sdk.AccAddress
	Alias  string
	Sender sdk.AccAddress
}

func (e Registered) EventType() string { return e.Type }
func (e Registered) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyAddress, e.Addr.String()),
		sdk.NewAttribute(AttributeKeyAlias, e.Alias),
		sdk.NewAttribute(AttributeKeySender, e.Sender.String()),
	}
}

// Unregistered is emitted for indexer and relayer removals
type Unregistered struct {
	Type   string
	Addr   sdk.AccAddress
	Sender sdk.AccAddress
}

func (e Unregistered) EventType() string { return e.Type }
func (e Unregistered) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyAddress, e.Addr.String()),
		sdk.NewAttribute(AttributeKeySender, e.Sender.String()),
	}
}

type VotingPowerUpdated struct {
	Addr    sdk.AccAddress
	Power   uint64
	Relayer sdk.AccAddress
}

func (e VotingPowerUpdated) EventType() string { return EventTypeVotingPowerUpdated }
func (e VotingPowerUpdated) Attributes() []sdk.Attribute {
	return []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyAddress, e.Addr.String()),
		sdk.NewAttribute(AttributeKeyPower, strconv.FormatUint(e.Power, 10)),
		sdk.NewAttribute(AttributeKeyRelayer, e.Relayer.String()),
	}
}
