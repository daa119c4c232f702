package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"gopkg.in/yaml.v2"
)

// GenesisState is the initial state of the module. Campaigns get sequential ids in list order.
type GenesisState struct {
	Admin        sdk.AccAddress     `json:"admin,omitempty" yaml:"admin"`
	Campaigns    []Campaign         `json:"campaigns" yaml:"campaigns"`
	Proposals    []CriteriaProposal `json:"proposals,omitempty" yaml:"proposals"`
	Segments     []GenesisSegment   `json:"segments,omitempty" yaml:"segments"`
	Delegates    []Delegate         `json:"delegates" yaml:"delegates"`
	Indexers     []Indexer          `json:"indexers" yaml:"indexers"`
	Relayers     []Relayer          `json:"relayers" yaml:"relayers"`
	Powers       []PowerEntry       `json:"powers" yaml:"powers"`
	EthAddresses []EthAddress       `json:"eth_addresses" yaml:"eth_addresses"`
}

// GenesisSegment is a recorded segment with the campaign it belongs to
type GenesisSegment struct {
	CampaignID uint64  `json:"campaign_id" yaml:"campaign_id"`
	Segment    Segment `json:"segment" yaml:"segment"`
}

// DefaultGenesisState has no admin and empty collections
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Campaigns:    []Campaign{},
		Delegates:    []Delegate{},
		Indexers:     []Indexer{},
		Relayers:     []Relayer{},
		Powers:       []PowerEntry{},
		EthAddresses: []EthAddress{},
	}
}

func (g GenesisState) String() string {
	out, _ := yaml.Marshal(g)
	return string(out)
}

// ValidateGenesis performs basic validation of genesis data returning an
// error for any failed validation criteria.
func ValidateGenesis(g GenesisState) error {
	if len(g.Admin) != 0 {
		if err := sdk.VerifyAddressFormat(g.Admin); err != nil {
			return sdkerrors.Wrap(err, "admin")
		}
	}
	for i, c := range g.Campaigns {
		if c.ID != uint64(i) {
			return sdkerrors.Wrapf(ErrInvalid, "campaign %d has id %d", i, c.ID)
		}
		if err := c.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "campaign %d", i)
		}
	}
	origins := make(map[string]struct{})
	for _, c := range g.Campaigns {
		if c.Origin == "" {
			continue
		}
		key := string(OriginKey(c.Origin, c.OriginID))
		if _, exists := origins[key]; exists {
			return sdkerrors.Wrapf(ErrCampaignExists, "origin %s id %d", c.Origin, c.OriginID)
		}
		origins[key] = struct{}{}
	}
	proposalIDs := make(map[uint64]uint64)
	for i, p := range g.Proposals {
		if p.CampaignID >= uint64(len(g.Campaigns)) {
			return sdkerrors.Wrapf(ErrCampaignNotFound, "proposal %d", i)
		}
		if p.ProposalID != proposalIDs[p.CampaignID] {
			return sdkerrors.Wrapf(ErrInvalid, "proposal %d: expected id %d", i, proposalIDs[p.CampaignID])
		}
		proposalIDs[p.CampaignID]++
		if err := p.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "proposal %d", i)
		}
	}
	segments := make(map[uint64]struct{})
	for i, s := range g.Segments {
		if s.CampaignID >= uint64(len(g.Campaigns)) {
			return sdkerrors.Wrapf(ErrCampaignNotFound, "segment %d", i)
		}
		if _, exists := segments[s.CampaignID]; exists {
			return sdkerrors.Wrapf(ErrSegmentExists, "campaign %d", s.CampaignID)
		}
		segments[s.CampaignID] = struct{}{}
		if err := s.Segment.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "segment %d", i)
		}
	}
	uniqueAddr := func(kind string, i int, addr sdk.AccAddress, seen map[string]struct{}) error {
		if _, exists := seen[addr.String()]; exists {
			return sdkerrors.Wrapf(ErrInvalid, "duplicate %s %d: %s", kind, i, addr)
		}
		seen[addr.String()] = struct{}{}
		return nil
	}
	seen := make(map[string]struct{})
	for i, d := range g.Delegates {
		if err := d.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "delegate %d", i)
		}
		if err := uniqueAddr("delegate", i, d.Address, seen); err != nil {
			return err
		}
	}
	seen = make(map[string]struct{})
	for i, v := range g.Indexers {
		if err := v.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "indexer %d", i)
		}
		if err := uniqueAddr("indexer", i, v.Address, seen); err != nil {
			return err
		}
	}
	seen = make(map[string]struct{})
	for i, v := range g.Relayers {
		if err := v.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "relayer %d", i)
		}
		if err := uniqueAddr("relayer", i, v.Address, seen); err != nil {
			return err
		}
	}
	seen = make(map[string]struct{})
	for i, v := range g.Powers {
		if err := v.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "power %d", i)
		}
		if err := uniqueAddr("power", i, v.Address, seen); err != nil {
			return err
		}
	}
	seen = make(map[string]struct{})
	for i, v := range g.EthAddresses {
		if err := v.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "eth address %d", i)
		}
		if err := uniqueAddr("eth address", i, v.Address, seen); err != nil {
			return err
		}
	}
	return nil
}
