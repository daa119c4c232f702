package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"gopkg.in/yaml.v2"
)

const (
	// MaxEvictions is the hard cap of delegates a campaign can evict
	MaxEvictions = 3

	// EvictionCost is the protocol cost of a single eviction. It is not debited
	// from any account.
	EvictionCost = 1

	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
)

// Campaign is a unit of work tracked through its lifecycle phases
type Campaign struct {
	ID          uint64         `json:"id" yaml:"id"`
	Campaigner  sdk.AccAddress `json:"campaigner" yaml:"campaigner"`
	Phase       Phase          `json:"phase" yaml:"phase"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	// Origin is the chain the campaign was imported from. Empty for native campaigns.
	Origin   string         `json:"origin,omitempty" yaml:"origin"`
	OriginID uint64         `json:"origin_id,omitempty" yaml:"origin_id"`
	Attester sdk.AccAddress `json:"attester,omitempty" yaml:"attester"`
	Playbook *Playbook      `json:"playbook,omitempty" yaml:"playbook"`
	Criteria Criteria       `json:"criteria" yaml:"criteria"`
	// ProposedDelegates is the delegate pool at creation time, Delegates the pool minus evictions.
	ProposedDelegates []Delegate       `json:"proposed_delegates" yaml:"proposed_delegates"`
	Delegates         []Delegate       `json:"delegates" yaml:"delegates"`
	Evictions         []sdk.AccAddress `json:"evictions" yaml:"evictions"`
	Indexer           sdk.AccAddress   `json:"indexer,omitempty" yaml:"indexer"`
}

// ValidateBasic performs stateless checks
func (c Campaign) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(c.Campaigner); err != nil {
		return sdkerrors.Wrap(err, "campaigner")
	}
	if err := c.Phase.ValidateBasic(); err != nil {
		return err
	}
	if err := validateTitle(c.Title, c.Description); err != nil {
		return err
	}
	if len(c.Attester) != 0 {
		if err := sdk.VerifyAddressFormat(c.Attester); err != nil {
			return sdkerrors.Wrap(err, "attester")
		}
	}
	if len(c.Indexer) != 0 {
		if err := sdk.VerifyAddressFormat(c.Indexer); err != nil {
			return sdkerrors.Wrap(err, "indexer")
		}
	}
	if c.Playbook != nil {
		if err := c.Playbook.ValidateBasic(); err != nil {
			return sdkerrors.Wrap(err, "playbook")
		}
	}
	if err := c.Criteria.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "criteria")
	}
	if len(c.Evictions) > MaxEvictions {
		return sdkerrors.Wrapf(ErrInvalidEviction, "more than %d evictions", MaxEvictions)
	}
	for _, e := range c.Evictions {
		if !containsDelegate(c.ProposedDelegates, e) {
			return sdkerrors.Wrapf(ErrInvalidEviction, "%s is not a proposed delegate", e)
		}
		if containsDelegate(c.Delegates, e) {
			return sdkerrors.Wrapf(ErrInvalidEviction, "%s is still a delegate", e)
		}
	}
	for _, d := range c.Delegates {
		if err := d.ValidateBasic(); err != nil {
			return sdkerrors.Wrap(err, "delegate")
		}
	}
	return nil
}

// IsDelegate returns true when the address is an active delegate of the campaign
func (c Campaign) IsDelegate(addr sdk.AccAddress) bool {
	return containsDelegate(c.Delegates, addr)
}

// HasIndexer returns true once an indexer was assigned
func (c Campaign) HasIndexer() bool {
	return len(c.Indexer) != 0
}

// SettlementAuthority is the attester or, when none is set, the campaigner.
func (c Campaign) SettlementAuthority() sdk.AccAddress {
	if len(c.Attester) != 0 {
		return c.Attester
	}
	return c.Campaigner
}

// DeclaredProofMechanism returns the proof mechanism required by the playbook or empty when none is declared
func (c Campaign) DeclaredProofMechanism() ProofMechanism {
	if c.Playbook == nil {
		return ""
	}
	return c.Playbook.SegmentDescription.Proof
}

func (c Campaign) String() string {
	out, _ := yaml.Marshal(c)
	return string(out)
}

func containsDelegate(delegates []Delegate, addr sdk.AccAddress) bool {
	for _, d := range delegates {
		if d.Address.Equals(addr) {
			return true
		}
	}
	return false
}

// SplitEvictions returns the delegates remaining after removing the evicted addresses.
// Every eviction must be part of the pool.
func SplitEvictions(pool []Delegate, evictions []sdk.AccAddress) ([]Delegate, error) {
	if len(evictions) > MaxEvictions {
		return nil, sdkerrors.Wrapf(ErrInvalidEviction, "max %d evictions, got %d", MaxEvictions, len(evictions))
	}
	evicted := make(map[string]struct{}, len(evictions))
	for _, e := range evictions {
		if !containsDelegate(pool, e) {
			return nil, sdkerrors.Wrapf(ErrInvalidEviction, "%s is not a delegate", e)
		}
		if _, exists := evicted[e.String()]; exists {
			return nil, sdkerrors.Wrapf(ErrInvalidEviction, "duplicate eviction %s", e)
		}
		evicted[e.String()] = struct{}{}
	}
	remaining := make([]Delegate, 0, len(pool))
	for _, d := range pool {
		if _, ok := evicted[d.Address.String()]; !ok {
			remaining = append(remaining, d)
		}
	}
	return remaining, nil
}

func validateTitle(title, description string) error {
	if title == "" {
		return sdkerrors.Wrap(ErrEmpty, "title")
	}
	if len(title) > MaxTitleLength {
		return sdkerrors.Wrapf(ErrInvalid, "title exceeds %d bytes", MaxTitleLength)
	}
	if len(description) > MaxDescriptionLength {
		return sdkerrors.Wrapf(ErrInvalid, "description exceeds %d bytes", MaxDescriptionLength)
	}
	return nil
}
