package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ProofMechanism names the scheme used to prove segments or conversions
type ProofMechanism string

const ProofMechanismEd25519 ProofMechanism = "ed25519_signature"

// ValidateBasic returns an error for unknown mechanisms
func (p ProofMechanism) ValidateBasic() error {
	if p != ProofMechanismEd25519 {
		return sdkerrors.Wrapf(ErrInvalid, "proof mechanism: %q", string(p))
	}
	return nil
}

// SegmentKind describes how the indexer selects segment entries
type SegmentKind string

const (
	SegmentKindGithubTopNContributors SegmentKind = "github_top_n_contributors"
	SegmentKindGithubAllContributors  SegmentKind = "github_all_contributors"
)

// SegmentDescription declares the evidence a campaign expects
type SegmentDescription struct {
	Kind    SegmentKind    `json:"kind" yaml:"kind"`
	TopN    uint64         `json:"top_n,omitempty" yaml:"top_n"`
	Sources []string       `json:"sources,omitempty" yaml:"sources"`
	Proof   ProofMechanism `json:"proof" yaml:"proof"`
}

// ValidateBasic performs stateless checks
func (s SegmentDescription) ValidateBasic() error {
	switch s.Kind {
	case SegmentKindGithubTopNContributors:
		if s.TopN == 0 {
			return sdkerrors.Wrap(ErrEmpty, "top n")
		}
	case SegmentKindGithubAllContributors:
		if s.TopN != 0 {
			return sdkerrors.Wrap(ErrInvalid, "top n not allowed for all contributors")
		}
	default:
		return sdkerrors.Wrapf(ErrInvalid, "segment kind: %q", string(s.Kind))
	}
	for i, v := range s.Sources {
		if v == "" {
			return sdkerrors.Wrapf(ErrEmpty, "source %d", i)
		}
	}
	return sdkerrors.Wrap(s.Proof.ValidateBasic(), "segment proof")
}

// ConversionDescription declares how conversions are authenticated and proven
type ConversionDescription struct {
	Kind  string         `json:"kind" yaml:"kind"`
	Auth  string         `json:"auth" yaml:"auth"`
	Proof ProofMechanism `json:"proof" yaml:"proof"`
}

const (
	ConversionKindSocial = "social"
	ConversionAuthGithub = "github"
)

// ValidateBasic performs stateless checks
func (c ConversionDescription) ValidateBasic() error {
	if c.Kind != ConversionKindSocial {
		return sdkerrors.Wrapf(ErrInvalid, "conversion kind: %q", c.Kind)
	}
	if c.Auth != ConversionAuthGithub {
		return sdkerrors.Wrapf(ErrInvalid, "conversion auth: %q", c.Auth)
	}
	return sdkerrors.Wrap(c.Proof.ValidateBasic(), "conversion proof")
}

const PayoutProportionalPerConversion = "proportional_per_conversion"

// Budget is what the campaigner commits to pay
type Budget struct {
	Fee        sdk.Coins `json:"fee" yaml:"fee"`
	Incentives sdk.Coins `json:"incentives" yaml:"incentives"`
}

// ValidateBasic performs stateless checks
func (b Budget) ValidateBasic() error {
	if err := b.Fee.Validate(); err != nil {
		return sdkerrors.Wrap(err, "fee")
	}
	return sdkerrors.Wrap(b.Incentives.Validate(), "incentives")
}

// Playbook is the execution plan of a campaign
type Playbook struct {
	Budget                Budget                `json:"budget" yaml:"budget"`
	SegmentDescription    SegmentDescription    `json:"segment_description" yaml:"segment_description"`
	ConversionDescription ConversionDescription `json:"conversion_description" yaml:"conversion_description"`
	Payout                string                `json:"payout" yaml:"payout"`
	EndsAt                sdk.Uint              `json:"ends_at" yaml:"ends_at"`
}

// ValidateBasic performs stateless checks
func (p Playbook) ValidateBasic() error {
	if err := p.Budget.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "budget")
	}
	if err := p.SegmentDescription.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "segment description")
	}
	if err := p.ConversionDescription.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "conversion description")
	}
	if p.Payout != PayoutProportionalPerConversion {
		return sdkerrors.Wrapf(ErrInvalid, "payout: %q", p.Payout)
	}
	if p.EndsAt == (sdk.Uint{}) || p.EndsAt.IsZero() {
		return sdkerrors.Wrap(ErrEmpty, "ends at")
	}
	return nil
}
