package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// CriterionCategory classifies the dataset a criterion is evaluated against
type CriterionCategory string

const (
	CategoryBalance    CriterionCategory = "balance"
	CategoryDefi       CriterionCategory = "defi"
	CategoryGaming     CriterionCategory = "gaming"
	CategoryGovernance CriterionCategory = "governance"
	CategoryNft        CriterionCategory = "nft"
)

// ValidateBasic returns an error for unknown categories
func (c CriterionCategory) ValidateBasic() error {
	switch c {
	case CategoryBalance, CategoryDefi, CategoryGaming, CategoryGovernance, CategoryNft:
		return nil
	default:
		return sdkerrors.Wrapf(ErrInvalid, "category: %q", string(c))
	}
}

// Parameter is a single field predicate of a criterion. Parameters are kept in
// a list so that their encoding is canonical.
type Parameter struct {
	Field     string `json:"field" yaml:"field"`
	Predicate string `json:"predicate" yaml:"predicate"`
}

// Criterion is a named and weighted evaluation rule over a dataset
type Criterion struct {
	Name       string            `json:"name" yaml:"name"`
	Category   CriterionCategory `json:"category" yaml:"category"`
	DatasetID  string            `json:"dataset_id" yaml:"dataset_id"`
	Parameters []Parameter       `json:"parameters,omitempty" yaml:"parameters"`
	Weight     uint64            `json:"weight" yaml:"weight"`
}

// ValidateBasic performs stateless checks
func (c Criterion) ValidateBasic() error {
	if c.Name == "" {
		return sdkerrors.Wrap(ErrEmpty, "name")
	}
	if err := c.Category.ValidateBasic(); err != nil {
		return err
	}
	if c.DatasetID == "" {
		return sdkerrors.Wrap(ErrEmpty, "dataset id")
	}
	fields := make(map[string]struct{}, len(c.Parameters))
	for i, p := range c.Parameters {
		if p.Field == "" {
			return sdkerrors.Wrapf(ErrEmpty, "parameter %d field", i)
		}
		if _, exists := fields[p.Field]; exists {
			return sdkerrors.Wrapf(ErrInvalid, "duplicate parameter field: %s", p.Field)
		}
		fields[p.Field] = struct{}{}
	}
	return nil
}

// Criteria is an ordered list. The order is significant for weighting.
type Criteria []Criterion

// ValidateBasic checks every criterion and that names are unique. An empty list is valid.
func (c Criteria) ValidateBasic() error {
	names := make(map[string]struct{}, len(c))
	for i, v := range c {
		if err := v.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "criterion %d", i)
		}
		if _, exists := names[v.Name]; exists {
			return sdkerrors.Wrapf(ErrInvalid, "duplicate criterion name: %s", v.Name)
		}
		names[v.Name] = struct{}{}
	}
	return nil
}

// CriteriaProposal is a delegate's suggestion for the criteria of a campaign
type CriteriaProposal struct {
	CampaignID uint64         `json:"campaign_id" yaml:"campaign_id"`
	ProposalID uint64         `json:"proposal_id" yaml:"proposal_id"`
	Proposer   sdk.AccAddress `json:"proposer" yaml:"proposer"`
	Criteria   Criteria       `json:"criteria" yaml:"criteria"`
}

// ValidateBasic performs stateless checks
func (p CriteriaProposal) ValidateBasic() error {
	if err := sdk.VerifyAddressFormat(p.Proposer); err != nil {
		return sdkerrors.Wrap(err, "proposer")
	}
	if len(p.Criteria) == 0 {
		return ErrMissingCriteria
	}
	return p.Criteria.ValidateBasic()
}
