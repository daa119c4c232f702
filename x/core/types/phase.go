package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Phase is the lifecycle stage of a campaign
type Phase string

const (
	PhaseInit         Phase = "init"
	PhaseCriteria     Phase = "criteria"
	PhasePublish      Phase = "publish"
	PhaseIndexing     Phase = "indexing"
	PhaseDistribution Phase = "distribution"
	PhaseSettle       Phase = "settle"
	PhaseSettled      Phase = "settled"
	PhaseCanceled     Phase = "canceled"
	PhaseRejected     Phase = "rejected"
)

// AllPhases in lifecycle order followed by the side exits
var AllPhases = []Phase{
	PhaseInit,
	PhaseCriteria,
	PhasePublish,
	PhaseIndexing,
	PhaseDistribution,
	PhaseSettle,
	PhaseSettled,
	PhaseCanceled,
	PhaseRejected,
}

// phaseTransitions is the complete set of legal edges. Terminal phases have no entry.
var phaseTransitions = map[Phase][]Phase{
	PhaseInit:         {PhaseCriteria, PhaseCanceled, PhaseRejected},
	PhaseCriteria:     {PhasePublish, PhaseCanceled, PhaseRejected},
	PhasePublish:      {PhaseIndexing, PhaseCanceled, PhaseRejected},
	PhaseIndexing:     {PhaseDistribution, PhaseCanceled, PhaseRejected},
	PhaseDistribution: {PhaseSettle, PhaseCanceled, PhaseRejected},
	PhaseSettle:       {PhaseSettled, PhaseCanceled, PhaseRejected},
}

func (p Phase) String() string {
	return string(p)
}

// ValidateBasic returns an error for unknown phases
func (p Phase) ValidateBasic() error {
	for _, v := range AllPhases {
		if v == p {
			return nil
		}
	}
	return sdkerrors.Wrapf(ErrInvalid, "phase: %q", string(p))
}

// IsTerminal returns true when no transition leaves this phase
func (p Phase) IsTerminal() bool {
	_, ok := phaseTransitions[p]
	return !ok && p.ValidateBasic() == nil
}

// CanTransition returns true when from -> to is a legal edge
func CanTransition(from, to Phase) bool {
	for _, v := range phaseTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

// ValidateTransition is the single gate for every phase change of a campaign.
func ValidateTransition(campaignID uint64, current, attempted Phase) error {
	if !CanTransition(current, attempted) {
		return sdkerrors.Wrapf(ErrInvalidTransition, "campaign %d: current %s, attempted %s", campaignID, current, attempted)
	}
	return nil
}
