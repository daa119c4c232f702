package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	lifecycle := []Phase{PhaseInit, PhaseCriteria, PhasePublish, PhaseIndexing, PhaseDistribution, PhaseSettle, PhaseSettled}
	allowed := make(map[[2]Phase]bool)
	for i := 1; i < len(lifecycle); i++ {
		allowed[[2]Phase{lifecycle[i-1], lifecycle[i]}] = true
	}
	for _, p := range lifecycle[:len(lifecycle)-1] {
		allowed[[2]Phase{p, PhaseCanceled}] = true
		allowed[[2]Phase{p, PhaseRejected}] = true
	}

	for _, from := range AllPhases {
		for _, to := range AllPhases {
			gotErr := ValidateTransition(1, from, to)
			if allowed[[2]Phase{from, to}] {
				assert.NoError(t, gotErr, "%s -> %s", from, to)
				continue
			}
			require.Error(t, gotErr, "%s -> %s", from, to)
			assert.True(t, ErrInvalidTransition.Is(gotErr))
			assert.Contains(t, gotErr.Error(), "current "+from.String())
			assert.Contains(t, gotErr.Error(), "attempted "+to.String())
		}
	}
}

func TestTerminalPhases(t *testing.T) {
	specs := map[Phase]bool{
		PhaseInit:         false,
		PhaseCriteria:     false,
		PhasePublish:      false,
		PhaseIndexing:     false,
		PhaseDistribution: false,
		PhaseSettle:       false,
		PhaseSettled:      true,
		PhaseCanceled:     true,
		PhaseRejected:     true,
		Phase("unknown"):  false,
	}
	for phase, exp := range specs {
		t.Run(phase.String(), func(t *testing.T) {
			assert.Equal(t, exp, phase.IsTerminal())
		})
	}
}

func TestUnknownPhaseTransition(t *testing.T) {
	require.Error(t, ValidateTransition(0, Phase("unknown"), PhaseCriteria))
	require.Error(t, ValidateTransition(0, PhaseInit, Phase("unknown")))
	require.Error(t, Phase("unknown").ValidateBasic())
}
