package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortByPower(t *testing.T) {
	var (
		addrA = sdk.AccAddress{0x01}
		addrB = sdk.AccAddress{0x02}
		addrC = sdk.AccAddress{0x03}
	)
	specs := map[string]struct {
		src []PowerEntry
		exp []PowerEntry
	}{
		"descending power": {
			src: []PowerEntry{{addrA, 1}, {addrB, 3}, {addrC, 2}},
			exp: []PowerEntry{{addrB, 3}, {addrC, 2}, {addrA, 1}},
		},
		"ties broken by address": {
			src: []PowerEntry{{addrC, 5}, {addrA, 5}, {addrB, 5}},
			exp: []PowerEntry{{addrA, 5}, {addrB, 5}, {addrC, 5}},
		},
		"mixed": {
			src: []PowerEntry{{addrC, 5}, {addrB, 1}, {addrA, 5}},
			exp: []PowerEntry{{addrA, 5}, {addrC, 5}, {addrB, 1}},
		},
		"empty": {
			src: []PowerEntry{},
			exp: []PowerEntry{},
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			SortByPower(spec.src)
			assert.Equal(t, spec.exp, spec.src)
			assert.True(t, IsRanked(spec.src))
		})
	}
}

func TestSortByPowerIndependentOfInsertOrder(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 30)
	for i := 0; i < 50; i++ {
		var powers []uint8
		f.Fuzz(&powers)
		entries := make([]PowerEntry, len(powers))
		for j, p := range powers {
			// small powers to produce ties
			entries[j] = PowerEntry{Address: RandomAccAddress(), Power: uint64(p % 4)}
		}
		reversed := make([]PowerEntry, len(entries))
		for j := range entries {
			reversed[len(entries)-1-j] = entries[j]
		}
		SortByPower(entries)
		SortByPower(reversed)
		require.Equal(t, entries, reversed)
		require.True(t, IsRanked(entries))
	}
}
