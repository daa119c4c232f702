package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/rand"
)

// TestAddrLen is the length of random test addresses
const TestAddrLen = 20

func RandomAccAddress() sdk.AccAddress {
	return rand.Bytes(TestAddrLen)
}

// RandomDelegates returns n delegates with distinct random addresses
func RandomDelegates(n int) []Delegate {
	r := make([]Delegate, n)
	for i := range r {
		r[i] = Delegate{Address: RandomAccAddress(), Alias: rand.Str(8)}
	}
	return r
}
