// Package ledger provides the three addressable shapes all module state is kept in:
// a singleton slot (Value), a keyed mapping (Map) and an ordered sequence (Vec).
// Every accessor works on the KV store of the context it is called with, so
// writes become durable only when the caller's multistore commits.
package ledger

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Value is a singleton slot under a fixed key
type Value struct {
	storeKey sdk.StoreKey
	cdc      *codec.LegacyAmino
	key      []byte
}

func NewValue(storeKey sdk.StoreKey, cdc *codec.LegacyAmino, key []byte) Value {
	return Value{storeKey: storeKey, cdc: cdc, key: key}
}

// Get decodes the stored value into ptr and returns false when the slot is empty
func (v Value) Get(ctx sdk.Context, ptr interface{}) bool {
	bz := v.GetRaw(ctx)
	if bz == nil {
		return false
	}
	v.cdc.MustUnmarshal(bz, ptr)
	return true
}

// Set encodes and stores the value
func (v Value) Set(ctx sdk.Context, val interface{}) {
	v.SetRaw(ctx, v.cdc.MustMarshal(val))
}

func (v Value) GetRaw(ctx sdk.Context) []byte {
	return ctx.KVStore(v.storeKey).Get(v.key)
}

func (v Value) SetRaw(ctx sdk.Context, bz []byte) {
	ctx.KVStore(v.storeKey).Set(v.key, bz)
}

// GetUint64 returns the counter and false when the slot is empty
func (v Value) GetUint64(ctx sdk.Context) (uint64, bool) {
	bz := v.GetRaw(ctx)
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

func (v Value) SetUint64(ctx sdk.Context, val uint64) {
	v.SetRaw(ctx, sdk.Uint64ToBigEndian(val))
}

func (v Value) Has(ctx sdk.Context) bool {
	return ctx.KVStore(v.storeKey).Has(v.key)
}

func (v Value) Delete(ctx sdk.Context) {
	ctx.KVStore(v.storeKey).Delete(v.key)
}
