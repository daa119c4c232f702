package ledger

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	vecLenKey     = []byte{0x00}
	vecItemPrefix = []byte{0x01}
)

// Vec is an ordered sequence under a store prefix. The length is kept next to
// the items which are stored under their big endian index.
type Vec struct {
	storeKey sdk.StoreKey
	cdc      *codec.LegacyAmino
	prefix   []byte
}

func NewVec(storeKey sdk.StoreKey, cdc *codec.LegacyAmino, prefix []byte) Vec {
	return Vec{storeKey: storeKey, cdc: cdc, prefix: prefix}
}

func (v Vec) store(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(ctx.KVStore(v.storeKey), v.prefix)
}

func itemKey(idx uint64) []byte {
	return append(append([]byte{}, vecItemPrefix...), sdk.Uint64ToBigEndian(idx)...)
}

func (v Vec) Len(ctx sdk.Context) uint64 {
	bz := v.store(ctx).Get(vecLenKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (v Vec) setLen(ctx sdk.Context, n uint64) {
	v.store(ctx).Set(vecLenKey, sdk.Uint64ToBigEndian(n))
}

// Get decodes the item at idx into ptr and returns false when out of range
func (v Vec) Get(ctx sdk.Context, idx uint64, ptr interface{}) bool {
	bz := v.GetRaw(ctx, idx)
	if bz == nil {
		return false
	}
	v.cdc.MustUnmarshal(bz, ptr)
	return true
}

func (v Vec) GetRaw(ctx sdk.Context, idx uint64) []byte {
	if idx >= v.Len(ctx) {
		return nil
	}
	return v.store(ctx).Get(itemKey(idx))
}

// Push appends an encoded value and returns its index
func (v Vec) Push(ctx sdk.Context, val interface{}) uint64 {
	return v.PushRaw(ctx, v.cdc.MustMarshal(val))
}

func (v Vec) PushRaw(ctx sdk.Context, bz []byte) uint64 {
	idx := v.Len(ctx)
	v.store(ctx).Set(itemKey(idx), bz)
	v.setLen(ctx, idx+1)
	return idx
}

// Set overwrites the item at an existing index
func (v Vec) Set(ctx sdk.Context, idx uint64, val interface{}) error {
	if idx >= v.Len(ctx) {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "index %d out of range", idx)
	}
	v.store(ctx).Set(itemKey(idx), v.cdc.MustMarshal(val))
	return nil
}

// Iterate calls cb for every item in index order until cb returns true
func (v Vec) Iterate(ctx sdk.Context, cb func(idx uint64, bz []byte) bool) {
	iter := sdk.KVStorePrefixIterator(v.store(ctx), vecItemPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		idx := sdk.BigEndianToUint64(iter.Key()[len(vecItemPrefix):])
		if cb(idx, iter.Value()) {
			return
		}
	}
}

// Clear removes all items
func (v Vec) Clear(ctx sdk.Context) {
	n := v.Len(ctx)
	store := v.store(ctx)
	for i := uint64(0); i < n; i++ {
		store.Delete(itemKey(i))
	}
	store.Delete(vecLenKey)
}

// ReplaceRaw rewrites the whole sequence with the given encoded items
func (v Vec) ReplaceRaw(ctx sdk.Context, items [][]byte) {
	v.Clear(ctx)
	for _, bz := range items {
		v.PushRaw(ctx, bz)
	}
}

// Replace rewrites the whole sequence with the given values
func (v Vec) Replace(ctx sdk.Context, items []interface{}) {
	v.Clear(ctx)
	for _, val := range items {
		v.Push(ctx, val)
	}
}

// Decode unmarshals a raw item returned by Iterate
func (v Vec) Decode(bz []byte, ptr interface{}) {
	v.cdc.MustUnmarshal(bz, ptr)
}
