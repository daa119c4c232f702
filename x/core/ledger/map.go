package ledger

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Map is a keyed mapping under a store prefix. Iteration is in ascending key order.
type Map struct {
	storeKey sdk.StoreKey
	cdc      *codec.LegacyAmino
	prefix   []byte
}

func NewMap(storeKey sdk.StoreKey, cdc *codec.LegacyAmino, prefix []byte) Map {
	return Map{storeKey: storeKey, cdc: cdc, prefix: prefix}
}

func (m Map) store(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(ctx.KVStore(m.storeKey), m.prefix)
}

// Get decodes the value stored for key into ptr and returns false when absent
func (m Map) Get(ctx sdk.Context, key []byte, ptr interface{}) bool {
	bz := m.GetRaw(ctx, key)
	if bz == nil {
		return false
	}
	m.cdc.MustUnmarshal(bz, ptr)
	return true
}

func (m Map) Set(ctx sdk.Context, key []byte, val interface{}) {
	m.SetRaw(ctx, key, m.cdc.MustMarshal(val))
}

func (m Map) GetRaw(ctx sdk.Context, key []byte) []byte {
	return m.store(ctx).Get(key)
}

func (m Map) SetRaw(ctx sdk.Context, key []byte, bz []byte) {
	m.store(ctx).Set(key, bz)
}

// GetUint64 returns the stored number and false when absent
func (m Map) GetUint64(ctx sdk.Context, key []byte) (uint64, bool) {
	bz := m.GetRaw(ctx, key)
	if bz == nil {
		return 0, false
	}
	return sdk.BigEndianToUint64(bz), true
}

func (m Map) SetUint64(ctx sdk.Context, key []byte, val uint64) {
	m.SetRaw(ctx, key, sdk.Uint64ToBigEndian(val))
}

func (m Map) Has(ctx sdk.Context, key []byte) bool {
	return m.store(ctx).Has(key)
}

func (m Map) Delete(ctx sdk.Context, key []byte) {
	m.store(ctx).Delete(key)
}

// Iterate calls cb for every entry with the given key prefix until cb returns true.
// Keys passed to cb have the map and the iteration prefix stripped.
func (m Map) Iterate(ctx sdk.Context, keyPrefix []byte, cb func(key, value []byte) bool) {
	iter := sdk.KVStorePrefixIterator(m.store(ctx), keyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		if cb(iter.Key()[len(keyPrefix):], iter.Value()) {
			return
		}
	}
}

// Decode unmarshals a raw value returned by Iterate
func (m Map) Decode(bz []byte, ptr interface{}) {
	m.cdc.MustUnmarshal(bz, ptr)
}
