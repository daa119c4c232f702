package ledger

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"
)

type record struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

func setupStore(t *testing.T) (sdk.Context, sdk.StoreKey, *codec.LegacyAmino) {
	key := sdk.NewKVStoreKey("ledger")
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(key, sdk.StoreTypeIAVL, db)
	require.NoError(t, ms.LoadLatestVersion())
	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1234567,
		Time:   time.Date(2020, time.April, 22, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())
	return ctx, key, codec.NewLegacyAmino()
}

func TestValue(t *testing.T) {
	ctx, key, cdc := setupStore(t)
	v := NewValue(key, cdc, []byte{0x01})

	var got record
	assert.False(t, v.Get(ctx, &got))
	assert.False(t, v.Has(ctx))

	v.Set(ctx, record{Name: "a", Count: 1})
	require.True(t, v.Get(ctx, &got))
	assert.Equal(t, record{Name: "a", Count: 1}, got)

	counter := NewValue(key, cdc, []byte{0x02})
	_, ok := counter.GetUint64(ctx)
	assert.False(t, ok)
	counter.SetUint64(ctx, 0)
	n, ok := counter.GetUint64(ctx)
	assert.True(t, ok, "zero is distinct from unset")
	assert.Equal(t, uint64(0), n)

	v.Delete(ctx)
	assert.False(t, v.Has(ctx))
}

func TestMap(t *testing.T) {
	ctx, key, cdc := setupStore(t)
	m := NewMap(key, cdc, []byte{0x03})
	other := NewMap(key, cdc, []byte{0x04})

	m.Set(ctx, []byte{0x02, 0x01}, record{Name: "b"})
	m.Set(ctx, []byte{0x01, 0x02}, record{Name: "a"})
	m.Set(ctx, []byte{0x02, 0x00}, record{Name: "c"})
	other.Set(ctx, []byte{0x01}, record{Name: "other"})

	var got record
	require.True(t, m.Get(ctx, []byte{0x01, 0x02}, &got))
	assert.Equal(t, "a", got.Name)
	assert.False(t, m.Get(ctx, []byte{0x09}, &got))

	var names []string
	m.Iterate(ctx, nil, func(key, value []byte) bool {
		var r record
		m.Decode(value, &r)
		names = append(names, r.Name)
		return false
	})
	assert.Equal(t, []string{"a", "c", "b"}, names)

	var keys [][]byte
	m.Iterate(ctx, []byte{0x02}, func(key, value []byte) bool {
		keys = append(keys, append([]byte{}, key...))
		return false
	})
	assert.Equal(t, [][]byte{{0x00}, {0x01}}, keys)

	m.Delete(ctx, []byte{0x01, 0x02})
	assert.False(t, m.Has(ctx, []byte{0x01, 0x02}))
	assert.True(t, other.Has(ctx, []byte{0x01}))
}

func TestVec(t *testing.T) {
	ctx, key, cdc := setupStore(t)
	v := NewVec(key, cdc, []byte{0x05})
	assert.Equal(t, uint64(0), v.Len(ctx))

	for i, n := range []string{"a", "b", "c"} {
		idx := v.Push(ctx, record{Name: n})
		assert.Equal(t, uint64(i), idx)
	}
	assert.Equal(t, uint64(3), v.Len(ctx))

	var got record
	require.True(t, v.Get(ctx, 1, &got))
	assert.Equal(t, "b", got.Name)
	assert.False(t, v.Get(ctx, 3, &got))

	require.NoError(t, v.Set(ctx, 1, record{Name: "x"}))
	require.Error(t, v.Set(ctx, 3, record{Name: "y"}))

	var names []string
	v.Iterate(ctx, func(idx uint64, bz []byte) bool {
		var r record
		v.Decode(bz, &r)
		names = append(names, r.Name)
		return idx == 1
	})
	assert.Equal(t, []string{"a", "x"}, names)

	v.Replace(ctx, []interface{}{record{Name: "z"}})
	assert.Equal(t, uint64(1), v.Len(ctx))
	assert.False(t, v.Get(ctx, 1, &got))

	v.Clear(ctx)
	assert.Equal(t, uint64(0), v.Len(ctx))
}

func TestVecBeyondTwoHundredFiftySix(t *testing.T) {
	ctx, key, cdc := setupStore(t)
	v := NewVec(key, cdc, []byte{0x06})
	for i := uint64(0); i < 300; i++ {
		v.PushRaw(ctx, sdk.Uint64ToBigEndian(i))
	}
	var last uint64
	var count int
	v.Iterate(ctx, func(idx uint64, bz []byte) bool {
		require.Equal(t, idx, sdk.BigEndianToUint64(bz))
		if count > 0 {
			require.Greater(t, idx, last)
		}
		last = idx
		count++
		return false
	})
	assert.Equal(t, 300, count)
}

func TestWritesStagedInCacheContext(t *testing.T) {
	ctx, key, cdc := setupStore(t)
	v := NewVec(key, cdc, []byte{0x07})
	v.Push(ctx, record{Name: "committed"})

	cacheCtx, write := ctx.CacheContext()
	v.Push(cacheCtx, record{Name: "staged"})
	assert.Equal(t, uint64(2), v.Len(cacheCtx))
	assert.Equal(t, uint64(1), v.Len(ctx))

	write()
	assert.Equal(t, uint64(2), v.Len(ctx))
}
