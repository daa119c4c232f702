package keeper

import (
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/types"
)

// SetPowers imports powers in bulk and rematerializes the ranking. Zero power entries are skipped.
func (k Keeper) SetPowers(ctx sdk.Context, entries []types.PowerEntry) error {
	total := k.GetTotalPower(ctx)
	for _, e := range entries {
		old, _ := k.GetPower(ctx, e.Address)
		next, ok := adjustTotal(total, old, e.Power)
		if !ok {
			return sdkerrors.Wrap(types.ErrInvalid, "total power overflow")
		}
		total = next
	}
	for _, e := range entries {
		k.setPower(ctx, e.Address, e.Power)
	}
	k.rematerializeRanking(ctx)
	return nil
}

// UpdateVotingPower sets the power of a single address. Only a registered relayer
// may submit an update and only for its own address. Zero power removes the address
// from the ranking.
func (k Keeper) UpdateVotingPower(ctx sdk.Context, sender, addr sdk.AccAddress, power uint64) error {
	if !k.IsRelayer(ctx, sender) {
		return sdkerrors.Wrap(types.ErrRelayerNotRegistered, sender.String())
	}
	if !addr.Equals(sender) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "%s can not update power of %s", sender, addr)
	}
	if err := sdk.VerifyAddressFormat(addr); err != nil {
		return sdkerrors.Wrap(err, "address")
	}
	old, _ := k.GetPower(ctx, addr)
	if _, ok := adjustTotal(k.GetTotalPower(ctx), old, power); !ok {
		return sdkerrors.Wrap(types.ErrInvalid, "total power overflow")
	}
	k.setPower(ctx, addr, power)
	k.rematerializeRanking(ctx)
	k.emit(ctx, types.VotingPowerUpdated{Addr: addr, Power: power, Relayer: sender})
	ModuleLogger(ctx).Info("voting power updated", "addr", addr.String(), "power", power)
	return nil
}

func adjustTotal(total, old, next uint64) (uint64, bool) {
	total -= old
	if next > math.MaxUint64-total {
		return 0, false
	}
	return total + next, true
}

func (k Keeper) setPower(ctx sdk.Context, addr sdk.AccAddress, power uint64) {
	if power == 0 {
		k.powers.Delete(ctx, addr)
		return
	}
	k.powers.SetUint64(ctx, addr, power)
}

// rematerializeRanking rebuilds the sorted ranking and the total from the power mapping.
func (k Keeper) rematerializeRanking(ctx sdk.Context) {
	var (
		entries []types.PowerEntry
		total   uint64
	)
	k.powers.Iterate(ctx, nil, func(key, value []byte) bool {
		p := sdk.BigEndianToUint64(value)
		entries = append(entries, types.PowerEntry{Address: append(sdk.AccAddress{}, key...), Power: p})
		total += p
		return false
	})
	types.SortByPower(entries)
	items := make([]interface{}, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	k.ranking.Replace(ctx, items)
	k.totalPower.SetUint64(ctx, total)
}

// GetPower returns the power of an address and false when it has none
func (k Keeper) GetPower(ctx sdk.Context, addr sdk.AccAddress) (uint64, bool) {
	if len(addr) == 0 {
		return 0, false
	}
	return k.powers.GetUint64(ctx, addr)
}

// GetRanking returns all entries by power descending with address ascending on ties
func (k Keeper) GetRanking(ctx sdk.Context) []types.PowerEntry {
	r := make([]types.PowerEntry, 0, k.ranking.Len(ctx))
	k.ranking.Iterate(ctx, func(_ uint64, bz []byte) bool {
		var e types.PowerEntry
		k.ranking.Decode(bz, &e)
		r = append(r, e)
		return false
	})
	return r
}

func (k Keeper) GetTotalPower(ctx sdk.Context) uint64 {
	total, _ := k.totalPower.GetUint64(ctx)
	return total
}
