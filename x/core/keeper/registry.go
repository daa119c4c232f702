package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/filament-network/hub/x/core/ledger"
	"github.com/filament-network/hub/x/core/types"
)

// registry is an admin gated membership list. Members are kept in insertion
// order next to an alias mapping that doubles as the membership index.
type registry struct {
	members           ledger.Vec
	aliases           ledger.Map
	errNotRegistered  *sdkerrors.Error
	registeredEvent   string
	unregisteredEvent string
}

// set adds the address if absent and overwrites its alias
func (r registry) set(ctx sdk.Context, addr sdk.AccAddress, alias string) {
	if !r.aliases.Has(ctx, addr) {
		r.members.PushRaw(ctx, addr)
	}
	r.aliases.SetRaw(ctx, addr, []byte(alias))
}

func (r registry) remove(ctx sdk.Context, addr sdk.AccAddress) error {
	if !r.has(ctx, addr) {
		return sdkerrors.Wrap(r.errNotRegistered, addr.String())
	}
	remaining := make([][]byte, 0, r.members.Len(ctx))
	r.members.Iterate(ctx, func(_ uint64, bz []byte) bool {
		if !addr.Equals(sdk.AccAddress(bz)) {
			remaining = append(remaining, bz)
		}
		return false
	})
	r.members.ReplaceRaw(ctx, remaining)
	r.aliases.Delete(ctx, addr)
	return nil
}

func (r registry) alias(ctx sdk.Context, addr sdk.AccAddress) (string, bool) {
	if len(addr) == 0 {
		return "", false
	}
	bz := r.aliases.GetRaw(ctx, addr)
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

func (r registry) has(ctx sdk.Context, addr sdk.AccAddress) bool {
	return len(addr) != 0 && r.aliases.Has(ctx, addr)
}

// iterate in insertion order
func (r registry) iterate(ctx sdk.Context, cb func(addr sdk.AccAddress, alias string) bool) {
	r.members.Iterate(ctx, func(_ uint64, bz []byte) bool {
		addr := append(sdk.AccAddress{}, bz...)
		alias, _ := r.alias(ctx, addr)
		return cb(addr, alias)
	})
}

func (k Keeper) register(ctx sdk.Context, r registry, sender, addr sdk.AccAddress, alias string) error {
	if err := k.requireAdmin(ctx, sender); err != nil {
		return err
	}
	if err := sdk.VerifyAddressFormat(addr); err != nil {
		return sdkerrors.Wrap(err, "address")
	}
	if err := types.ValidateAlias(alias); err != nil {
		return err
	}
	r.set(ctx, addr, alias)
	k.emit(ctx, types.Registered{Type: r.registeredEvent, Addr: addr, Alias: alias, Sender: sender})
	return nil
}

func (k Keeper) unregister(ctx sdk.Context, r registry, sender, addr sdk.AccAddress) error {
	if err := k.requireAdmin(ctx, sender); err != nil {
		return err
	}
	if err := r.remove(ctx, addr); err != nil {
		return err
	}
	k.emit(ctx, types.Unregistered{Type: r.unregisteredEvent, Addr: addr, Sender: sender})
	return nil
}

// RegisterIndexer adds an indexer or overwrites the alias of a registered one. Admin only.
func (k Keeper) RegisterIndexer(ctx sdk.Context, sender, addr sdk.AccAddress, alias string) error {
	if err := k.register(ctx, k.indexers, sender, addr, alias); err != nil {
		return err
	}
	ModuleLogger(ctx).Info("indexer registered", "addr", addr.String(), "alias", alias)
	return nil
}

// UnregisterIndexer removes an indexer. Admin only.
func (k Keeper) UnregisterIndexer(ctx sdk.Context, sender, addr sdk.AccAddress) error {
	if err := k.unregister(ctx, k.indexers, sender, addr); err != nil {
		return err
	}
	ModuleLogger(ctx).Info("indexer unregistered", "addr", addr.String())
	return nil
}

// RegisterRelayer adds a relayer or overwrites the alias of a registered one. Admin only.
func (k Keeper) RegisterRelayer(ctx sdk.Context, sender, addr sdk.AccAddress, alias string) error {
	if err := k.register(ctx, k.relayers, sender, addr, alias); err != nil {
		return err
	}
	ModuleLogger(ctx).Info("relayer registered", "addr", addr.String(), "alias", alias)
	return nil
}

// UnregisterRelayer removes a relayer. Admin only.
func (k Keeper) UnregisterRelayer(ctx sdk.Context, sender, addr sdk.AccAddress) error {
	if err := k.unregister(ctx, k.relayers, sender, addr); err != nil {
		return err
	}
	ModuleLogger(ctx).Info("relayer unregistered", "addr", addr.String())
	return nil
}

func (k Keeper) GetIndexer(ctx sdk.Context, addr sdk.AccAddress) (types.Indexer, bool) {
	alias, ok := k.indexers.alias(ctx, addr)
	if !ok {
		return types.Indexer{}, false
	}
	return types.Indexer{Address: addr, Alias: alias}, true
}

func (k Keeper) IsIndexer(ctx sdk.Context, addr sdk.AccAddress) bool {
	return k.indexers.has(ctx, addr)
}

// GetIndexers returns all indexers in registration order
func (k Keeper) GetIndexers(ctx sdk.Context) []types.Indexer {
	var r []types.Indexer
	k.indexers.iterate(ctx, func(addr sdk.AccAddress, alias string) bool {
		r = append(r, types.Indexer{Address: addr, Alias: alias})
		return false
	})
	return r
}

func (k Keeper) GetRelayer(ctx sdk.Context, addr sdk.AccAddress) (types.Relayer, bool) {
	alias, ok := k.relayers.alias(ctx, addr)
	if !ok {
		return types.Relayer{}, false
	}
	return types.Relayer{Address: addr, Alias: alias}, true
}

func (k Keeper) IsRelayer(ctx sdk.Context, addr sdk.AccAddress) bool {
	return k.relayers.has(ctx, addr)
}

// GetRelayers returns all relayers in registration order
func (k Keeper) GetRelayers(ctx sdk.Context) []types.Relayer {
	var r []types.Relayer
	k.relayers.iterate(ctx, func(addr sdk.AccAddress, alias string) bool {
		r = append(r, types.Relayer{Address: addr, Alias: alias})
		return false
	})
	return r
}
