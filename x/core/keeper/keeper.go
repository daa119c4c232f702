package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/filament-network/hub/x/core/ledger"
	"github.com/filament-network/hub/x/core/types"
)

// Option is an extension point to instantiate keeper with non default values
type Option func(*Keeper)

// WithConfirmationPolicy replaces the default rule deciding who confirms or rejects criteria
func WithConfirmationPolicy(p types.ConfirmationPolicy) Option {
	return func(k *Keeper) {
		k.policy = p
	}
}

// Keeper owns all state of the campaign core. Every read and write goes through the ledger accessors.
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey sdk.StoreKey
	policy   types.ConfirmationPolicy

	admin                 ledger.Value
	nextCampaignID        ledger.Value
	campaigns             ledger.Map
	campaignsByOrigin     ledger.Map
	campaignsByCampaigner ledger.Map
	nextProposalIDs       ledger.Map
	proposals             ledger.Map
	segments              ledger.Map
	delegates             ledger.Vec
	indexers              registry
	relayers              registry
	powers                ledger.Map
	ranking               ledger.Vec
	totalPower            ledger.Value
	ethAddresses          ledger.Map
}

// NewKeeper constructor
func NewKeeper(cdc *codec.LegacyAmino, storeKey sdk.StoreKey, opts ...Option) Keeper {
	k := Keeper{
		cdc:                   cdc,
		storeKey:              storeKey,
		policy:                CampaignerPolicy{},
		admin:                 ledger.NewValue(storeKey, cdc, types.AdminKey),
		nextCampaignID:        ledger.NewValue(storeKey, cdc, types.NextCampaignIDKey),
		campaigns:             ledger.NewMap(storeKey, cdc, types.CampaignsKeyPrefix),
		campaignsByOrigin:     ledger.NewMap(storeKey, cdc, types.CampaignsByOriginKeyPrefix),
		campaignsByCampaigner: ledger.NewMap(storeKey, cdc, types.CampaignsByCampaignerKeyPrefix),
		nextProposalIDs:       ledger.NewMap(storeKey, cdc, types.NextProposalIDKeyPrefix),
		proposals:             ledger.NewMap(storeKey, cdc, types.CriteriaProposalsKeyPrefix),
		segments:              ledger.NewMap(storeKey, cdc, types.SegmentsKeyPrefix),
		delegates:             ledger.NewVec(storeKey, cdc, types.DelegatesKeyPrefix),
		indexers: registry{
			members:           ledger.NewVec(storeKey, cdc, types.IndexersKeyPrefix),
			aliases:           ledger.NewMap(storeKey, cdc, types.IndexerAliasesKeyPrefix),
			errNotRegistered:  types.ErrIndexerNotRegistered,
			registeredEvent:   types.EventTypeIndexerRegistered,
			unregisteredEvent: types.EventTypeIndexerUnregistered,
		},
		relayers: registry{
			members:           ledger.NewVec(storeKey, cdc, types.RelayersKeyPrefix),
			aliases:           ledger.NewMap(storeKey, cdc, types.RelayerAliasesKeyPrefix),
			errNotRegistered:  types.ErrRelayerNotRegistered,
			registeredEvent:   types.EventTypeRelayerRegistered,
			unregisteredEvent: types.EventTypeRelayerUnregistered,
		},
		powers:       ledger.NewMap(storeKey, cdc, types.PowersKeyPrefix),
		ranking:      ledger.NewVec(storeKey, cdc, types.PowerRankingKeyPrefix),
		totalPower:   ledger.NewValue(storeKey, cdc, types.TotalPowerKey),
		ethAddresses: ledger.NewMap(storeKey, cdc, types.EthAddressesKeyPrefix),
	}
	for _, o := range opts {
		o(&k)
	}
	return k
}

// ModuleLogger returns a module-specific logger.
func ModuleLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) emit(ctx sdk.Context, e types.Event) {
	ctx.EventManager().EmitEvent(types.NewSDKEvent(e))
}

// SetAdmin stores the module admin. Genesis only.
func (k Keeper) SetAdmin(ctx sdk.Context, admin sdk.AccAddress) {
	k.admin.SetRaw(ctx, admin)
}

// GetAdmin returns the admin and false when none was set
func (k Keeper) GetAdmin(ctx sdk.Context) (sdk.AccAddress, bool) {
	bz := k.admin.GetRaw(ctx)
	if len(bz) == 0 {
		return nil, false
	}
	return bz, true
}

func (k Keeper) requireAdmin(ctx sdk.Context, sender sdk.AccAddress) error {
	admin, ok := k.GetAdmin(ctx)
	if !ok {
		return types.ErrAdminNotSet
	}
	if !admin.Equals(sender) {
		return sdkerrors.Wrap(types.ErrSenderNotAdmin, sender.String())
	}
	return nil
}

// AddDelegate appends to the delegate pool new campaigns start with. Genesis only.
func (k Keeper) AddDelegate(ctx sdk.Context, d types.Delegate) {
	k.delegates.Push(ctx, d)
}

// GetDelegates returns the delegate pool in insertion order
func (k Keeper) GetDelegates(ctx sdk.Context) []types.Delegate {
	r := make([]types.Delegate, 0, k.delegates.Len(ctx))
	k.delegates.Iterate(ctx, func(_ uint64, bz []byte) bool {
		var d types.Delegate
		k.delegates.Decode(bz, &d)
		r = append(r, d)
		return false
	})
	return r
}

// SetEthAddress links an account to its external chain address
func (k Keeper) SetEthAddress(ctx sdk.Context, addr sdk.AccAddress, externalID string) {
	k.ethAddresses.SetRaw(ctx, addr, []byte(externalID))
}

// GetEthAddress returns the linked external address and false when none is set
func (k Keeper) GetEthAddress(ctx sdk.Context, addr sdk.AccAddress) (string, bool) {
	if len(addr) == 0 {
		return "", false
	}
	bz := k.ethAddresses.GetRaw(ctx, addr)
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

// IterateEthAddresses in address byte order
func (k Keeper) IterateEthAddresses(ctx sdk.Context, cb func(types.EthAddress) bool) {
	k.ethAddresses.Iterate(ctx, nil, func(key, value []byte) bool {
		return cb(types.EthAddress{Address: append(sdk.AccAddress{}, key...), ExternalID: string(value)})
	})
}
