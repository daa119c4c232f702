package cli

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	tmrand "github.com/tendermint/tendermint/libs/rand"

	"github.com/filament-network/hub/x/core/types"
)

// GenesisCmd groups the commands that edit the module section of a genesis document
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Create and edit the core section of a genesis document",
		Args:  cobra.NoArgs,
	}
	cmd.PersistentFlags().AddFlagSet(GenesisFlagSet())
	cmd.AddCommand(
		InitGenesisCmd(),
		AddIndexerCmd(),
		AddRelayerCmd(),
		AddDelegateCmd(),
		SetPowerCmd(),
		SetEthAddressCmd(),
		ValidateGenesisCmd(),
	)
	return cmd
}

func genesisIO(cmd *cobra.Command) GenesisIO {
	path, _ := cmd.Flags().GetString(FlagGenesis)
	return NewGenesisIO(path)
}

// InitGenesisCmd writes a new genesis document with the default module state
func InitGenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a new genesis document",
		Long: `Write a new genesis document with an empty core state.

Example:
	filamentd genesis init --admin fila1... --chain-id filament-1
	`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gio := genesisIO(cmd)
			overwrite, _ := cmd.Flags().GetBool(FlagOverwrite)
			if exists(gio.Path()) && !overwrite {
				return errors.Errorf("genesis %s exists, use --%s to replace it", gio.Path(), FlagOverwrite)
			}
			chainID, _ := cmd.Flags().GetString(FlagChainID)
			if chainID == "" {
				chainID = "filament-" + tmrand.Str(6)
			}
			state := types.DefaultGenesisState()
			if adminStr, _ := cmd.Flags().GetString(FlagAdmin); adminStr != "" {
				admin, err := sdk.AccAddressFromBech32(adminStr)
				if err != nil {
					return sdkerrors.Wrap(err, "admin")
				}
				state.Admin = admin
			}
			if err := gio.Create(chainID, time.Now().UTC().Format(time.RFC3339Nano), state); err != nil {
				return err
			}
			return printf(cmd, "genesis written to %s with chain id %s\n", gio.Path(), chainID)
		},
	}
	cmd.Flags().String(FlagAdmin, "", "Bech32 address of the module admin; no admin when empty")
	cmd.Flags().String(FlagChainID, "", "Genesis file chain-id, if left blank will be randomly created")
	cmd.Flags().Bool(FlagOverwrite, false, "Replace an existing genesis document")
	return cmd
}

// AddIndexerCmd adds an indexer to the genesis registry
func AddIndexerCmd() *cobra.Command {
	return aliasedCmd("add-indexer", "indexer", func(g *types.GenesisState, addr sdk.AccAddress, alias string) {
		g.Indexers = append(g.Indexers, types.Indexer{Address: addr, Alias: alias})
	})
}

// AddRelayerCmd adds a relayer to the genesis registry
func AddRelayerCmd() *cobra.Command {
	return aliasedCmd("add-relayer", "relayer", func(g *types.GenesisState, addr sdk.AccAddress, alias string) {
		g.Relayers = append(g.Relayers, types.Relayer{Address: addr, Alias: alias})
	})
}

// AddDelegateCmd adds a delegate to the genesis delegate pool
func AddDelegateCmd() *cobra.Command {
	return aliasedCmd("add-delegate", "delegate", func(g *types.GenesisState, addr sdk.AccAddress, alias string) {
		g.Delegates = append(g.Delegates, types.Delegate{Address: addr, Alias: alias})
	})
}

func aliasedCmd(use, kind string, add func(g *types.GenesisState, addr sdk.AccAddress, alias string)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [address] [alias]",
		Short: fmt.Sprintf("Add a %s to the genesis document", kind),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(err, "address")
			}
			if err := genesisIO(cmd).Alter(func(g *types.GenesisState) error {
				add(g, addr, args[1])
				return nil
			}); err != nil {
				return err
			}
			return printf(cmd, "%s %s added\n", kind, addr)
		},
	}
}

// SetPowerCmd sets the voting power of an address. Zero removes the entry.
func SetPowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-power [address] [power]",
		Short: "Set the genesis voting power of an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(err, "address")
			}
			power, err := cast.ToUint64E(args[1])
			if err != nil {
				return sdkerrors.Wrap(types.ErrInvalid, err.Error())
			}
			return genesisIO(cmd).Alter(func(g *types.GenesisState) error {
				g.Powers = setPower(g.Powers, addr, power)
				return nil
			})
		},
	}
}

func setPower(entries []types.PowerEntry, addr sdk.AccAddress, power uint64) []types.PowerEntry {
	r := make([]types.PowerEntry, 0, len(entries)+1)
	for _, e := range entries {
		if !e.Address.Equals(addr) {
			r = append(r, e)
		}
	}
	if power != 0 {
		r = append(r, types.PowerEntry{Address: addr, Power: power})
	}
	types.SortByPower(r)
	return r
}

// SetEthAddressCmd links an address to its external chain address
func SetEthAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-eth-address [address] [external-address]",
		Short: "Link an address to its external chain address in the genesis document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return sdkerrors.Wrap(err, "address")
			}
			return genesisIO(cmd).Alter(func(g *types.GenesisState) error {
				for i, e := range g.EthAddresses {
					if e.Address.Equals(addr) {
						g.EthAddresses[i].ExternalID = args[1]
						return nil
					}
				}
				g.EthAddresses = append(g.EthAddresses, types.EthAddress{Address: addr, ExternalID: args[1]})
				return nil
			})
		},
	}
}

// ValidateGenesisCmd validates the module section of a genesis document
func ValidateGenesisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the core section of the genesis document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gio := genesisIO(cmd)
			state, err := gio.Read()
			if err != nil {
				return err
			}
			if err := types.ValidateGenesis(state); err != nil {
				return sdkerrors.Wrapf(err, "genesis %s", gio.Path())
			}
			return printf(cmd, "genesis %s is valid\n", gio.Path())
		},
	}
}

func printf(cmd *cobra.Command, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	return err
}
