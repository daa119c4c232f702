package main

import (
	"github.com/cosmos/cosmos-sdk/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/filament-network/hub/x/core/client/cli"
)

const flagLogLevel = "log_level"

// NewRootCmd creates a new root command for filamentd
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "filamentd",
		Short:        "Filament hub campaign ledger",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "The logging level (trace|debug|info|warn|error|fatal|panic)")
	rootCmd.AddCommand(
		cli.GenesisCmd(),
		ReplayCmd(),
		ServeCmd(),
	)
	return rootCmd
}

// newLogger writes human readable logs to the command's stderr
func newLogger(cmd *cobra.Command) (log.Logger, error) {
	lvlStr, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	lvl, err := zerolog.ParseLevel(lvlStr)
	if err != nil {
		return nil, errors.Wrapf(err, "flag %s", flagLogLevel)
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(lvl).With().Timestamp().Logger()
	return server.ZeroLogWrapper{Logger: zl}, nil
}
