package cli

import (
	flag "github.com/spf13/pflag"
)

const (
	FlagGenesis   = "genesis"
	FlagAdmin     = "admin"
	FlagChainID   = "chain-id"
	FlagOverwrite = "overwrite"

	DefaultGenesisFile = "genesis.json"
)

// GenesisFlagSet returns the flags of all commands that read a genesis document
func GenesisFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.String(FlagGenesis, DefaultGenesisFile, "Path of the genesis document")
	return fs
}
