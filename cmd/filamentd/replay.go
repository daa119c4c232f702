package main

import (
	"encoding/hex"
	"io/ioutil"

	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"
	"gopkg.in/yaml.v2"

	"github.com/filament-network/hub/x/core"
	"github.com/filament-network/hub/x/core/client/cli"
	"github.com/filament-network/hub/x/core/keeper"
	"github.com/filament-network/hub/x/core/types"
)

// ReplayCmd applies a list of signed calls on top of a genesis document
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <txs.json>",
		Short: "Apply signed calls to the genesis state and print the results",
		Long: `Load the genesis document into an in memory store, apply every signed call
of the given file in order and print the results and events as YAML.

A failing call leaves no trace in the state. Replay continues with the next call.

Example:
	filamentd replay txs.json --genesis genesis.json
	`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			_, out, err := replayFile(cmd, logger, args[0])
			if err != nil {
				return err
			}
			bz, err := yaml.Marshal(out)
			if err != nil {
				return errors.Wrap(err, "yaml")
			}
			_, err = cmd.OutOrStdout().Write(bz)
			return err
		},
	}
	cmd.Flags().AddFlagSet(cli.GenesisFlagSet())
	return cmd
}

// ReplayOutput is the printed summary of a replay
type ReplayOutput struct {
	ChainID string       `yaml:"chain_id"`
	Height  int64        `yaml:"height"`
	AppHash string       `yaml:"app_hash"`
	Results []CallResult `yaml:"results"`
}

// CallResult is the outcome of a single call
type CallResult struct {
	Index  int           `yaml:"index"`
	Type   string        `yaml:"type"`
	Sender string        `yaml:"sender"`
	Data   string        `yaml:"data,omitempty"`
	Error  string        `yaml:"error,omitempty"`
	Events []EventOutput `yaml:"events,omitempty"`
}

type EventOutput struct {
	Type       string            `yaml:"type"`
	Attributes []AttributeOutput `yaml:"attributes"`
}

type AttributeOutput struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

func replayFile(cmd *cobra.Command, logger log.Logger, txsFile string) (*chain, ReplayOutput, error) {
	path, err := cmd.Flags().GetString(cli.FlagGenesis)
	if err != nil {
		return nil, ReplayOutput{}, err
	}
	gio := cli.NewGenesisIO(path)
	state, err := gio.Read()
	if err != nil {
		return nil, ReplayOutput{}, err
	}
	chainID, err := gio.ChainID()
	if err != nil {
		return nil, ReplayOutput{}, err
	}
	genesisTime, err := gio.GenesisTime()
	if err != nil {
		return nil, ReplayOutput{}, err
	}
	calls, err := readCalls(txsFile)
	if err != nil {
		return nil, ReplayOutput{}, err
	}

	c, err := newChain(logger, tmproto.Header{ChainID: chainID, Height: 1, Time: genesisTime})
	if err != nil {
		return nil, ReplayOutput{}, err
	}
	if err := c.initGenesis(state); err != nil {
		return nil, ReplayOutput{}, err
	}
	results := c.apply(calls)
	commitID := c.commit()
	return c, ReplayOutput{
		ChainID: chainID,
		Height:  commitID.Version,
		AppHash: hex.EncodeToString(commitID.Hash),
		Results: results,
	}, nil
}

func readCalls(path string) ([]types.SignedCall, error) {
	bz, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read calls %s", path)
	}
	var calls []types.SignedCall
	if err := types.ModuleCdc.UnmarshalJSON(bz, &calls); err != nil {
		return nil, errors.Wrapf(err, "decode calls %s", path)
	}
	return calls, nil
}

// chain is a single store application of the module on an in memory db
type chain struct {
	ms      storetypes.CommitMultiStore
	keeper  keeper.Keeper
	handler core.Handler
	header  tmproto.Header
	logger  log.Logger
}

func newChain(logger log.Logger, header tmproto.Header) (*chain, error) {
	db := dbm.NewMemDB()
	key := sdk.NewKVStoreKey(types.StoreKey)
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(key, sdk.StoreTypeIAVL, db)
	if err := ms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load store")
	}
	k := keeper.NewKeeper(types.ModuleCdc, key)
	return &chain{
		ms:      ms,
		keeper:  k,
		handler: core.NewHandler(k),
		header:  header,
		logger:  logger,
	}, nil
}

func (c *chain) deliverContext() sdk.Context {
	return sdk.NewContext(c.ms, c.header, false, c.logger)
}

func (c *chain) initGenesis(state types.GenesisState) error {
	return keeper.InitGenesis(c.deliverContext(), c.keeper, state)
}

func (c *chain) apply(calls []types.SignedCall) []CallResult {
	ctx := c.deliverContext()
	results := make([]CallResult, len(calls))
	for i, call := range calls {
		r := CallResult{Index: i, Sender: call.Sender.String()}
		if call.Msg != nil {
			r.Type = call.Msg.Type()
		}
		res, err := c.handler(ctx, call.Sender, call.Msg)
		if err != nil {
			r.Error = err.Error()
			c.logger.Error("call failed", "index", i, "type", r.Type, "err", err)
		} else {
			r.Data = hex.EncodeToString(res.Data)
			r.Events = eventsOutput(res)
		}
		results[i] = r
	}
	return results
}

func (c *chain) commit() storetypes.CommitID {
	id := c.ms.Commit()
	c.logger.Info("state committed", "height", id.Version, "app_hash", hex.EncodeToString(id.Hash))
	return id
}

// queryContext returns a read only context on a snapshot of the last commit.
// Each call gets its own snapshot so concurrent readers never share a cache.
func (c *chain) queryContext() (sdk.Context, error) {
	version := c.ms.LastCommitID().Version
	cms, err := c.ms.CacheMultiStoreWithVersion(version)
	if err != nil {
		return sdk.Context{}, errors.Wrapf(err, "snapshot at height %d", version)
	}
	return sdk.NewContext(cms, c.header, true, c.logger), nil
}

func eventsOutput(res *sdk.Result) []EventOutput {
	r := make([]EventOutput, len(res.Events))
	for i, e := range res.Events {
		attrs := make([]AttributeOutput, len(e.Attributes))
		for j, a := range e.Attributes {
			attrs[j] = AttributeOutput{Key: string(a.Key), Value: string(a.Value)}
		}
		r[i] = EventOutput{Type: e.Type, Attributes: attrs}
	}
	return r
}
