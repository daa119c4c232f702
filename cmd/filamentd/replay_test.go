package main

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	"gopkg.in/yaml.v2"

	"github.com/filament-network/hub/x/core/client/cli"
	"github.com/filament-network/hub/x/core/types"
)

type replayFixture struct {
	genesisFile string
	txsFile     string
	state       types.GenesisState
	indexer     sdk.AccAddress
	campaigner  sdk.AccAddress
}

func setupReplay(t *testing.T) replayFixture {
	t.Helper()
	dir := t.TempDir()
	f := replayFixture{
		genesisFile: filepath.Join(dir, "genesis.json"),
		txsFile:     filepath.Join(dir, "txs.json"),
		state:       types.GenesisStateFixture(),
		indexer:     types.RandomAccAddress(),
		campaigner:  types.RandomAccAddress(),
	}
	genesisTime := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
	require.NoError(t, cli.NewGenesisIO(f.genesisFile).Create("testing", genesisTime, f.state))

	calls := []types.SignedCall{
		{Sender: f.state.Admin, Msg: &types.MsgRegisterIndexer{Address: f.indexer, Alias: "idx2"}},
		{Sender: types.RandomAccAddress(), Msg: &types.MsgRegisterIndexer{Address: types.RandomAccAddress(), Alias: "other"}},
		{Sender: f.campaigner, Msg: types.MsgCreateCampaignFixture()},
	}
	bz, err := types.ModuleCdc.MarshalJSON(calls)
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(f.txsFile, bz, 0644))
	return f
}

func TestReplayCmd(t *testing.T) {
	f := setupReplay(t)

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"replay", f.txsFile, "--genesis", f.genesisFile, "--log_level", "error"})

	// when
	require.NoError(t, cmd.Execute())

	// then
	var got ReplayOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "testing", got.ChainID)
	assert.Equal(t, int64(1), got.Height)
	assert.NotEmpty(t, got.AppHash)
	require.Len(t, got.Results, 3)

	assert.Empty(t, got.Results[0].Error)
	assert.Equal(t, types.TypeMsgRegisterIndexer, got.Results[0].Type)
	require.Len(t, got.Results[0].Events, 1)
	assert.Equal(t, types.EventTypeIndexerRegistered, got.Results[0].Events[0].Type)

	assert.NotEmpty(t, got.Results[1].Error)
	assert.Empty(t, got.Results[1].Events)

	assert.Empty(t, got.Results[2].Error)
	assert.Equal(t, f.campaigner.String(), got.Results[2].Sender)
	assert.Equal(t, "0000000000000000", got.Results[2].Data)
	require.NotEmpty(t, got.Results[2].Events)
	assert.Equal(t, types.EventTypeCampaignInitialized, got.Results[2].Events[0].Type)

	assert.Contains(t, errOut.String(), "call failed")
}

func TestReplayDeterministic(t *testing.T) {
	f := setupReplay(t)

	var hashes []string
	for i := 0; i < 2; i++ {
		cmd := ReplayCmd()
		require.NoError(t, cmd.Flags().Set(cli.FlagGenesis, f.genesisFile))
		_, out, err := replayFile(cmd, log.NewNopLogger(), f.txsFile)
		require.NoError(t, err)
		hashes = append(hashes, out.AppHash)
	}
	assert.Equal(t, hashes[0], hashes[1])
}

func TestReplayServesCommittedState(t *testing.T) {
	f := setupReplay(t)
	cmd := ReplayCmd()
	require.NoError(t, cmd.Flags().Set(cli.FlagGenesis, f.genesisFile))
	c, _, err := replayFile(cmd, log.NewNopLogger(), f.txsFile)
	require.NoError(t, err)
	r := newRouter(c)

	specs := map[string]struct {
		path      string
		expStatus int
	}{
		"campaign created by replay":   {path: "/core/campaigns/0", expStatus: http.StatusOK},
		"indexer registered by replay": {path: "/core/indexers/" + f.indexer.String(), expStatus: http.StatusOK},
		"genesis relayer":              {path: "/core/relayers/" + f.state.Relayers[0].Address.String(), expStatus: http.StatusOK},
		"campaign not created":         {path: "/core/campaigns/1", expStatus: http.StatusNotFound},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, spec.path, nil))
			assert.Equal(t, spec.expStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestReplayInvalidInput(t *testing.T) {
	f := setupReplay(t)
	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, ioutil.WriteFile(broken, []byte(`[{"sender":`), 0644))

	specs := map[string][]string{
		"missing genesis":   {"replay", f.txsFile, "--genesis", filepath.Join(t.TempDir(), "none.json")},
		"broken calls":      {"replay", broken, "--genesis", f.genesisFile},
		"missing calls":     {"replay", filepath.Join(t.TempDir(), "none.json"), "--genesis", f.genesisFile},
		"invalid log level": {"replay", f.txsFile, "--genesis", f.genesisFile, "--log_level", "loud"},
	}
	for name, args := range specs {
		t.Run(name, func(t *testing.T) {
			cmd := NewRootCmd()
			cmd.SetOut(ioutil.Discard)
			cmd.SetErr(ioutil.Discard)
			cmd.SetArgs(args)
			assert.Error(t, cmd.Execute())
		})
	}
}
