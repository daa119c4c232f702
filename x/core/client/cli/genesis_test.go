package cli

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/filament-network/hub/x/core/types"
)

func runGenesisCmd(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	cmd := GenesisCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append(args, "--"+FlagGenesis, path))
	err := cmd.Execute()
	return out.String(), err
}

func TestGenesisCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.json")
	admin := types.RandomAccAddress()
	indexer := types.RandomAccAddress()
	relayer := types.RandomAccAddress()

	_, err := runGenesisCmd(t, path, "init", "--admin", admin.String(), "--chain-id", "testing")
	require.NoError(t, err)
	_, err = runGenesisCmd(t, path, "init")
	require.Error(t, err, "must not overwrite")

	_, err = runGenesisCmd(t, path, "add-indexer", indexer.String(), "idx1")
	require.NoError(t, err)
	_, err = runGenesisCmd(t, path, "add-indexer", indexer.String(), "again")
	require.Error(t, err, "duplicate indexer")
	_, err = runGenesisCmd(t, path, "add-relayer", relayer.String(), "relayer1")
	require.NoError(t, err)
	_, err = runGenesisCmd(t, path, "add-delegate", relayer.String(), "delegate1")
	require.NoError(t, err)
	_, err = runGenesisCmd(t, path, "set-power", relayer.String(), "100")
	require.NoError(t, err)
	_, err = runGenesisCmd(t, path, "set-power", indexer.String(), "7")
	require.NoError(t, err)
	_, err = runGenesisCmd(t, path, "set-power", indexer.String(), "-1")
	require.Error(t, err)
	_, err = runGenesisCmd(t, path, "set-eth-address", relayer.String(), "0xabc")
	require.NoError(t, err)
	out, err := runGenesisCmd(t, path, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	gio := NewGenesisIO(path)
	chainID, err := gio.ChainID()
	require.NoError(t, err)
	assert.Equal(t, "testing", chainID)

	got, err := gio.Read()
	require.NoError(t, err)
	assert.Equal(t, admin, got.Admin)
	assert.Equal(t, []types.Indexer{{Address: indexer, Alias: "idx1"}}, got.Indexers)
	assert.Equal(t, []types.Relayer{{Address: relayer, Alias: "relayer1"}}, got.Relayers)
	assert.Equal(t, []types.Delegate{{Address: relayer, Alias: "delegate1"}}, got.Delegates)
	assert.Equal(t, []types.PowerEntry{{Address: relayer, Power: 100}, {Address: indexer, Power: 7}}, got.Powers)
	assert.Equal(t, []types.EthAddress{{Address: relayer, ExternalID: "0xabc"}}, got.EthAddresses)

	// zero power removes the entry
	_, err = runGenesisCmd(t, path, "set-power", indexer.String(), "0")
	require.NoError(t, err)
	got, err = gio.Read()
	require.NoError(t, err)
	assert.Len(t, got.Powers, 1)
}

func TestGenesisIOPreservesOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.json")
	doc := []byte(`{"chain_id":"testing","app_state":{"bank":{"balances":[{"address":"x"}]}},"consensus_params":{"block":{"max_gas":"-1"}}}`)
	require.NoError(t, ioutil.WriteFile(path, doc, 0644))
	gio := NewGenesisIO(path)

	// when
	require.NoError(t, gio.Alter(func(g *types.GenesisState) error {
		g.Relayers = append(g.Relayers, types.Relayer{Address: types.RandomAccAddress(), Alias: "relayer1"})
		return nil
	}))

	// then
	raw, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"balances":[{"address":"x"}]}`, gjson.GetBytes(raw, "app_state.bank").Raw)
	assert.Equal(t, "-1", gjson.GetBytes(raw, "consensus_params.block.max_gas").String())
	assert.Equal(t, "relayer1", gjson.GetBytes(raw, AppStatePath+".relayers.0.alias").String())
}

func TestGenesisIORejectsInvalidState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.json")
	gio := NewGenesisIO(path)
	require.NoError(t, gio.Create("testing", "2020-04-22T12:00:00Z", types.DefaultGenesisState()))
	before, err := ioutil.ReadFile(path)
	require.NoError(t, err)

	// corrupt the admin through raw json surgery
	corrupted, err := sjson.SetBytes(before, AppStatePath+".admin", "not-an-address")
	require.NoError(t, err)
	require.NoError(t, ioutil.WriteFile(path, corrupted, 0644))
	_, err = gio.Read()
	require.Error(t, err)

	require.NoError(t, ioutil.WriteFile(path, before, 0644))
	relayer := types.Relayer{Address: types.RandomAccAddress(), Alias: "relayer1"}
	err = gio.Alter(func(g *types.GenesisState) error {
		g.Relayers = append(g.Relayers, relayer, relayer)
		return nil
	})
	require.Error(t, err)
	after, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGenesisIOMissingFile(t *testing.T) {
	_, err := NewGenesisIO(filepath.Join(t.TempDir(), "missing.json")).Read()
	require.Error(t, err)
}
