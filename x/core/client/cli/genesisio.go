package cli

import (
	"io/ioutil"
	"os"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/filament-network/hub/x/core/types"
)

// AppStatePath is the location of the module section inside a genesis document
const AppStatePath = "app_state." + types.ModuleName

// GenesisIO edits the module section of a genesis document in place. All other
// content of the document is preserved as is.
type GenesisIO struct {
	path string
}

func NewGenesisIO(path string) GenesisIO {
	return GenesisIO{path: path}
}

func (g GenesisIO) Path() string {
	return g.path
}

// ReadRaw returns the full document
func (g GenesisIO) ReadRaw() ([]byte, error) {
	bz, err := ioutil.ReadFile(g.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read genesis %s", g.path)
	}
	if !gjson.ValidBytes(bz) {
		return nil, errors.Errorf("genesis %s: invalid json", g.path)
	}
	return bz, nil
}

// ChainID returns the chain id of the document
func (g GenesisIO) ChainID() (string, error) {
	bz, err := g.ReadRaw()
	if err != nil {
		return "", err
	}
	return gjson.GetBytes(bz, "chain_id").String(), nil
}

// GenesisTime returns the genesis time of the document
func (g GenesisIO) GenesisTime() (time.Time, error) {
	bz, err := g.ReadRaw()
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, gjson.GetBytes(bz, "genesis_time").String())
	return t, errors.Wrapf(err, "genesis %s: genesis time", g.path)
}

// Read decodes the module section. A document without one yields the default state.
func (g GenesisIO) Read() (types.GenesisState, error) {
	bz, err := g.ReadRaw()
	if err != nil {
		return types.GenesisState{}, err
	}
	return decodeSection(bz)
}

func decodeSection(doc []byte) (types.GenesisState, error) {
	section := gjson.GetBytes(doc, AppStatePath)
	if !section.Exists() {
		return types.DefaultGenesisState(), nil
	}
	var state types.GenesisState
	if err := types.ModuleCdc.UnmarshalJSON([]byte(section.Raw), &state); err != nil {
		return types.GenesisState{}, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return state, nil
}

// Alter applies the mutator to the module section and writes the document back.
// Nothing is written when the mutated state does not validate.
func (g GenesisIO) Alter(mutator func(*types.GenesisState) error) error {
	doc, err := g.ReadRaw()
	if err != nil {
		return err
	}
	state, err := decodeSection(doc)
	if err != nil {
		return err
	}
	if err := mutator(&state); err != nil {
		return err
	}
	if err := types.ValidateGenesis(state); err != nil {
		return err
	}
	return g.write(doc, state)
}

// Create writes a new document with the given chain id and module state
func (g GenesisIO) Create(chainID string, genesisTime string, state types.GenesisState) error {
	if err := types.ValidateGenesis(state); err != nil {
		return err
	}
	doc, err := sjson.SetBytes([]byte(`{}`), "genesis_time", genesisTime)
	if err != nil {
		return errors.Wrap(err, "genesis time")
	}
	if doc, err = sjson.SetBytes(doc, "chain_id", chainID); err != nil {
		return errors.Wrap(err, "chain id")
	}
	return g.write(doc, state)
}

func (g GenesisIO) write(doc []byte, state types.GenesisState) error {
	section, err := types.ModuleCdc.MarshalJSON(state)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}
	doc, err = sjson.SetRawBytes(doc, AppStatePath, section)
	if err != nil {
		return errors.Wrap(err, "set module state")
	}
	return errors.Wrapf(ioutil.WriteFile(g.path, doc, 0644), "write genesis %s", g.path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
