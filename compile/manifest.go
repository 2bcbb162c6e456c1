package compile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/wasm-aot/errors"
)

// ManifestName is the per-project configuration file looked up next to the
// input module.
const ManifestName = "aot.toml"

// Manifest is the optional project configuration. Flags override any field.
type Manifest struct {
	Output    string `toml:"output"`
	Component bool   `toml:"component"`
	Jobs      int    `toml:"jobs"`
}

// LoadManifest reads a manifest file. A missing file is not an error and
// yields the zero manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, errors.InvalidData(errors.PhaseParse, "read manifest", err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.InvalidData(errors.PhaseParse, "parse manifest", err)
	}
	return &m, nil
}
