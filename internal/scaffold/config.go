package scaffold

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/solforge/solforge/internal/fsutil"
)

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "foundry.toml"

// configReference is appended to generated configuration files.
const configReference = "\n# See more config options https://github.com/foundry-rs/foundry/blob/master/crates/config/README.md#all-options\n"

// vyperConfig is the fixed Vyper-variant configuration. FFI stays enabled so
// the test suite can shell out to the vyper compiler.
const vyperConfig = `[profile.default]
src = "src"
out = "out"
libs = ["lib"]
ffi = true
` + configReference

// Profile holds the basic per-profile project configuration.
type Profile struct {
	Src  string   `toml:"src"`
	Out  string   `toml:"out"`
	Libs []string `toml:"libs"`
}

// Config is the project configuration document.
type Config struct {
	Profile map[string]Profile `toml:"profile"`
}

// DefaultConfig returns the basic default-profile configuration.
func DefaultConfig() Config {
	return Config{
		Profile: map[string]Profile{
			"default": {
				Src:  "src",
				Out:  "out",
				Libs: []string{"lib"},
			},
		},
	}
}

// renderConfig produces the configuration file content for the variant:
// the Vyper variant uses the fixed FFI-enabled document, the default variant
// derives its document from DefaultConfig.
func renderConfig(v Variant) ([]byte, error) {
	if v == Vyper {
		return []byte(vyperConfig), nil
	}
	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return append(data, []byte(configReference)...), nil
}

// writeConfigIfAbsent writes the project configuration file at path only if
// it does not exist yet.
func writeConfigIfAbsent(path string, v Variant) (bool, error) {
	content, err := renderConfig(v)
	if err != nil {
		return false, err
	}
	return fsutil.WriteIfAbsent(path, content)
}
