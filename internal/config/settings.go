package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSettingsFile is read when present and no settings file is given.
const DefaultSettingsFile = "finsheet.toml"

// Settings holds defaults read from a TOML settings file. Empty fields are
// unset.
type Settings struct {
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	Output        string `toml:"output"`
	StartingMonth string `toml:"starting_month"`
}

// LoadSettings decodes the TOML file at path. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}
	return &s, nil
}
