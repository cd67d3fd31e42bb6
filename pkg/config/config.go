// Package config loads the CLI-facing configuration for findfile.
// The search core takes everything as explicit arguments; nothing here
// changes the FindByName contract.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jrobhoward/findfile/pkg/errors"
)

const envPrefix = "FINDFILE_"

// Config holds the settings consumed by the findfile CLI.
type Config struct {
	Search  SearchConfig  `koanf:"search"`
	Logging LoggingConfig `koanf:"logging"`
}

// SearchConfig holds search defaults applied when flags are absent.
type SearchConfig struct {
	// Type is the default fileType filter: "dir", "file" or "any".
	Type string `koanf:"type"`
}

// LoggingConfig holds logging defaults.
type LoggingConfig struct {
	// Verbosity used when no -v flags are given.
	Verbosity int `koanf:"verbosity"`
}

// Load builds the effective configuration: built-in defaults, then the
// user config file if present, then FINDFILE_* environment variables.
func Load() (*Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides is Load with a final layer of overrides, used by the
// CLI to fold explicitly-set flags into the configuration. Keys use dot
// notation ("search.type").
func LoadWithOverrides(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	if path := UserConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load user config").
					WithDetail("path", path)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flag overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// UserConfigPath returns the path of the optional user config file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "findfile", "config.toml")
}

// envKeyMapper turns FINDFILE_SEARCH_TYPE into search.type.
func envKeyMapper(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "_", ".")
}
