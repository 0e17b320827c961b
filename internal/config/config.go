// Package config loads the toplangs TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/options"
)

const appName = "toplangs"

// FileConfig represents the TOML configuration file:
//
//	[card]
//	theme = "dark"
//	layout = "compact"
//	hide = ["html", "css"]
//
//	[server]
//	addr = ":8080"
//	stats = "~/langs.json"
type FileConfig struct {
	Card   options.RenderOptions `toml:"card"`
	Server ServerConfig          `toml:"server"`
}

// ServerConfig maps settings of the serve command.
type ServerConfig struct {
	Addr  string `toml:"addr"`
	Stats string `toml:"stats"`
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// Load reads a TOML config from path. A missing file is not an error and
// yields an empty config.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New(errors.ErrCodeInvalidPath, "config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to stat config")
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, errors.New(errors.ErrCodeInvalidInput, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}
