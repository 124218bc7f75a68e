// Package config loads and stores the pacctl configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"pacctl/pkg/aur"
)

// Config represents the complete pacctl configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Pacman  PacmanConfig  `toml:"pacman"`
	AUR     AURConfig     `toml:"aur"`
	Output  OutputConfig  `toml:"output"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// AutoConfirm skips confirmation prompts when true (like -y).
	AutoConfirm bool `toml:"auto_confirm"`

	// History enables recording of mutating operations.
	History bool `toml:"history"`
}

// PacmanConfig configures the pacman invocation layer.
type PacmanConfig struct {
	// Binary overrides the pacman binary. Setting it to an AUR helper
	// with a compatible interface (yay, paru) makes pacctl drive that
	// helper instead.
	Binary string `toml:"binary"`

	// Sudo elevates mutating commands through sudo when not root.
	Sudo bool `toml:"sudo"`
}

// AURConfig configures the AUR fallback lookup.
type AURConfig struct {
	// Enabled toggles the web lookup used by check-aur.
	Enabled bool `toml:"enabled"`

	// SearchURL is the AUR package search page.
	SearchURL string `toml:"search_url"`

	// RPCURL is the AUR RPC v5 endpoint.
	RPCURL string `toml:"rpc_url"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm: false,
			History:     true,
		},
		Pacman: PacmanConfig{
			Binary: "",
			Sudo:   true,
		},
		AUR: AURConfig{
			Enabled:   true,
			SearchURL: aur.DefaultSearchURL,
			RPCURL:    aur.DefaultRPCURL,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
	}
}

// Load loads the configuration from the default path. A missing file
// yields the defaults.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path. A missing
// file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// ShouldUseColor returns true if colored output should be used.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
