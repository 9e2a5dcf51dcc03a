package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Formats lists the output formats accepted by the format setting.
var Formats = []string{"text", "markdown", "json", "yaml", "html"}

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	themes    = []string{"dark", "light"}
)

const maxTabWidth = 16

// Config represents the mdtree configuration
type Config struct {
	LogLevel  string `toml:"log_level"`
	Format    string `toml:"format"`
	TabWidth  int    `toml:"tab_width"`
	MaxBytes  int64  `toml:"max_bytes"`
	Normalize bool   `toml:"normalize"`
	Theme     string `toml:"theme"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		Format:    "text",
		TabWidth:  4,
		MaxBytes:  8 << 20,
		Normalize: true,
		Theme:     "dark",
	}
}

// ConfigPath returns the path to the config file.
// Can be overridden for testing
var ConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "mdtree", "config.toml")
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads configuration from path. Keys missing from the file keep
// their defaults; a missing file yields the default configuration.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level '%s': must be one of: %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("invalid format '%s': must be one of: %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.TabWidth < 1 || c.TabWidth > maxTabWidth {
		return fmt.Errorf("tab_width must be between 1 and %d", maxTabWidth)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("max_bytes cannot be negative")
	}
	if !slices.Contains(themes, c.Theme) {
		return fmt.Errorf("invalid theme '%s': must be one of: %s", c.Theme, strings.Join(themes, ", "))
	}
	return nil
}
