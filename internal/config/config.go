// Package config loads the optional questlog TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/faizmokh/questlog/internal/files"
)

// LogLevelEnv is consulted when neither flag nor file set a level.
const LogLevelEnv = "QUESTLOG_LOG_LEVEL"

// DefaultDebounce is how long watch waits for writes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Config holds settings that flags can override.
type Config struct {
	Render RenderConfig `toml:"render"`
	Log    LogConfig    `toml:"log"`
	Watch  WatchConfig  `toml:"watch"`
}

// RenderConfig controls HTML generation.
type RenderConfig struct {
	Template string `toml:"template"`
	Escape   bool   `toml:"escape"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the TOML file at path.
func Load(path string) (*Config, error) {
	path, err := files.ExpandPath(os.ExpandEnv(path))
	if err != nil {
		return nil, err
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if cfg.Render.Template != "" {
		if cfg.Render.Template, err = files.ExpandPath(cfg.Render.Template); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Resolve loads the file named by path, or by QUESTLOG_CONFIG, or the default
// location. Only the default location may be absent.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	resolved, explicit, err := files.ResolveConfigPath()
	if err != nil {
		return nil, err
	}
	if !explicit {
		if _, err := os.Stat(resolved); errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
	}
	return Load(resolved)
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = os.Getenv(LogLevelEnv)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Watch.Debounce.Duration <= 0 {
		c.Watch.Debounce.Duration = DefaultDebounce
	}
}
