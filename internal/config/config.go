// Package config holds the settings of the scicalc command.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/zephyrtronium/scicalc"
)

// Config is the on-disk configuration of the command. Command-line flags
// override it.
type Config struct {
	AngleMode    string `json:"angle_mode"`    // "deg" or "rad"
	Decimals     int    `json:"decimals"`      // fractional digits when printing results
	HistoryPath  string `json:"history_path"`  // bbolt database; empty disables history
	HistoryLimit int    `json:"history_limit"` // entries listed by default
	LogLevel     string `json:"log_level"`     // debug, info, warn, error
	Color        bool   `json:"color"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, "scicalc")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", "scicalc")
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, "scicalc")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "scicalc")
	}
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, "scicalc")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Local", "scicalc")
	default:
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, "scicalc")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "state", "scicalc")
	}
}

// DefaultConfig returns the default configuration. Angles default to degrees,
// like the calculator's display.
func DefaultConfig() *Config {
	return &Config{
		AngleMode:    "deg",
		Decimals:     6,
		HistoryPath:  filepath.Join(defaultStateDir(), "history.db"),
		HistoryLimit: 20,
		LogLevel:     "warn",
		Color:        true,
	}
}

// Path returns the default config path.
func Path() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}

// Load loads configuration from a file. A missing file yields the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Encode writes the configuration as indented JSON.
func (c *Config) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Validate checks that every field has a usable value.
func (c *Config) Validate() error {
	if _, ok := scicalc.ParseAngleMode(c.AngleMode); !ok {
		return fmt.Errorf("invalid angle_mode %q", c.AngleMode)
	}
	if c.Decimals < 0 || c.Decimals > 17 {
		return fmt.Errorf("decimals must be between 0 and 17, not %d", c.Decimals)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, not %d", c.HistoryLimit)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// Mode returns the configured angle mode. The configuration must be valid.
func (c *Config) Mode() scicalc.AngleMode {
	m, _ := scicalc.ParseAngleMode(c.AngleMode)
	return m
}
