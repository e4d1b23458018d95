package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"collapsehead/collapse"
)

type Config struct {
	Header HeaderConfig `toml:"header"`
	List   ListConfig   `toml:"list"`
	Debug  DebugConfig  `toml:"debug"`
}

type HeaderConfig struct {
	ExpandedHeight  int     `toml:"expanded_height"`
	CollapsedHeight int     `toml:"collapsed_height"`
	Title           string  `toml:"title"`
	ExpandedColor   string  `toml:"expanded_color"`
	CollapsedColor  string  `toml:"collapsed_color"`
	Foreground      string  `toml:"foreground"`
	Tolerance       float64 `toml:"tolerance"`
}

type ListConfig struct {
	Rows             int `toml:"rows"`
	ScrollStep       int `toml:"scroll_step"`
	Overscroll       int `toml:"overscroll"`
	SettleIntervalMS int `toml:"settle_interval_ms"`
}

type DebugConfig struct {
	LogFile string `toml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Header: HeaderConfig{
			ExpandedHeight:  6,
			CollapsedHeight: 2,
			Title:           "Collapsing Header",
			ExpandedColor:   "63", // indigo
			CollapsedColor:  "42", // green
			Foreground:      "255",
		},
		List: ListConfig{
			Rows:             100,
			ScrollStep:       1,
			Overscroll:       3,
			SettleIntervalMS: 50,
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "collapsehead"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, or at ConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would break layout.
func (c *Config) Validate() error {
	if _, err := c.Geometry(); err != nil {
		return err
	}
	if c.Header.Tolerance < 0 {
		return fmt.Errorf("header.tolerance must not be negative, got %v", c.Header.Tolerance)
	}
	if c.List.Rows < 0 {
		return fmt.Errorf("list.rows must not be negative, got %d", c.List.Rows)
	}
	if c.List.ScrollStep < 1 {
		return fmt.Errorf("list.scroll_step must be at least 1, got %d", c.List.ScrollStep)
	}
	if c.List.Overscroll < 0 {
		return fmt.Errorf("list.overscroll must not be negative, got %d", c.List.Overscroll)
	}
	if c.List.SettleIntervalMS < 1 {
		return fmt.Errorf("list.settle_interval_ms must be at least 1, got %d", c.List.SettleIntervalMS)
	}
	return nil
}

// Geometry returns the header geometry described by the config.
func (c *Config) Geometry() (collapse.Geometry, error) {
	return collapse.NewGeometry(float64(c.Header.ExpandedHeight), float64(c.Header.CollapsedHeight))
}
