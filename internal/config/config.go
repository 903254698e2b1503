// Package config loads settings shared by the wixoss binaries: a TOML file
// under the XDG config directory, then WIXOSS_* environment overrides.
// Command-line flags are applied by each binary on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Output formats understood by the renderers.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration.
type Config struct {
	CacheDir string `toml:"cache_dir" env:"WIXOSS_CACHE_DIR"`
	Output   string `toml:"output" env:"WIXOSS_OUTPUT"`
	Workers  int    `toml:"workers" env:"WIXOSS_WORKERS"`
	Color    string `toml:"color" env:"WIXOSS_COLOR"`
	Addr     string `toml:"addr" env:"WIXOSS_ADDR"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		CacheDir: "./text_cache",
		Output:   OutputText,
		Workers:  0,
		Color:    ColorAuto,
		Addr:     ":8080",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "wixoss", "config.toml")
}

// Load reads the config file at path (the default location when empty) and
// applies environment overrides. A missing file is not an error. The result
// is not validated; callers apply their flag overrides and then Validate.
func Load(path string) (Config, error) {
	return load(path, nil)
}

// load is Load with an explicit environment; nil means the process
// environment.
func load(path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = GetConfigFilePath()
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects values no binary can act on.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q (want text, json or yaml)", c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Exitf prints an error line and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
