// Package config loads the compositor settings the drawer needs, currently
// the output scale factor.
//
// Settings are read from a TOML file:
//
//	# config.toml
//	wl_scale_factor = 2.0
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalidScale is returned when the configured scale factor is not a
// finite, strictly positive number.
var ErrInvalidScale = errors.New("config: scale factor must be positive and finite")

// Config holds drawer settings.
type Config struct {
	// ScaleFactor converts logical units to device pixels on every axis.
	ScaleFactor float64 `toml:"wl_scale_factor"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{ScaleFactor: 1}
}

// Load decodes TOML data on top of the current values. Keys missing from
// data keep their current value. The result is validated.
func (c *Config) Load(data string) error {
	if _, err := toml.Decode(data, c); err != nil {
		return fmt.Errorf("config: decode: %w", err)
	}
	return c.Validate()
}

// LoadFile reads path and applies it with Load. A missing file is not an
// error; the current values are kept.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := c.Load(string(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Validate reports whether the settings can be used.
func (c *Config) Validate() error {
	s := c.ScaleFactor
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, s)
	}
	return nil
}

// Scale returns the logical-to-device scale factor.
func (c *Config) Scale() float64 {
	return c.ScaleFactor
}

// DefaultPath returns the config file location: $DRAWER_CONFIG_DIR when
// set, otherwise drawer/config.toml under the user configuration directory.
func DefaultPath() string {
	if dir := os.Getenv("DRAWER_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config.toml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "drawer", "config.toml")
}
