// Package config defines the configuration types for binpatch. These are
// pure data structures; loading and merging live in internal/configloader.
package config

import "fmt"

// ColorMode controls when styled output is used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for binpatch. Values act as
// defaults for the matching CLI flags; an explicit flag always wins.
type Config struct {
	// Quiet suppresses informational output.
	Quiet bool `yaml:"quiet"`

	// Color controls styled output: auto, always or never.
	Color ColorMode `yaml:"color"`

	// FillByte is the default padding byte for fixed-length replacements.
	FillByte uint8 `yaml:"fill_byte"`

	// Ignore lists glob patterns excluded during recursive locate
	// expansion.
	Ignore []string `yaml:"ignore"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Quiet:    false,
		Color:    ColorAuto,
		FillByte: 0,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}
