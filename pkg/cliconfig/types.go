// Package cliconfig provides configuration defaults for the idgen CLI.
//
// Values come from multiple sources with the following precedence:
//  1. Command-line flags (highest, applied by pkg/cli)
//  2. IDGEN_* environment variables
//  3. Global config file (~/.config/idgen/config.yaml)
//  4. Built-in defaults (lowest)
package cliconfig

import "fmt"

// Config carries the CLI defaults that flags fall back to.
type Config struct {
	// Num is the default number of identifiers per invocation.
	Num int `yaml:"num"`

	// UUIDVersion is the default version for the uuid command.
	UUIDVersion int `yaml:"uuidVersion"`

	// Logging defaults.
	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// NewDefault returns the built-in defaults.
func NewDefault() *Config {
	return &Config{
		Num:         1,
		UUIDVersion: 4,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Validate checks value ranges after all sources are merged.
func (c *Config) Validate() error {
	if c.Num < 1 {
		return fmt.Errorf("num must be at least 1, got %d", c.Num)
	}
	switch c.UUIDVersion {
	case 1, 3, 4, 5, 6, 7, 8:
	default:
		return fmt.Errorf("uuidVersion must be one of 1, 3, 4, 5, 6, 7, 8, got %d", c.UUIDVersion)
	}
	return nil
}
