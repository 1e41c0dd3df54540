package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfigDir is the directory under the user config root.
const GlobalConfigDir = "idgen"

// GlobalConfigFileNames are the names searched for the global config.
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindGlobalConfig returns the path of the global config file, or an empty
// string when none exists.
func FindGlobalConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range GlobalConfigFileNames {
		path := filepath.Join(configDir, GlobalConfigDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load resolves the effective defaults: built-in values, overlaid by the
// global config file (when present), overlaid by IDGEN_* environment
// variables. Flag values are applied later by the CLI layer.
func Load() (*Config, error) {
	cfg := NewDefault()
	if path := FindGlobalConfig(); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("IDGEN_NUM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Num = n
		}
	}
	if v := os.Getenv("IDGEN_UUID_VERSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UUIDVersion = n
		}
	}
	if v := os.Getenv("IDGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("IDGEN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
