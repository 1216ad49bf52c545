package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the gridpath configuration.
// Search order: customPath -> ~/.gridpath/config.yaml -> ./configs/gridpath.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The first file found is used; if it does not parse, Load returns the error.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return loadFile(userCfgPath, data)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "gridpath.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		return loadFile(localPath, data)
	}

	// Use embedded default YAML
	if loaded, err := decodeOver(defaultYAML); err == nil {
		return loaded, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

// loadFile decodes a config file found on the search path.
func loadFile(path string, data []byte) (Config, error) {
	cfg, err := decodeOver(data)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// decodeOver decodes data on top of the hardcoded defaults.
func decodeOver(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridpath", filename)
}
