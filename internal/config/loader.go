package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
