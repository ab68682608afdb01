package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvDictionary = "WORDRUSH_DICTIONARY"
)

// LoadWordRush loads Word Rush configuration.
// Search order: customPath -> ~/.wordrush/configs/wordrush.yaml -> ./configs/wordrush.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadWordRush(customPath string) (WordRushConfig, error) {
	cfg := DefaultWordRushConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wordrush.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultWordRushConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/wordrush.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultWordRushConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWordRushYAML, &cfg); err != nil {
		return DefaultWordRushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordrush", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WordRushConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Round.Seconds = 240
		cfg.Rack.Size = 12
	case DifficultyHard:
		cfg.Round.Seconds = 120
		cfg.Rack.Size = 8
		cfg.Rules.MinLength = 4
	case DifficultyZen:
		cfg.Round.Seconds = 0
	}
}

// ApplyEnv applies environment overrides on top of the loaded config.
func ApplyEnv(cfg *WordRushConfig) {
	if v := os.Getenv(EnvDictionary); v != "" {
		cfg.Dictionary.Path = v
	}
}
