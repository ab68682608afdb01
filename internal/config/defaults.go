package config

import (
	_ "embed"

	"github.com/vovakirdan/word-rush/internal/rules"
)

//go:embed defaults/wordrush.yaml
var defaultWordRushYAML []byte

// DefaultWordRushConfig returns the hard-coded default configuration.
func DefaultWordRushConfig() WordRushConfig {
	return WordRushConfig{
		Rack: RackConfig{
			Size: 10,
		},
		Round: RoundConfig{
			Seconds: 180, // 3 minutes
		},
		Rules: RulesConfig{
			MinLength: rules.DefaultMinLength,
		},
		Streak: StreakConfig{
			Every: rules.DefaultStreakEvery,
			Bonus: rules.DefaultStreakBonus,
		},
		Dictionary: DictionaryConfig{
			Supplement: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultWordRushYAML
}
