// Package config provides YAML-based game configuration loading and
// difficulty presets for Word Rush.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/word-rush/internal/rules"
)

// WordRushConfig contains all configuration for a Word Rush round.
type WordRushConfig struct {
	Rack       RackConfig       `yaml:"rack"`
	Round      RoundConfig      `yaml:"round"`
	Rules      RulesConfig      `yaml:"rules"`
	Streak     StreakConfig     `yaml:"streak"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// RackConfig defines how letter racks are drawn.
type RackConfig struct {
	Size        int            `yaml:"size"`        // Number of tiles on the rack
	Frequencies map[string]int `yaml:"frequencies"` // Letter -> sampling weight; empty = English table
}

// RoundConfig defines round timing.
type RoundConfig struct {
	Seconds int `yaml:"seconds"` // Round length; 0 = untimed
}

// RulesConfig defines word acceptance rules.
type RulesConfig struct {
	MinLength int `yaml:"min_length"`
}

// StreakConfig defines the consecutive-word bonus.
type StreakConfig struct {
	Every int `yaml:"every"` // Bonus fires every N consecutive valid words
	Bonus int `yaml:"bonus"` // Flat points per payout
}

// DictionaryConfig selects the word list.
type DictionaryConfig struct {
	Path       string `yaml:"path"`       // Word list file; empty = embedded list
	Supplement bool   `yaml:"supplement"` // Add the built-in short-word list
}

// Duration returns the round length, or 0 for an untimed round.
func (c WordRushConfig) Duration() time.Duration {
	return time.Duration(c.Round.Seconds) * time.Second
}

// Timed reports whether rounds have a countdown.
func (c WordRushConfig) Timed() bool {
	return c.Round.Seconds > 0
}

// LetterWeights converts the frequency table to rack weights.
// Returns nil when no table is configured.
func (c WordRushConfig) LetterWeights() []rules.LetterWeight {
	if len(c.Rack.Frequencies) == 0 {
		return nil
	}
	out := make([]rules.LetterWeight, 0, len(c.Rack.Frequencies))
	for letter, w := range c.Rack.Frequencies {
		r := []rune(letter)
		if len(r) != 1 {
			continue
		}
		out = append(out, rules.LetterWeight{Letter: r[0], Weight: w})
	}
	// Map iteration order is random; keep draws reproducible for a seed
	sort.Slice(out, func(i, j int) bool { return out[i].Letter < out[j].Letter })
	return out
}

// Validate rejects configurations that cannot produce a playable round.
func (c WordRushConfig) Validate() error {
	var errs []error

	if c.Rules.MinLength < 1 {
		errs = append(errs, fmt.Errorf("rules.min_length must be at least 1, got %d", c.Rules.MinLength))
	}
	if c.Rack.Size < c.Rules.MinLength {
		errs = append(errs, fmt.Errorf("rack.size (%d) must be at least rules.min_length (%d)", c.Rack.Size, c.Rules.MinLength))
	}
	if c.Round.Seconds < 0 {
		errs = append(errs, fmt.Errorf("round.seconds must not be negative, got %d", c.Round.Seconds))
	}
	if c.Streak.Every <= 0 {
		errs = append(errs, fmt.Errorf("streak.every must be positive, got %d", c.Streak.Every))
	}
	if c.Streak.Bonus < 0 {
		errs = append(errs, fmt.Errorf("streak.bonus must not be negative, got %d", c.Streak.Bonus))
	}

	if len(c.Rack.Frequencies) > 0 {
		total := 0
		for letter, w := range c.Rack.Frequencies {
			if len([]rune(letter)) != 1 {
				errs = append(errs, fmt.Errorf("rack.frequencies key %q must be a single letter", letter))
			}
			if w < 0 {
				errs = append(errs, fmt.Errorf("rack.frequencies[%s] must not be negative", letter))
			}
			total += w
		}
		if total == 0 {
			errs = append(errs, errors.New("rack.frequencies must have at least one positive weight"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyZen    DifficultyPreset = "zen"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyZen:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or zen)", s)
	}
}
