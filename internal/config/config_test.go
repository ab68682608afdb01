package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg WordRushConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &cfg))

	def := DefaultWordRushConfig()
	assert.Equal(t, def.Rack.Size, cfg.Rack.Size)
	assert.Equal(t, def.Round, cfg.Round)
	assert.Equal(t, def.Rules, cfg.Rules)
	assert.Equal(t, def.Streak, cfg.Streak)
	assert.Equal(t, def.Dictionary, cfg.Dictionary)
	assert.NoError(t, def.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("round:\n  seconds: 60\nrack:\n  frequencies:\n    a: 2\n    b: 1\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadWordRush(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Round.Seconds)
	assert.Equal(t, 10, cfg.Rack.Size, "unset fields keep defaults")
	assert.Equal(t, 3, cfg.Rules.MinLength)

	weights := cfg.LetterWeights()
	require.Len(t, weights, 2)
	assert.Equal(t, 'a', weights[0].Letter)
	assert.Equal(t, 2, weights[0].Weight)
	assert.Equal(t, 'b', weights[1].Letter)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadWordRush(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("round: [not, a, map"), 0o600))
	_, err = LoadWordRush(bad)
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		seconds int
		size    int
		minLen  int
	}{
		{DifficultyEasy, 240, 12, 3},
		{DifficultyNormal, 180, 10, 3},
		{DifficultyHard, 120, 8, 4},
		{DifficultyZen, 0, 10, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultWordRushConfig()
			ApplyPreset(&cfg, tt.preset)
			assert.Equal(t, tt.seconds, cfg.Round.Seconds)
			assert.Equal(t, tt.size, cfg.Rack.Size)
			assert.Equal(t, tt.minLen, cfg.Rules.MinLength)
			assert.NoError(t, cfg.Validate())
		})
	}

	cfg := DefaultWordRushConfig()
	ApplyPreset(&cfg, DifficultyZen)
	assert.False(t, cfg.Timed())
	assert.Zero(t, cfg.Duration())
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultWordRushConfig()
	cfg.Rack.Size = 2
	cfg.Streak.Every = 0
	cfg.Rack.Frequencies = map[string]int{"ab": 1, "c": -1}

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "rack.size")
	assert.Contains(t, msg, "streak.every")
	assert.Contains(t, msg, "single letter")
	assert.Contains(t, msg, "must not be negative")
	assert.Contains(t, msg, "at least one positive weight")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDictionary, "/tmp/words.txt")
	cfg := DefaultWordRushConfig()
	ApplyEnv(&cfg)
	assert.Equal(t, "/tmp/words.txt", cfg.Dictionary.Path)
}
