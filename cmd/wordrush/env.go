package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/word-rush/internal/config"
	"github.com/vovakirdan/word-rush/internal/core"
	"github.com/vovakirdan/word-rush/internal/dictionary"
	"github.com/vovakirdan/word-rush/internal/registry"
	"github.com/vovakirdan/word-rush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// newLogger builds the CLI logger. Interactive commands log to the log file
// because the alt screen owns the terminal; the rest log to stderr.
// The returned closer releases the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	if interactive {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordrush",
		Level:           level,
	})
	return logger, closer, nil
}

// loadGameConfig loads the YAML config, then applies the difficulty preset
// and environment overrides.
func loadGameConfig() (config.WordRushConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.WordRushConfig{}, "", err
	}

	cfg, err := config.LoadWordRush(flagConfig)
	if err != nil {
		return config.WordRushConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	config.ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return config.WordRushConfig{}, "", err
	}
	return cfg, preset, nil
}

// loadDictionary builds the word oracle for cfg. With lazy set, a configured
// word list is read on first lookup instead of up front.
func loadDictionary(cfg config.WordRushConfig, lazy bool) (dictionary.Dictionary, error) {
	if lazy && cfg.Dictionary.Path != "" {
		var dict dictionary.Dictionary = dictionary.NewLazy(cfg.Dictionary.Path)
		if cfg.Dictionary.Supplement {
			dict = dictionary.Union{dict, dictionary.Supplement()}
		}
		return dict, nil
	}
	return dictionary.Load(cfg.Dictionary.Path, cfg.Dictionary.Supplement)
}

// loadGameEnv assembles everything a mode needs to start.
func loadGameEnv(logger *log.Logger, lazy bool) (registry.Env, error) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return registry.Env{}, err
	}
	dict, err := loadDictionary(cfg, lazy)
	if err != nil {
		return registry.Env{}, err
	}
	logger.Debug("game config loaded",
		"difficulty", preset,
		"seconds", cfg.Round.Seconds,
		"rack", cfg.Rack.Size,
		"min_length", cfg.Rules.MinLength,
		"dictionary", cfg.Dictionary.Path,
	)
	return registry.Env{Config: cfg, Dictionary: dict, Logger: logger}, nil
}

// openStore opens the score database, degrading to no storage on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
