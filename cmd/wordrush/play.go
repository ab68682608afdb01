package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-rush/internal/games/wordrush"
	"github.com/vovakirdan/word-rush/internal/platform/tui"
	"github.com/vovakirdan/word-rush/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round in the given mode (default: wordrush).

Controls:
  Letters      - Pick the first free tile with that letter
  1-9, 0       - Toggle tile by position
  Enter        - Submit word
  Backspace    - Remove last letter
  Esc          - Clear word
  Space/Tab    - Shuffle tiles
  Ctrl+P       - Pause
  Ctrl+E       - End round
  Ctrl+R       - New round
  Ctrl+B       - Back
  Ctrl+C       - Quit

Difficulty options:
  easy   - 4 minutes, 12 tiles
  normal - 3 minutes, 10 tiles
  hard   - 2 minutes, 8 tiles, words of 4+ letters
  zen    - no clock

Examples:
  wordrush play
  wordrush play wordrush_zen
  wordrush play --difficulty hard
  wordrush play --config ./my-wordrush.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, zen")
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := wordrush.ModeTimed
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fail("unknown mode %q\nRun 'wordrush modes' to see available modes.", modeID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	env, err := loadGameEnv(logger, false)
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(modeID, env)
	if err != nil {
		fail("creating game: %v", err)
	}

	// Continue without storage if the database is unavailable
	store := openStore(logger)

	logger.Info("round started", "mode", modeID)
	_, runErr := tui.Run(game, store, logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop failed", "err", runErr)
		fail("running game: %v", runErr)
	}
}
