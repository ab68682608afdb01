package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-rush/internal/config"
	"github.com/vovakirdan/word-rush/internal/platform/tui"
	"github.com/vovakirdan/word-rush/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Word Rush with a mode picker menu",
	Long: `Start Word Rush in interactive menu mode.

Use arrow keys or j/k to navigate, Left/Right to pick a difficulty and
Enter to play. Ctrl+B during a round returns to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Difficulty
  Enter/Space   - Play
  Tab           - High scores
  Q             - Quit

Examples:
  wordrush menu
  wordrush menu --config ./my-wordrush.yaml`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	base, err := loadGameEnv(logger, false)
	if err != nil {
		fail("%v", err)
	}

	store := openStore(logger)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.ModeID == "" {
			break
		}

		env := base
		config.ApplyPreset(&env.Config, menuResult.Difficulty)

		game, err := registry.Create(menuResult.ModeID, env)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.ModeID, "err", err)
			continue
		}

		// Fresh rack for each round unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("round started", "mode", menuResult.ModeID, "difficulty", menuResult.Difficulty)
		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			logger.Error("game loop failed", "err", err)
			break
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
