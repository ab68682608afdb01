// wordrush is a terminal word game: spell words from a rack of letter tiles
// before the clock runs out.
//
// Usage:
//
//	wordrush modes              - List available modes
//	wordrush play [mode]        - Play a round
//	wordrush menu               - Pick modes interactively
//	wordrush check WORD...      - Validate words against a rack
//	wordrush score WORD...      - Show the points for words
//	wordrush scores [mode]      - Show high scores for a mode
//	wordrush serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 20)
//	--seed <value>       - Set RNG seed for reproducible racks
//	--db <path>          - Set database path (default: ~/.wordrush/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination for interactive play
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/word-rush/internal/games/wordrush"
)

// Environment overrides, applied when the matching flag is not set.
const (
	envDBPath   = "WORDRUSH_DB"
	envLogLevel = "WORDRUSH_LOG_LEVEL"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordrush",
	Short: "Word Rush - spell words against the clock in your terminal",
	Long: `Word Rush deals you a rack of letter tiles. Spell as many words as you
can before time runs out; longer words and streaks score more.

Available commands:
  modes    - Show all available modes
  play     - Play a round directly
  menu     - Interactive mode picker
  check    - Validate words against a rack
  score    - Show the points for words
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  wordrush play
  wordrush play wordrush_zen
  wordrush play --difficulty hard
  wordrush check --rack teapotsnrd teapot pot
  wordrush serve --ssh :2222`,
	PersistentPreRunE: loadEnvironment,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.wordrush/wordrush.log", "Log file for interactive play")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadEnvironment reads .env and applies environment overrides to flags the
// user did not set explicitly.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envDBPath); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	return nil
}
