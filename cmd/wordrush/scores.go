package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-rush/internal/games/wordrush"
	"github.com/vovakirdan/word-rush/internal/registry"
)

var (
	flagScoresLimit int
	flagShowWords   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the best rounds for the given mode (default: wordrush).

Examples:
  wordrush scores
  wordrush scores wordrush_zen
  wordrush scores --words
  wordrush scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagShowWords, "words", false, "List the words of the best round")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all rounds of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	modeID := wordrush.ModeTimed
	if len(args) > 0 {
		modeID = args[0]
	}

	info, ok := registry.Lookup(modeID)
	if !ok {
		fail("unknown mode %q\nRun 'wordrush modes' to see available modes.", modeID)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	path, err := expandHome(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	store := openStore(logger)
	if store == nil {
		fail("no scores database at %s", path)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(modeID); err != nil {
			fail("clearing scores: %v", err)
		}
		logger.Info("scores cleared", "mode", modeID)
		fmt.Printf("Cleared all rounds for %s.\n", info.Title)
		return
	}

	rounds, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordrush play %s' to set the first high score!\n", modeID)
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RANK", "SCORE", "WORDS", "BEST WORD", "STREAK", "DATE")
	for i, r := range rounds {
		t.Row(
			"#"+strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.WordsFound),
			strings.ToUpper(r.BestWord),
			strconv.Itoa(r.LongestStreak),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)

	if stats, err := store.Stats(modeID); err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Best: %d  Average: %.1f  Words: %d  Longest streak: %d\n",
			stats.Rounds, stats.HighScore, stats.AvgScore, stats.TotalWords, stats.LongestStreak)
		if stats.LongestWord != "" {
			fmt.Printf("Longest word: %s\n", strings.ToUpper(stats.LongestWord))
		}
	}

	if flagShowWords {
		words, err := store.RoundWords(rounds[0].ID)
		if err != nil {
			fail("retrieving words: %v", err)
		}
		fmt.Println()
		fmt.Println("Words of the best round:")
		for _, w := range words {
			fmt.Printf("  %-16s +%d\n", strings.ToUpper(w.Word), w.Points)
		}
	}
}
