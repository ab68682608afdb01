package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-rush/internal/rules"
)

var (
	flagRack  string
	flagFound []string
)

var checkCmd = &cobra.Command{
	Use:   "check WORD...",
	Short: "Validate words against a rack",
	Long: `Run the validator and scorer on each word in turn, as if they were
submitted one after another in a round. Accepted words count as found for
the words after them, and streak bonuses are applied.

Examples:
  wordrush check --rack teapotsnrd teapot pot top
  wordrush check --rack teapotsnrd --found tea,pot tea pots
  wordrush check --rack catsdogs --difficulty hard cat cats`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

var scoreCmd = &cobra.Command{
	Use:   "score WORD...",
	Short: "Show the points for words",
	Long: `Print the base score and length bonus for each word. The words are not
checked against a rack or the dictionary.

Examples:
  wordrush score cat teapot elephant`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScore,
}

func init() {
	checkCmd.Flags().StringVar(&flagRack, "rack", "", "Rack letters, e.g. teapotsnrd (required)")
	checkCmd.Flags().StringSliceVar(&flagFound, "found", nil, "Words already found this round")
	checkCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	checkCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, zen")
	//nolint:errcheck // flag is defined above
	checkCmd.MarkFlagRequired("rack")
}

// checkRow is one line of the check report.
type checkRow struct {
	word   string
	result rules.Result
	points rules.Breakdown
	msg    string
}

func runCheck(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, _, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	dict, err := loadDictionary(cfg, false)
	if err != nil {
		fail("%v", err)
	}

	rack := rules.ParseRack(flagRack)
	if len(rack) == 0 {
		fail("--rack must contain at least one letter")
	}

	validator := rules.NewValidator(dict).WithMinLength(cfg.Rules.MinLength)
	found := rules.NewFoundWords(flagFound...)
	streak := &rules.Streak{Every: cfg.Streak.Every, Bonus: cfg.Streak.Bonus}

	rows := make([]checkRow, 0, len(args))
	total := 0
	for _, word := range args {
		res, err := validator.Validate(word, rack, found)
		if err != nil {
			logger.Error("dictionary lookup failed", "word", word, "err", err)
			fail("checking %q: %v", word, err)
		}

		row := checkRow{word: strings.ToLower(word), result: res}
		if res.Valid {
			row.points = rules.ScoreWord(row.word)
			row.points.Streak = streak.Record(true)
			found.Add(row.word)
			total += row.points.Total()
			row.msg = fmt.Sprintf("+%d points!", row.points.Total())
		} else {
			streak.Record(false)
			row.msg = validator.Message(res.Reason)
		}
		logger.Debug("checked", "word", row.word, "result", res, "points", row.points.Total())
		rows = append(rows, row)
	}

	fmt.Printf("Rack: %s\n\n", strings.ToUpper(rack.String()))
	fmt.Println(checkTable(rows))
	fmt.Printf("\nTotal: %d points, %d of %d words accepted\n", total, countValid(rows), len(rows))

	if countValid(rows) == 0 {
		os.Exit(2)
	}
}

func checkTable(rows []checkRow) *table.Table {
	good := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	bad := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("WORD", "RESULT", "BASE", "BONUS", "STREAK", "MESSAGE")
	for _, r := range rows {
		result := bad.Render(r.result.String())
		if r.result.Valid {
			result = good.Render(r.result.String())
		}
		t.Row(
			strings.ToUpper(r.word),
			result,
			strconv.Itoa(r.points.Base),
			strconv.Itoa(r.points.Bonus),
			strconv.Itoa(r.points.Streak),
			r.msg,
		)
	}
	return t
}

func countValid(rows []checkRow) int {
	n := 0
	for _, r := range rows {
		if r.result.Valid {
			n++
		}
	}
	return n
}

func runScore(_ *cobra.Command, args []string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("WORD", "LETTERS", "BASE", "BONUS", "TOTAL")

	for _, word := range args {
		w := strings.ToLower(word)
		b := rules.ScoreWord(w)
		t.Row(
			strings.ToUpper(w),
			strconv.Itoa(len([]rune(w))),
			strconv.Itoa(b.Base),
			strconv.Itoa(b.Bonus),
			strconv.Itoa(b.Total()),
		)
	}
	fmt.Println(t)
}
