// Package session holds the mutable state of a single Word Rush round and
// drives the rules engine on every submission.
//
// A Session is not safe for concurrent use. The platform owns one session per
// player and feeds it from a single goroutine.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-rush/internal/dictionary"
	"github.com/vovakirdan/word-rush/internal/rules"
)

var (
	// ErrTimeUp is returned for submissions after the countdown has expired.
	ErrTimeUp = errors.New("session: time is up")
	// ErrNotActive is returned for submissions after the round was ended.
	ErrNotActive = errors.New("session: round is not active")
)

// MessageTryAgain is shown when the dictionary could not answer.
const MessageTryAgain = "Something went wrong, try again"

// MessageTimeUp is shown when the countdown reaches zero.
const MessageTimeUp = "Time's up! Game over."

// Options configures a session.
type Options struct {
	RackSize  int
	Duration  time.Duration // 0 = untimed
	Weights   []rules.LetterWeight
	MinLength int

	StreakEvery int
	StreakBonus int

	Seed   int64
	Logger *log.Logger
}

// DefaultOptions returns the classic three-minute, ten-tile round.
func DefaultOptions() Options {
	return Options{
		RackSize:    10,
		Duration:    180 * time.Second,
		MinLength:   rules.DefaultMinLength,
		StreakEvery: rules.DefaultStreakEvery,
		StreakBonus: rules.DefaultStreakBonus,
	}
}

// Outcome is the result of one submission.
type Outcome struct {
	Word   string
	Result rules.Result
	Points rules.Breakdown // zero unless Result.Valid
	Score  int             // cumulative score after the submission
	Streak int             // streak counter after the submission

	Message string // player-facing text
}

func pointsMessage(p rules.Breakdown) string {
	if p.Streak > 0 {
		return fmt.Sprintf("+%d points! (streak +%d)", p.Total(), p.Streak)
	}
	return fmt.Sprintf("+%d points!", p.Total())
}

// Entry is an accepted word and what it earned.
type Entry struct {
	Word   string
	Points int
}

// Summary describes a round for the game-over panel and the score store.
type Summary struct {
	Score         int
	WordsFound    int
	BestWord      string
	BestPoints    int
	LongestStreak int
	Words         []Entry
}

// Session is one player's round.
type Session struct {
	opts      Options
	validator *rules.Validator
	rng       *rand.Rand
	logger    *log.Logger

	rack      rules.Rack
	selection []int
	found     rules.FoundWords
	entries   []Entry
	score     int
	streak    rules.Streak
	remaining time.Duration
	active    bool
	message   string
}

// New creates a session backed by dict and deals the first rack.
func New(dict dictionary.Dictionary, opts Options) *Session {
	if opts.RackSize <= 0 {
		opts.RackSize = DefaultOptions().RackSize
	}
	if opts.MinLength <= 0 {
		opts.MinLength = rules.DefaultMinLength
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:      opts,
		validator: rules.NewValidator(dict).WithMinLength(opts.MinLength),
		rng:       rand.New(rand.NewSource(opts.Seed)),
		logger:    logger,
		streak:    rules.Streak{Every: opts.StreakEvery, Bonus: opts.StreakBonus},
	}
	s.Restart()
	return s
}

// Restart deals a new rack and clears everything else.
func (s *Session) Restart() {
	s.rack = rules.GenerateRack(s.rng, s.opts.RackSize, s.opts.Weights)
	s.selection = s.selection[:0]
	s.found.Reset()
	s.entries = nil
	s.score = 0
	s.streak.Reset()
	s.remaining = s.opts.Duration
	s.active = true
	s.message = ""
	s.logger.Debug("round started", "rack", s.rack.String(), "duration", s.opts.Duration)
}

// SetRack replaces the rack and clears the selection.
func (s *Session) SetRack(r rules.Rack) {
	s.rack = r.Clone()
	s.selection = s.selection[:0]
}

// Rack returns a copy of the current rack.
func (s *Session) Rack() rules.Rack {
	return s.rack.Clone()
}

// Selection returns the selected rack positions in selection order.
func (s *Session) Selection() []int {
	out := make([]int, len(s.selection))
	copy(out, s.selection)
	return out
}

// IsSelected reports whether rack position i is selected.
func (s *Session) IsSelected(i int) bool {
	for _, idx := range s.selection {
		if idx == i {
			return true
		}
	}
	return false
}

// CurrentWord returns the letters of the selected tiles in selection order.
func (s *Session) CurrentWord() string {
	var b strings.Builder
	for _, idx := range s.selection {
		b.WriteRune(s.rack[idx])
	}
	return b.String()
}

// Select toggles rack position i. Out-of-range positions are ignored.
func (s *Session) Select(i int) {
	if !s.active || i < 0 || i >= len(s.rack) {
		return
	}
	for pos, idx := range s.selection {
		if idx == i {
			s.selection = append(s.selection[:pos], s.selection[pos+1:]...)
			return
		}
	}
	s.selection = append(s.selection, i)
}

// Type selects the first unselected tile carrying letter r.
// Returns false when no such tile is left.
func (s *Session) Type(r rune) bool {
	if !s.active {
		return false
	}
	r = unicode.ToLower(r)
	for i, ch := range s.rack {
		if ch == r && !s.IsSelected(i) {
			s.selection = append(s.selection, i)
			return true
		}
	}
	return false
}

// Backspace deselects the most recently selected tile.
func (s *Session) Backspace() {
	if len(s.selection) > 0 {
		s.selection = s.selection[:len(s.selection)-1]
	}
}

// Clear deselects every tile.
func (s *Session) Clear() {
	s.selection = s.selection[:0]
}

// Shuffle reorders the rack and clears the selection.
func (s *Session) Shuffle() {
	if !s.active {
		return
	}
	s.rack = s.rack.Shuffle(s.rng)
	s.selection = s.selection[:0]
}

// Submit validates the current word and, if it is accepted, scores it.
// The selection is cleared afterwards unless the dictionary failed.
func (s *Session) Submit() (Outcome, error) {
	return s.submit(s.CurrentWord())
}

// SubmitWord validates word as if the player had spelled it on the rack.
func (s *Session) SubmitWord(word string) (Outcome, error) {
	return s.submit(word)
}

func (s *Session) submit(candidate string) (Outcome, error) {
	if !s.active {
		if s.opts.Duration > 0 && s.remaining <= 0 {
			return Outcome{}, ErrTimeUp
		}
		return Outcome{}, ErrNotActive
	}

	res, err := s.validator.Validate(candidate, s.rack, &s.found)
	if err != nil {
		s.logger.Warn("dictionary lookup failed", "word", candidate, "err", err)
		s.message = MessageTryAgain
		return Outcome{Word: candidate, Score: s.score, Streak: s.streak.Count(), Message: MessageTryAgain}, err
	}

	word := strings.ToLower(candidate)
	out := Outcome{Word: word, Result: res}

	if res.Valid {
		out.Points = rules.ScoreWord(word)
		out.Points.Streak = s.streak.Record(true)
		s.found.Add(word)
		s.score += out.Points.Total()
		s.entries = append(s.entries, Entry{Word: word, Points: out.Points.Total()})
		out.Message = pointsMessage(out.Points)
	} else {
		s.streak.Record(false)
		out.Message = s.validator.Message(res.Reason)
	}
	s.message = out.Message

	out.Score = s.score
	out.Streak = s.streak.Count()
	s.selection = s.selection[:0]

	s.logger.Debug("submission", "word", word, "result", res, "points", out.Points.Total(), "score", s.score)
	return out, nil
}

// Advance runs the countdown by d. Untimed rounds never expire.
// Returns true if this call ended the round.
func (s *Session) Advance(d time.Duration) bool {
	if !s.active || s.opts.Duration <= 0 {
		return false
	}
	s.remaining -= d
	if s.remaining > 0 {
		return false
	}
	s.remaining = 0
	s.active = false
	s.message = MessageTimeUp
	s.logger.Info("round over", "score", s.score, "words", s.found.Len())
	return true
}

// End stops the round early.
func (s *Session) End() {
	s.active = false
}

// Active reports whether submissions are accepted.
func (s *Session) Active() bool {
	return s.active
}

// Timed reports whether the round has a countdown.
func (s *Session) Timed() bool {
	return s.opts.Duration > 0
}

// Remaining returns the time left on the countdown.
func (s *Session) Remaining() time.Duration {
	return s.remaining
}

// Duration returns the configured round length.
func (s *Session) Duration() time.Duration {
	return s.opts.Duration
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Streak returns the current run of consecutive valid words.
func (s *Session) Streak() int {
	return s.streak.Count()
}

// FoundWords returns accepted words in the order they were found.
func (s *Session) FoundWords() []string {
	return s.found.Words()
}

// Message returns the last player-facing message.
func (s *Session) Message() string {
	return s.message
}

// MinLength returns the shortest word the round accepts.
func (s *Session) MinLength() int {
	return s.validator.MinLength()
}

// Summary reports the round so far.
func (s *Session) Summary() Summary {
	sum := Summary{
		Score:         s.score,
		WordsFound:    s.found.Len(),
		LongestStreak: s.streak.Best(),
		Words:         make([]Entry, len(s.entries)),
	}
	copy(sum.Words, s.entries)
	for _, e := range s.entries {
		if e.Points > sum.BestPoints {
			sum.BestWord = e.Word
			sum.BestPoints = e.Points
		}
	}
	return sum
}
