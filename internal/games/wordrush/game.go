// Package wordrush implements the Word Rush game modes.
// The player spells words from a rack of letter tiles against the clock.
package wordrush

import (
	"errors"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-rush/internal/config"
	"github.com/vovakirdan/word-rush/internal/core"
	"github.com/vovakirdan/word-rush/internal/dictionary"
	"github.com/vovakirdan/word-rush/internal/registry"
	"github.com/vovakirdan/word-rush/internal/session"
)

// Mode identifiers.
const (
	ModeTimed = "wordrush"
	ModeZen   = "wordrush_zen"
)

// ToastMillis is how long a submission message stays on screen.
const ToastMillis = 2000

// Tone classifies the toast for coloring.
type Tone int

const (
	ToneInfo Tone = iota
	ToneSuccess
	ToneError
)

// Game adapts a session to the platform's tick/render loop.
type Game struct {
	id     string
	title  string
	cfg    config.WordRushConfig
	dict   dictionary.Dictionary
	logger *log.Logger

	rt     core.RuntimeConfig
	sess   *session.Session
	paused bool
	over   bool

	toast     string
	toastTone Tone
	toastLeft int // ms
}

// New creates a game for the given mode. Zen mode ignores the configured
// round length.
func New(id string, env registry.Env) *Game {
	cfg := env.Config
	if err := cfg.Validate(); err != nil {
		if env.Logger != nil {
			env.Logger.Warn("invalid game config, using defaults", "err", err)
		}
		cfg = config.DefaultWordRushConfig()
	}
	title := "Word Rush"
	if id == ModeZen {
		cfg.Round.Seconds = 0
		title = "Word Rush Zen"
	}
	dict := env.Dictionary
	if dict == nil {
		dict = dictionary.Default()
	}
	return &Game{
		id:     id,
		title:  title,
		cfg:    cfg,
		dict:   dict,
		logger: env.Logger,
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new round with a fresh rack.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.sess = session.New(g.dict, session.Options{
		RackSize:    g.cfg.Rack.Size,
		Duration:    g.cfg.Duration(),
		Weights:     g.cfg.LetterWeights(),
		MinLength:   g.cfg.Rules.MinLength,
		StreakEvery: g.cfg.Streak.Every,
		StreakBonus: g.cfg.Streak.Bonus,
		Seed:        rt.Seed,
		Logger:      g.logger,
	})
	g.paused = false
	g.over = false
	g.toast = ""
	g.toastLeft = 0
}

// Session exposes the underlying round.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Summary reports the round for the score store.
func (g *Game) Summary() session.Summary {
	return g.sess.Summary()
}

// Step applies one frame of input and runs the clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.rt.Seed = 0
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}

	if g.over {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFinish) {
		g.finish()
		return core.StepResult{State: g.State()}
	}

	for _, r := range in.Text {
		g.handleRune(r)
	}
	if in.Has(core.ActionBackspace) {
		g.sess.Backspace()
	}
	if in.Has(core.ActionClear) {
		g.sess.Clear()
	}
	if in.Has(core.ActionShuffle) {
		g.sess.Shuffle()
	}
	if in.Has(core.ActionSubmit) {
		g.submit()
	}

	if g.toastLeft > 0 {
		g.toastLeft -= in.Dt
	}

	if g.sess.Advance(time.Duration(in.Dt) * time.Millisecond) {
		g.over = true
		g.show(session.MessageTimeUp, ToneInfo)
	}

	return core.StepResult{State: g.State()}
}

// handleRune types a letter, or toggles a tile when given its position
// digit (1-9, 0 for the tenth tile).
func (g *Game) handleRune(r rune) {
	switch {
	case r >= '1' && r <= '9':
		g.sess.Select(int(r - '1'))
	case r == '0':
		g.sess.Select(9)
	case unicode.IsLetter(r):
		g.sess.Type(r)
	}
}

func (g *Game) submit() {
	if g.sess.CurrentWord() == "" {
		return
	}
	out, err := g.sess.Submit()
	switch {
	case errors.Is(err, session.ErrTimeUp), errors.Is(err, session.ErrNotActive):
		g.over = true
	case err != nil:
		g.show(out.Message, ToneError)
	case out.Result.Valid:
		g.show(out.Message, ToneSuccess)
	default:
		g.show(out.Message, ToneError)
	}
}

func (g *Game) finish() {
	g.sess.End()
	g.over = true
	g.show("Round over.", ToneInfo)
}

func (g *Game) show(msg string, tone Tone) {
	g.toast = msg
	g.toastTone = tone
	g.toastLeft = ToastMillis
}

// Toast returns the visible message, or "" once it has expired.
func (g *Game) Toast() (string, Tone) {
	if g.toastLeft <= 0 && !g.over {
		return "", ToneInfo
	}
	return g.toast, g.toastTone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sess.Score(),
		GameOver: g.over,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register(registry.Info{
		ID:          ModeTimed,
		Title:       "Word Rush",
		Description: "Find as many words as you can before the clock runs out",
	}, func(env registry.Env) registry.Game {
		return New(ModeTimed, env)
	})
	registry.Register(registry.Info{
		ID:          ModeZen,
		Title:       "Word Rush Zen",
		Description: "No clock; end the round with Ctrl+E",
	}, func(env registry.Env) registry.Game {
		return New(ModeZen, env)
	})
}
