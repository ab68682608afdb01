package wordrush

import (
	"strings"
	"testing"

	"github.com/vovakirdan/word-rush/internal/config"
	"github.com/vovakirdan/word-rush/internal/core"
	"github.com/vovakirdan/word-rush/internal/dictionary"
	"github.com/vovakirdan/word-rush/internal/registry"
	"github.com/vovakirdan/word-rush/internal/rules"
)

func testEnv() registry.Env {
	return registry.Env{
		Config:     config.DefaultWordRushConfig(),
		Dictionary: dictionary.NewSet("teapot", "tea", "pot", "top"),
	}
}

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	g := New(id, testEnv())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 20, Seed: 12345})
	g.Session().SetRack(rules.ParseRack("teapotsnrd"))
	return g
}

func typed(text string, actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, r := range text {
		f.Type(r)
	}
	for _, a := range actions {
		f.Set(a)
	}
	f.Dt = 50
	return f
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 777}

	g1 := New(ModeTimed, testEnv())
	g1.Reset(cfg)
	g2 := New(ModeTimed, testEnv())
	g2.Reset(cfg)

	if g1.Session().Rack().String() != g2.Session().Rack().String() {
		t.Errorf("Same seed should deal the same rack: %q vs %q",
			g1.Session().Rack().String(), g2.Session().Rack().String())
	}
}

func TestGameSubmitWord(t *testing.T) {
	g := newTestGame(t, ModeTimed)

	g.Step(typed("teapot", core.ActionSubmit))
	if g.State().Score != 10 {
		t.Errorf("Score = %d, expected 10 for teapot", g.State().Score)
	}
	msg, tone := g.Toast()
	if msg != "+10 points!" || tone != ToneSuccess {
		t.Errorf("Toast = %q/%v, expected success +10", msg, tone)
	}

	g.Step(typed("teapot", core.ActionSubmit))
	msg, tone = g.Toast()
	if tone != ToneError || msg != rules.ReasonAlreadyFound.Message() {
		t.Errorf("Duplicate should be rejected, got %q", msg)
	}
	if g.State().Score != 10 {
		t.Errorf("Score should not change on rejection, got %d", g.State().Score)
	}
}

func TestGameDigitsSelectTiles(t *testing.T) {
	g := newTestGame(t, ModeTimed)

	// t=1 o=5 p=4
	g.Step(typed("154"))
	if got := g.Session().CurrentWord(); got != "top" {
		t.Fatalf("CurrentWord() = %q, expected \"top\"", got)
	}

	g.Step(typed("", core.ActionBackspace))
	if got := g.Session().CurrentWord(); got != "to" {
		t.Errorf("Backspace should drop the last tile, got %q", got)
	}

	g.Step(typed("", core.ActionClear))
	if got := g.Session().CurrentWord(); got != "" {
		t.Errorf("Clear should empty the word, got %q", got)
	}

	// Submitting nothing is a no-op
	g.Step(typed("", core.ActionSubmit))
	if msg, _ := g.Toast(); msg != "" {
		t.Errorf("Empty submit should not show a toast, got %q", msg)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, ModeTimed)
	before := g.Session().Remaining()

	g.Step(typed("", core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}
	g.Step(typed("tea", core.ActionSubmit))
	if g.Session().Remaining() != before || g.State().Score != 0 {
		t.Error("Paused game should ignore input and stop the clock")
	}

	g.Step(typed("", core.ActionPause))
	if g.State().Paused {
		t.Error("Second pause should resume")
	}
}

func TestGameTimeUp(t *testing.T) {
	g := newTestGame(t, ModeTimed)

	ticks := int(g.Session().Duration().Milliseconds()/50) + 1
	for i := 0; i < ticks && !g.State().GameOver; i++ {
		g.Step(typed(""))
	}
	if !g.State().GameOver {
		t.Fatal("Round should end when the clock runs out")
	}

	g.Step(typed("tea", core.ActionSubmit))
	if g.State().Score != 0 {
		t.Error("No submissions after time is up")
	}

	g.Step(typed("", core.ActionRestart))
	if g.State().GameOver || !g.Session().Active() {
		t.Error("Restart should start a fresh round")
	}
}

func TestZenModeHasNoClock(t *testing.T) {
	g := newTestGame(t, ModeZen)
	if g.Session().Timed() {
		t.Fatal("Zen mode should be untimed")
	}

	for i := 0; i < 5000; i++ {
		g.Step(typed(""))
	}
	if g.State().GameOver {
		t.Error("Zen round should not expire")
	}

	g.Step(typed("", core.ActionFinish))
	if !g.State().GameOver {
		t.Error("Finish should end the round")
	}
}

func TestGameShuffleKeepsLetters(t *testing.T) {
	g := newTestGame(t, ModeTimed)
	before := g.Session().Rack().Counts()

	g.Step(typed("te", core.ActionShuffle))
	after := g.Session().Rack().Counts()
	for r, n := range before {
		if after[r] != n {
			t.Errorf("Shuffle changed count of %q: %d -> %d", r, n, after[r])
		}
	}
	if len(g.Session().Selection()) != 0 {
		t.Error("Shuffle should clear the selection")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, ModeTimed)
	g.Step(typed("tea"))

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"W O R D   R U S H", "Score: 0", "Time: 3:00", "TEA", "Found words (0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}

	g.Step(typed("", core.ActionFinish))
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Game over panel should be drawn")
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	g := New(ModeTimed, registry.Env{})
	g.Reset(core.DefaultConfig())
	if got := len(g.Session().Rack()); got != 10 {
		t.Errorf("Rack size = %d, expected default 10", got)
	}
	if !g.Session().Timed() {
		t.Error("Default config should be timed")
	}
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{ModeTimed, ModeZen} {
		if !registry.Exists(id) {
			t.Errorf("mode %q should be registered", id)
		}
		g, err := registry.Create(id, testEnv())
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestHelpers(t *testing.T) {
	if got := wrapWords([]string{"alpha", "beta", "gamma"}, 10); len(got) != 2 || got[0] != "alpha beta" {
		t.Errorf("wrapWords() = %q", got)
	}
	if positionHint(0) != '1' || positionHint(9) != '0' || positionHint(10) != 0 {
		t.Error("positionHint should map tiles to 1-9 then 0")
	}
	if progressFill(0, 0, 30) != 0 {
		t.Error("progressFill should be empty for untimed rounds")
	}
}
