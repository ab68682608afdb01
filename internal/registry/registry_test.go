package registry

import (
	"testing"

	"github.com/vovakirdan/word-rush/internal/config"
	"github.com/vovakirdan/word-rush/internal/core"
)

type stubGame struct {
	id  string
	env Env
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func registerStub(t *testing.T, id string) {
	t.Helper()
	Register(Info{ID: id, Title: "Stub " + id}, func(env Env) Game {
		return &stubGame{id: id, env: env}
	})
	t.Cleanup(func() {
		mu.Lock()
		delete(modes, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	registerStub(t, "stub_b")
	registerStub(t, "stub_a")

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}
	if Exists("missing") {
		t.Error("missing should not be registered")
	}

	info, ok := Lookup("stub_b")
	if !ok || info.Title != "Stub stub_b" {
		t.Errorf("Lookup(stub_b) = %+v, %v", info, ok)
	}

	env := Env{Config: config.DefaultWordRushConfig()}
	env.Config.Rack.Size = 7
	g, err := Create("stub_a", env)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}
	if got := g.(*stubGame).env.Config.Rack.Size; got != 7 {
		t.Errorf("factory should receive the env, rack size = %d", got)
	}

	if _, err := Create("missing", env); err == nil {
		t.Error("Create() of unknown mode should fail")
	}
}

func TestListSorted(t *testing.T) {
	registerStub(t, "stub_z")
	registerStub(t, "stub_m")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	registerStub(t, "stub_dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Info{ID: "stub_dup"}, func(Env) Game { return &stubGame{} })
}
