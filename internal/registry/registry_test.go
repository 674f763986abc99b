package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/cyberguard/internal/core"
)

type fakeGame struct {
	id    string
	score int
}

func (f *fakeGame) ID() string                   { return f.id }
func (f *fakeGame) Title() string                { return strings.ToUpper(f.id) }
func (f *fakeGame) Reset(cfg core.RuntimeConfig) { f.score = 0 }
func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionFire) {
		f.score++
	}
	return core.StepResult{State: f.State()}
}
func (f *fakeGame) Render(dst *core.Screen) {}
func (f *fakeGame) State() core.GameState   { return core.GameState{Score: f.score} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_fake", func() Game { return &fakeGame{id: "zz_fake"} })

	if !Exists("zz_fake") {
		t.Fatal("Expected zz_fake to exist after Register")
	}

	g, err := Create("zz_fake")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	g.Reset(core.DefaultConfig())
	res := g.Step(core.NewInputFrame(core.ActionFire))
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_fake" {
			found = true
			if info.Title != "ZZ_FAKE" {
				t.Errorf("Title = %q, expected ZZ_FAKE", info.Title)
			}
		}
	}
	if !found {
		t.Error("Expected zz_fake in List()")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Exists("no_such_game") {
		t.Error("Expected Exists to be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("aa_fake", func() Game { return &fakeGame{id: "aa_fake"} })
	Register("mm_fake", func() Game { return &fakeGame{id: "mm_fake"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
