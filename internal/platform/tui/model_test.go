package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard"
)

func newTestModel(t *testing.T) (Model, *cyberguard.Game) {
	t.Helper()
	g := cyberguard.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 100, ScreenH: 33, TickRate: 60, Seed: 7}, nil)
	if m.Init() == nil {
		t.Fatal("Expected Init to start the tick loop")
	}
	return m, g
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func TestModelKeysReachGame(t *testing.T) {
	m, g := newTestModel(t)

	next, _ := m.Update(runeKey('3'))
	m = tick(next.(Model))

	if got := g.World().State().Selected(); got != config.Detection {
		t.Errorf("Selected() = %q, expected detection", got)
	}
	if g.World().State().Frame() != 1 {
		t.Errorf("Expected one simulated frame, got %d", g.World().State().Frame())
	}

	// Input is cleared after each tick
	tick(m)
	if g.World().State().Frame() != 2 {
		t.Errorf("Expected two simulated frames, got %d", g.World().State().Frame())
	}
}

func TestModelGameGetsHelpRow(t *testing.T) {
	m, _ := newTestModel(t)
	if h := m.gameConfig().ScreenH; h != 32 {
		t.Errorf("game height = %d, expected 32", h)
	}

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("Expected the HUD in the view")
	}
	if !strings.Contains(view, "fire") {
		t.Error("Expected the help bar in the view")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, g := newTestModel(t)
	for range 5 {
		m = tick(m)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 41})
	m = next.(Model)
	if g.World().State().Frame() != 5 {
		t.Errorf("Expected resize to keep the run, frame = %d", g.World().State().Frame())
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitCollectsReview(t *testing.T) {
	m, g := newTestModel(t)
	g.World().State().RecordDefenseOutcome(config.Phishing, config.Education)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil || !m.quitting {
		t.Fatal("Expected q to quit")
	}
	if len(m.review) != 1 || m.review[0].Kind != "correct" {
		t.Errorf("Expected the review to be collected, got %+v", m.review)
	}
	if m.View() != "" {
		t.Error("Expected an empty view after quitting")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(runeKey('?'))
	if !next.(Model).help.ShowAll {
		t.Error("Expected ? to expand the help")
	}
}
