// Package cyberguard adapts the defense simulation to the arcade platform.
// It maps platform actions onto world operations, turns simulation events
// into player-facing notices and draws the field into a screen buffer.
package cyberguard

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard/sim"
	"github.com/vovakirdan/cyberguard/internal/registry"
)

// GameMode selects how the spawner picks categories.
type GameMode int

const (
	ModeClassic GameMode = iota // Full category cycle from the start
	ModeLevels                  // Categories unlock level by level
)

// Minimum screen size for a playable field.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// toastTicks is how long a notice stays on screen.
const toastTicks = 150

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation diagnostics. Discarded unless the CLI sets one.
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger passed to new worlds.
func SetLogger(l *log.Logger) {
	logger = l
}

type toast struct {
	text  string
	until int
}

// Game implements the registry game interface on top of sim.World.
type Game struct {
	mode GameMode

	world   *sim.World
	cfg     config.Config
	runtime core.RuntimeConfig

	banner        string // Honor title waiting for confirmation
	showKnowledge bool
	toasts        []toast
	ticks         int // Platform ticks, advances while paused

	screenTooSmall bool
}

// New creates a game that cycles every category in the fixed order.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewLevels creates a game whose waves are limited to the current level's
// categories.
func NewLevels() *Game {
	return &Game{mode: ModeLevels}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeLevels {
		return "cyberguard_levels"
	}
	return "cyberguard"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeLevels {
		return "Cyber Guardians (Level Mode)"
	}
	return "Cyber Guardians"
}

// LoadConfig resolves the configuration the way Reset does.
// A broken config file falls back to the built-in defaults.
func LoadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()

	opts := []sim.Option{}
	if logger != nil {
		opts = append(opts, sim.WithLogger(logger))
	}
	if g.mode == ModeLevels {
		opts = append(opts, sim.WithLevelGating())
	}
	g.world = sim.NewWorld(g.cfg, runtime.Seed, opts...)

	g.banner = ""
	g.showKnowledge = false
	g.toasts = g.toasts[:0]
	g.ticks = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the layout to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// World returns the underlying simulation.
func (g *Game) World() *sim.World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.expireToasts()

	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	s := g.world.State()

	// Handle restart
	if in.Has(core.ActionRestart) && s.GameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.world.Step()

	notices := g.consumeEvents()
	return core.StepResult{State: g.State(), Notices: notices}
}

// handleInput applies this tick's actions to the world.
func (g *Game) handleInput(in core.InputFrame) {
	w := g.world

	// An honor banner holds the run until confirmed
	if g.banner != "" {
		if in.Has(core.ActionConfirm) {
			g.banner = ""
			if !g.showKnowledge {
				w.SetPaused(false)
			}
		}
		return
	}

	if in.Has(core.ActionKnowledge) {
		g.showKnowledge = !g.showKnowledge
		w.SetPaused(g.showKnowledge)
		return
	}
	if g.showKnowledge {
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) {
			g.showKnowledge = false
			w.SetPaused(false)
		}
		return
	}

	if in.Has(core.ActionPause) {
		w.TogglePause()
		return
	}
	if w.Paused() || w.State().GameOver() {
		return
	}

	selects := []core.Action{core.ActionSelect1, core.ActionSelect2, core.ActionSelect3, core.ActionSelect4}
	for i, a := range selects {
		if in.Has(a) && i < len(config.AllDefenses) {
			w.SelectDefense(config.AllDefenses[i])
		}
	}

	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	if dx != 0 || dy != 0 {
		w.MoveCommander(dx, dy)
	}

	if in.Has(core.ActionDeploy) {
		g.deploy()
	}
	if in.Has(core.ActionSpecial) {
		w.UseSpecial()
	}
	if in.Has(core.ActionFire) {
		w.Fire()
	}
}

// deploy places an agent of the selected type ahead of the commander.
func (g *Game) deploy() {
	w := g.world
	d := w.State().Selected()
	if d == "" {
		g.pushToast("Select a defense (1-4) before deploying")
		return
	}
	c := w.Commander()
	cx, cy := c.Center()
	w.DeployAgent(d, cx, cy-2*c.H)
}

// consumeEvents drains the world's events into toasts and notices.
func (g *Game) consumeEvents() []string {
	var notices []string
	for _, e := range g.world.Drain() {
		if e.Kind == sim.EventHonorAwarded && e.Pause {
			g.banner = e.Text
		}
		text := describe(e)
		if text == "" {
			continue
		}
		g.pushToast(text)
		notices = append(notices, text)
	}
	return notices
}

// describe returns the player-facing text for e, or "" for silent events.
func describe(e sim.Event) string {
	switch e.Kind {
	case sim.EventDefenseJudged:
		if e.Correct {
			return ""
		}
		return e.Text
	case sim.EventThreatDestroyed:
		if e.Correct {
			return e.Defense.Title() + " neutralized " + e.Name
		}
		return ""
	case sim.EventThreatLeaked:
		return e.Name + " slipped through"
	case sim.EventCommanderHit:
		return e.Name + " hit the commander"
	case sim.EventComboBonus:
		return "Combo bonus!"
	case sim.EventKnowledgeUnlocked, sim.EventLevelUp, sim.EventHonorAwarded:
		return e.Text
	case sim.EventAgentDeployed:
		return e.Name + " deployed"
	case sim.EventSpecialUsed:
		return "Special: " + e.Name
	case sim.EventActionRejected:
		if e.Name == "fire" && e.Text == "cooling down" {
			return ""
		}
		return "Cannot " + e.Name + ": " + e.Text
	case sim.EventGameOver:
		return "Game over: " + e.Text
	}
	return ""
}

func (g *Game) pushToast(text string) {
	// Collapse repeats of the newest toast
	if n := len(g.toasts); n > 0 && g.toasts[n-1].text == text {
		g.toasts[n-1].until = g.ticks + toastTicks
		return
	}
	g.toasts = append(g.toasts, toast{text: text, until: g.ticks + toastTicks})
	if len(g.toasts) > 4 {
		g.toasts = g.toasts[len(g.toasts)-4:]
	}
}

func (g *Game) expireToasts() {
	kept := g.toasts[:0]
	for _, t := range g.toasts {
		if t.until > g.ticks {
			kept = append(kept, t)
		}
	}
	g.toasts = kept
}

// Banner returns the honor title awaiting confirmation, if any.
func (g *Game) Banner() string {
	return g.banner
}

// ShowingKnowledge reports whether the knowledge journal is open.
func (g *Game) ShowingKnowledge() bool {
	return g.showKnowledge
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	s := g.world.State()
	return core.GameState{
		Score:    s.Score(),
		Level:    s.Level(),
		GameOver: s.GameOver(),
		Reason:   s.Reason(),
		Paused:   g.world.Paused(),
	}
}

// Review lists the run's knowledge records for the after-action screen.
func (g *Game) Review() []core.ReviewEntry {
	if g.world == nil {
		return nil
	}
	records := g.world.State().Records()
	out := make([]core.ReviewEntry, 0, len(records))
	for _, r := range records {
		out = append(out, core.ReviewEntry{
			Frame:   r.Frame,
			Kind:    string(r.Kind),
			Subject: r.ThreatName,
			Detail:  r.Text,
		})
	}
	return out
}

// Register the games with the registry
func init() {
	registry.Register("cyberguard", func() registry.Game {
		return New()
	})
	registry.Register("cyberguard_levels", func() registry.Game {
		return NewLevels()
	})
}
