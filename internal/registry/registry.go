// Package registry maps game mode ids to factories. Modes register
// themselves from init so the CLI and menus can list and build them by id.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/cyberguard/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives: pure logic, no terminal access.
// The platform owns input mapping, timing and output.
type Game interface {
	// ID is the stable mode id used on the command line.
	ID() string
	// Title is shown in menus.
	Title() string

	// Reset starts a fresh run sized and seeded by cfg.
	Reset(cfg core.RuntimeConfig)
	// Step advances one fixed tick with this tick's actions.
	Step(in core.InputFrame) core.StepResult
	// Render draws into a cleared screen buffer. It must not change the run.
	Render(dst *core.Screen)
	State() core.GameState
}

// Resizable is implemented by games that can adapt to a new screen size
// without restarting the run. Other games are reset on resize.
type Resizable interface {
	Resize(w, h int)
}

// Reviewable is implemented by games that keep an after-action log.
type Reviewable interface {
	Review() []core.ReviewEntry
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
