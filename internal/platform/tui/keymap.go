package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberguard/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Fire      key.Binding
	Select1   key.Binding
	Select2   key.Binding
	Select3   key.Binding
	Select4   key.Binding
	Deploy    key.Binding
	Special   key.Binding
	Knowledge key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// ShortHelp returns the bindings shown in the one-line help bar.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select1, k.Fire, k.Deploy, k.Special, k.Knowledge, k.Pause, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Select1, k.Select2, k.Select3, k.Select4},
		{k.Fire, k.Deploy, k.Special},
		{k.Knowledge, k.Confirm, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "fire"),
		),
		Select1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "defense"),
		),
		Select2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "encryption"),
		),
		Select3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "detection"),
		),
		Select4: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "education"),
		),
		Deploy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "deploy"),
		),
		Special: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "special"),
		),
		Knowledge: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "journal"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys     GameKeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	k := DefaultGameKeyMap()
	return &KeyMapper{
		Keys: k,
		bindings: []actionBinding{
			{k.Left, core.ActionLeft},
			{k.Right, core.ActionRight},
			{k.Up, core.ActionUp},
			{k.Down, core.ActionDown},
			{k.Fire, core.ActionFire},
			{k.Select1, core.ActionSelect1},
			{k.Select2, core.ActionSelect2},
			{k.Select3, core.ActionSelect3},
			{k.Select4, core.ActionSelect4},
			{k.Deploy, core.ActionDeploy},
			{k.Special, core.ActionSpecial},
			{k.Knowledge, core.ActionKnowledge},
			{k.Confirm, core.ActionConfirm},
			{k.Back, core.ActionBack},
			{k.Pause, core.ActionPause},
			{k.Restart, core.ActionRestart},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.Keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
