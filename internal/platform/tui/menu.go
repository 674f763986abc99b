package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
	"github.com/vovakirdan/cyberguard/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// difficultyChoices is the difficulty list; "" keeps the config file as is.
var difficultyChoices = append([]config.DifficultyPreset{""}, config.Presets...)

// MenuModel is the Bubble Tea model for the game and difficulty picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	diffCursor  int
	pickingDiff bool
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects a game
	difficulty  config.DifficultyPreset
	reviewAvail bool // A finished run can be reviewed
	wantsReview bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, reviewAvail bool) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:       items,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		reviewAvail: reviewAvail,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "tab" && m.reviewAvail && !m.pickingDiff {
			m.wantsReview = true
			return m, tea.Quit
		}
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.pickingDiff {
			return m.handleDifficultyKey(action)
		}
		return m.handleGameKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleGameKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.pickingDiff = true
			m.diffCursor = 0
		}
	}

	return m, nil
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.pickingDiff = false

	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}

	case MenuActionDown:
		if m.diffCursor < len(difficultyChoices)-1 {
			m.diffCursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		m.difficulty = difficultyChoices[m.diffCursor]
		return m, tea.Quit // Exit menu to start game
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  C Y B E R   G U A R D I A N S  ", m.width))
	b.WriteString("\n\n")

	if m.pickingDiff {
		b.WriteString(centerText("Select difficulty", m.width))
		b.WriteString("\n\n")
		for i, d := range difficultyChoices {
			cursor := "  "
			if i == m.diffCursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+difficultyLabel(d), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s", cursor, item.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	if m.reviewAvail {
		controls = "Up/Down: Navigate  |  Enter: Select  |  Tab: Last run  |  Q: Quit"
	}
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func difficultyLabel(d config.DifficultyPreset) string {
	if d == "" {
		return "Default (config file)"
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen preset, "" for the config default.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsReview returns true if user asked for the last run's review.
func (m MenuModel) WantsReview() bool {
	return m.wantsReview
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID      string
	Difficulty  config.DifficultyPreset
	Config      core.RuntimeConfig
	WantsReview bool
	Quit        bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, reviewAvail bool) (MenuResult, error) {
	model := NewMenuModel(cfg, reviewAvail)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsReview():
		result.WantsReview = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.Difficulty = m.Difficulty()
	}

	return result, nil
}
