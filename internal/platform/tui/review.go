package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cyberguard/internal/core"
)

// Review layout constants
const (
	frameColWidth  = 7
	kindColWidth   = 8
	threatColWidth = 18
	minLessonWidth = 20
)

// reviewFilters are the record kinds the review can be narrowed to; "" shows all.
var reviewFilters = []string{"", "correct", "wrong", "info"}

// ReviewKeyMap defines the key bindings for the review screen.
type ReviewKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k ReviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back}
}

// FullHelp returns keybindings for the expanded help view.
func (k ReviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultReviewKeyMap returns the default key bindings.
func DefaultReviewKeyMap() ReviewKeyMap {
	return ReviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReviewModel is the Bubble Tea model for the after-action review.
// It lists the knowledge records of the last run in a table.
type ReviewModel struct {
	entries   []core.ReviewEntry
	filter    int
	table     table.Model
	help      help.Model
	keys      ReviewKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewReviewModel creates a review of entries sized to the terminal.
func NewReviewModel(entries []core.ReviewEntry, width, height int) ReviewModel {
	h := help.New()
	h.ShowAll = false

	m := ReviewModel{
		entries: entries,
		keys:    DefaultReviewKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *ReviewModel) createTable() table.Model {
	lesson := m.width - frameColWidth - kindColWidth - threatColWidth - 12
	if lesson < minLessonWidth {
		lesson = minLessonWidth
	}
	columns := []table.Column{
		{Title: "Frame", Width: frameColWidth},
		{Title: "Result", Width: kindColWidth},
		{Title: "Threat", Width: threatColWidth},
		{Title: "Lesson", Width: lesson},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-9, 3)), // Leave room for header, tabs, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// visible returns the entries that pass the current filter.
func (m ReviewModel) visible() []core.ReviewEntry {
	kind := reviewFilters[m.filter]
	if kind == "" {
		return m.entries
	}
	out := make([]core.ReviewEntry, 0, len(m.entries))
	for _, e := range m.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// updateTableRows refills the table for the current filter.
func (m *ReviewModel) updateTableRows() {
	entries := m.visible()
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Frame),
			e.Kind,
			e.Subject,
			e.Detail,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the review model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review screen.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % len(reviewFilters)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter--
			if m.filter < 0 {
				m.filter = len(reviewFilters) - 1
			}
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// counts tallies entries per kind.
func (m ReviewModel) counts() map[string]int {
	c := make(map[string]int, len(reviewFilters))
	for _, e := range m.entries {
		c[e.Kind]++
	}
	return c
}

// View renders the review.
func (m ReviewModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("AFTER-ACTION REVIEW", m.width)))
	b.WriteString("\n\n")

	c := m.counts()
	summary := fmt.Sprintf("Correct: %d  |  Wrong: %d  |  Threats met: %d", c["correct"], c["wrong"], c["info"])
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs draws the filter tabs with the active one highlighted.
func (m ReviewModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(reviewFilters))
	for i, f := range reviewFilters {
		name := f
		if name == "" {
			name = "all"
		}
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ReviewModel) renderTableContent() string {
	if len(m.visible()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded here yet.\nDefend the network to learn!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReviewModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReviewModel) IsQuitting() bool {
	return m.quitting
}

// RunReview runs the review screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunReview(entries []core.ReviewEntry, width, height int) (goBack bool, err error) {
	model := NewReviewModel(entries, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReviewModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
