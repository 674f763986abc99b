package cyberguard

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/core"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard/sim"
)

// Visual characters for rendering
const (
	CommanderChar = '▲'
	BulletChar    = '|'
	StarChar      = '·'
	MarkChar      = '!'
)

// Glyphs per threat category and defense type.
var (
	categoryGlyphs = map[config.Category]rune{
		config.Phishing: '@',
		config.Malware:  '%',
		config.DDoS:     '#',
		config.DataLeak: '$',
	}
	defenseGlyphs = map[config.Defense]rune{
		config.Firewall:   'F',
		config.Encryption: 'E',
		config.Detection:  'D',
		config.Education:  'T',
	}
)

const (
	hudRows    = 2
	panelWidth = 26
	// Below this width the side panel is dropped
	panelMinScreenW = 64
)

// layout maps field coordinates to screen cells.
type layout struct {
	field  core.Rect // Bordered play area
	inner  core.Rect // Drawable cells inside the border
	panelX int      // -1 when there is no side panel
	scaleX float64
	scaleY float64
}

func (g *Game) layout(dst *core.Screen) layout {
	w, h := dst.Width(), dst.Height()
	l := layout{panelX: -1}

	fieldW := w
	if w >= panelMinScreenW {
		fieldW = w - panelWidth - 1
		l.panelX = fieldW + 1
	}
	l.field = core.NewRect(0, hudRows, fieldW, h-hudRows)
	l.inner = core.NewRect(1, hudRows+1, fieldW-2, h-hudRows-2)
	l.scaleX = float64(l.inner.W) / g.cfg.Field.Width
	l.scaleY = float64(l.inner.H) / g.cfg.Field.Height
	return l
}

// cell converts a field position to a screen cell.
func (l layout) cell(x, y float64) (int, int) {
	return l.inner.X + int(x*l.scaleX), l.inner.Y + int(y*l.scaleY)
}

// span converts a field box to an inclusive cell rectangle of at least one cell.
func (l layout) span(b core.Box) core.Rect {
	x0, y0 := l.cell(b.X, b.Y)
	x1, y1 := l.cell(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// contains reports whether cell (x, y) is inside the drawable area.
func (l layout) contains(x, y int) bool {
	return x >= l.inner.X && x < l.inner.Right() && y >= l.inner.Y && y < l.inner.Bottom()
}

func colorOf(name string) core.Color {
	c, ok := core.ParseColor(name)
	if !ok {
		return core.ColorDefault
	}
	return c
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || g.world == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	l := g.layout(dst)
	snap := g.world.Snapshot()

	g.renderHUD(dst, snap)
	g.renderField(dst, l)
	g.renderAgents(dst, l, snap)
	g.renderThreats(dst, l, snap)
	g.renderBullets(dst, l, snap)
	g.renderCommander(dst, l, snap)
	if l.panelX >= 0 {
		g.renderPanel(dst, l.panelX, snap)
	} else {
		g.renderToastLine(dst, dst.Height()-1)
	}
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, security and energy on row 0 and the wave on row 1.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(1, 0, scoreText)

	secColor := core.ColorGreen
	switch {
	case snap.SecurityLevel <= 25:
		secColor = core.ColorBrightRed
	case snap.SecurityLevel <= 50:
		secColor = core.ColorYellow
	}
	secText := fmt.Sprintf("Security: %d%%", snap.SecurityLevel)
	dst.DrawTextCenteredColored(0, secText, secColor)

	energyText := fmt.Sprintf("Energy: %d/%d", int(snap.Energy), int(snap.MaxEnergy))
	dst.DrawTextColored(dst.Width()-len(energyText)-1, 0, energyText, core.ColorCyan)

	var levelText string
	if snap.Level > 0 {
		levelText = fmt.Sprintf("Level %d: %s", snap.Level, snap.LevelName)
	} else {
		levelText = "Free play"
	}
	dst.DrawTextColored(1, 1, levelText, core.ColorGray)

	if c := snap.CurrentThreatCategory; c != "" {
		waveText := "Wave: " + g.cfg.Threats[c].Label
		dst.DrawTextCenteredColored(1, waveText, colorOf(g.cfg.Threats[c].Color))
	}
}

// renderField draws the border and the scrolling background.
func (g *Game) renderField(dst *core.Screen, l layout) {
	dst.DrawBoxColored(l.field, core.ColorGray)

	scroll := g.world.Scroll() / 6
	for row := 0; row < l.inner.H; row++ {
		if (row+l.inner.H-scroll%l.inner.H)%5 != 0 {
			continue
		}
		col := (row*13 + 7) % core.Max(l.inner.W, 1)
		dst.SetColored(l.inner.X+col, l.inner.Y+row, StarChar, core.ColorGray)
	}
}

func (g *Game) renderThreats(dst *core.Screen, l layout, snap sim.Snapshot) {
	for _, t := range snap.Threats {
		glyph := categoryGlyphs[t.Category]
		color := colorOf(g.cfg.Threats[t.Category].Color)
		r := l.span(t.Box)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if l.contains(x, y) {
					dst.SetColored(x, y, glyph, color)
				}
			}
		}
		if t.Marked && l.contains(r.X, r.Y) {
			dst.SetColored(r.X, r.Y, MarkChar, core.ColorBrightWhite)
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen, l layout, snap sim.Snapshot) {
	for _, b := range snap.Bullets {
		cx, cy := b.Box.Center()
		x, y := l.cell(cx, cy)
		if l.contains(x, y) {
			dst.SetColored(x, y, BulletChar, colorOf(g.cfg.Agents[b.Defense].Color))
		}
	}
}

func (g *Game) renderAgents(dst *core.Screen, l layout, snap sim.Snapshot) {
	for _, a := range snap.Agents {
		cx, cy := a.Box.Center()
		x, y := l.cell(cx, cy)
		if !l.contains(x, y) {
			continue
		}
		color := colorOf(g.cfg.Agents[a.Type].Color)
		if a.Cooldown > 0 {
			color = core.ColorGray
		}
		dst.SetColored(x, y, defenseGlyphs[a.Type], color)
	}
}

func (g *Game) renderCommander(dst *core.Screen, l layout, snap sim.Snapshot) {
	color := core.ColorBrightWhite
	if snap.Selected != "" {
		color = colorOf(g.cfg.Agents[snap.Selected].Color)
	}
	r := l.span(snap.Commander)
	for x := r.X; x < r.Right(); x++ {
		if l.contains(x, r.Y) {
			dst.SetColored(x, r.Y, CommanderChar, color)
		}
	}
}

// renderPanel draws defenses, run counters and notices beside the field.
func (g *Game) renderPanel(dst *core.Screen, x int, snap sim.Snapshot) {
	y := hudRows
	line := func(text string, c core.Color) {
		if y < dst.Height() {
			dst.DrawTextColored(x, y, text, c)
		}
		y++
	}

	line("DEFENSES", core.ColorBrightWhite)
	for i, d := range config.AllDefenses {
		cursor := "  "
		if d == snap.Selected {
			cursor = "> "
		}
		line(fmt.Sprintf("%s%d %s", cursor, i+1, d.Title()), colorOf(g.cfg.Agents[d].Color))
	}
	y++

	if hint := scanHint(snap); hint != "" {
		line(hint, core.ColorBrightWhite)
	}
	line(fmt.Sprintf("Agents: %d/%d", len(snap.Agents), g.cfg.Economy.MaxAgents), core.ColorDefault)
	line(fmt.Sprintf("Combo: %d (best %d)", snap.Combo, snap.MaxCombo), core.ColorDefault)
	line(fmt.Sprintf("Knowledge: %d", snap.KnowledgePoints), core.ColorDefault)
	line(fmt.Sprintf("Right: %d  Wrong: %d/%d", snap.CorrectAnswerCount, snap.WrongAnswerCount,
		g.cfg.Security.MaxWrongAnswers), core.ColorDefault)
	if len(snap.Honors) > 0 {
		line("Honors: "+strings.Join(snap.Honors, ","), core.ColorBrightYellow)
	}
	y++

	for _, t := range g.toasts {
		line(truncate(t.text, panelWidth), core.ColorYellow)
	}
}

// scanHint names the counter for the current wave once a scan has marked it.
func scanHint(snap sim.Snapshot) string {
	for _, t := range snap.Threats {
		if t.Marked {
			return "Scan: use " + t.Required.Title()
		}
	}
	return ""
}

func (g *Game) renderToastLine(dst *core.Screen, y int) {
	if len(g.toasts) == 0 {
		return
	}
	text := g.toasts[len(g.toasts)-1].text
	dst.DrawTextColored(1, y, truncate(text, dst.Width()-2), core.ColorYellow)
}

// renderOverlay draws the journal, banners and end-of-run messages.
func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch {
	case g.showKnowledge:
		g.renderKnowledge(dst, snap)
	case g.banner != "":
		g.drawCenteredBox(dst, "HONOR EARNED", g.banner, "Press ENTER to continue")
	case snap.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		g.drawCenteredBox(dst, "GAME OVER", snap.Reason, subtitle)
	case snap.Paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderKnowledge lists the journal entries, locked ones with their threshold.
func (g *Game) renderKnowledge(dst *core.Screen, snap sim.Snapshot) {
	unlocked := make(map[config.Category]bool, len(snap.Unlocked))
	for _, c := range snap.Unlocked {
		unlocked[c] = true
	}

	lines := []string{fmt.Sprintf("Knowledge points: %d", snap.KnowledgePoints), ""}
	for _, c := range config.AllCategories {
		k := g.cfg.Knowledge[c]
		if !unlocked[c] {
			lines = append(lines, fmt.Sprintf("[locked] %s (%d KP)", k.Title, k.PointsRequired))
			continue
		}
		lines = append(lines, k.Title)
		for _, l := range k.Lines {
			lines = append(lines, "  "+l)
		}
	}
	lines = append(lines, "", "Press K to close")
	g.drawCenteredBox(dst, "KNOWLEDGE JOURNAL", lines...)
}

// drawCenteredBox draws a centered message box with a title and body lines.
func (g *Game) drawCenteredBox(dst *core.Screen, title string, body ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range body {
		boxW = core.Max(boxW, len(l))
	}
	boxW = core.Min(boxW+4, w)
	boxH := core.Min(len(body)+4, h)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	for i, l := range body {
		y := boxY + 3 + i
		if y >= boxY+boxH-1 {
			break
		}
		l = truncate(l, boxW-4)
		dst.DrawText(boxX+(boxW-len(l))/2, y, l)
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "."
}
