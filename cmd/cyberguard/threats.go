package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard"
)

var threatsCmd = &cobra.Command{
	Use:   "threats",
	Short: "Show the threat and defense tables",
	Long: `Print the threat categories, the defense that counters each one and
the agent stats from the active configuration (--config or the defaults).`,
	Run: runThreats,
}

func runThreats(_ *cobra.Command, _ []string) {
	configureGame("")
	cfg := cyberguard.LoadConfig()

	headerStyle := lipgloss.NewStyle().Bold(true)
	border := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	threats := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("Threat", "Counter", "Health", "Damage", "Speed", "Tip").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	for _, c := range config.AllCategories {
		t := cfg.Threats[c]
		threats.Row(
			t.Label,
			cfg.Matchups[c].Title(),
			strconv.Itoa(t.Health),
			strconv.Itoa(t.Damage),
			strconv.FormatFloat(t.Speed, 'f', 1, 64),
			t.Tip,
		)
	}

	agents := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("Defense", "Key", "Power", "Range", "Cooldown", "Special")
	for i, d := range config.AllDefenses {
		a := cfg.Agents[d]
		agents.Row(
			d.Title(),
			strconv.Itoa(i+1),
			strconv.Itoa(a.Power),
			strconv.FormatFloat(a.Range, 'f', 0, 64),
			strconv.Itoa(a.Cooldown),
			strings.ReplaceAll(a.Special, "_", " "),
		)
	}

	fmt.Println(headerStyle.Render("Threats"))
	fmt.Println(threats.Render())
	fmt.Println()
	fmt.Println(headerStyle.Render("Agents"))
	fmt.Println(agents.Render())
	fmt.Println()
	fmt.Println(headerStyle.Render("Levels"))
	for i, l := range cfg.Levels {
		names := make([]string, len(l.Categories))
		for j, c := range l.Categories {
			names[j] = cfg.Threats[c].Label
		}
		fmt.Printf("  %d. %-20s %4d kp  %s\n", i+1, l.Name, l.KnowledgeRequired, strings.Join(names, ", "))
	}
}
