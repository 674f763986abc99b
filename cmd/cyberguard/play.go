package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cyberguard/internal/core"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard"
	"github.com/vovakirdan/cyberguard/internal/platform/tui"
	"github.com/vovakirdan/cyberguard/internal/registry"
)

var (
	flagDifficulty string
	flagNoReview   bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start defending the network.

Controls:
  Arrows/WASD  - Move the commander
  1-4          - Select Firewall, Encryption, Detection, Education
  Space        - Fire the selected defense
  E            - Deploy an agent of the selected type
  X            - Use the selected agent's special ability
  K            - Knowledge journal
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow threats, progresses to max
  normal - Starts at 30% difficulty
  hard   - Starts at 70% difficulty, two threats per wave
  fixed  - No progression

Examples:
  cyberguard play
  cyberguard play cyberguard_levels
  cyberguard play --difficulty hard --seed 42
  cyberguard play --config ./my-cyberguard.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoReview, "no-review", false, "Skip the after-action review")
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "cyberguard"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cyberguard list' to see available modes.")
		os.Exit(1)
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	configureGame(flagDifficulty)
	cyberguard.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	cfg := terminalConfig()
	result, err := tui.Run(game, cfg, logger)
	if err != nil {
		fail("running game: %v", err)
	}

	if !flagNoReview && len(result.Review) > 0 {
		if _, err := tui.RunReview(result.Review, cfg.ScreenW, cfg.ScreenH); err != nil {
			fail("review: %v", err)
		}
	}

	summary := fmt.Sprintf("Score: %d", result.Score)
	if result.Reason != "" {
		summary += " (" + result.Reason + ")"
	}
	fmt.Println(summary)
}
