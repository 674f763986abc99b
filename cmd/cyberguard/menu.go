package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberguard/internal/core"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard"
	"github.com/vovakirdan/cyberguard/internal/platform/tui"
	"github.com/vovakirdan/cyberguard/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode and then a
difficulty. After a run ends you return to the menu; Tab opens the
review of the last run.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Review last run
  Esc          - Back
  Q            - Quit

Examples:
  cyberguard menu
  cyberguard menu --fps 30
  cyberguard menu --log-file ./cyberguard.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := playLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()
	cyberguard.SetLogger(logger)

	cfg := terminalConfig()
	var lastReview []core.ReviewEntry

	for {
		menuResult, err := tui.RunMenu(cfg, len(lastReview) > 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsReview {
			goBack, err := tui.RunReview(lastReview, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			break
		}

		configureGame(string(menuResult.Difficulty))

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, runCfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if len(result.Review) > 0 {
			lastReview = result.Review
		}
	}
}
