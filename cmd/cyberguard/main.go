// cyberguard is a terminal arcade game that teaches which defense stops
// which cyber threat.
//
// Usage:
//
//	cyberguard list              - List available game modes
//	cyberguard play [mode]       - Play a mode (default: cyberguard)
//	cyberguard menu              - Start menu to pick a mode interactively
//	cyberguard sim               - Run headless autopilot games in parallel
//	cyberguard threats           - Show the threat and defense tables
//	cyberguard version           - Print the version
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write diagnostics to a file during play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyberguard/internal/games/cyberguard"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cyberguard",
	Short: "Cyber Guardians - Defend the network in your terminal",
	Long: `Cyber Guardians is a terminal arcade game about cybersecurity.
Threats descend on the network; pick the defense that counters each one.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  sim      - Headless autopilot batch
  threats  - Threat and defense reference
  version  - Print the version

Examples:
  cyberguard play
  cyberguard play cyberguard_levels --difficulty hard
  cyberguard menu --log-file ./cyberguard.log --log-level debug
  cyberguard sim --runs 16 --accuracy 0.7`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file during play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(threatsCmd)
	rootCmd.AddCommand(versionCmd)
}

// configureGame passes the global settings to the game package before a
// game is created.
func configureGame(difficulty string) {
	cyberguard.SetConfigPath(flagConfig)
	cyberguard.SetDifficultyPreset(difficulty)
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
