package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/cyberguard/internal/config"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard"
	"github.com/vovakirdan/cyberguard/internal/games/cyberguard/sim"
)

var (
	flagRuns     int
	flagFrames   int
	flagAccuracy float64
	flagLevels   bool
	flagParallel int
	flagSimDiff  string
	flagNoDeploy bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot games",
	Long: `Run seeded games without a terminal UI. An autopilot picks the
matching defense with the given accuracy, fires and deploys agents.
Runs execute in parallel and a summary table is printed at the end.

The same --seed always produces the same results.

Examples:
  cyberguard sim
  cyberguard sim --runs 32 --frames 7200 --accuracy 0.6
  cyberguard sim --levels --difficulty hard --log-level debug`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 8, "Number of runs")
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Frames per run")
	simCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.8, "Probability of choosing the matching defense")
	simCmd.Flags().BoolVar(&flagLevels, "levels", false, "Limit waves to the current level's categories")
	simCmd.Flags().IntVar(&flagParallel, "parallel", runtime.NumCPU(), "Maximum concurrent runs")
	simCmd.Flags().StringVar(&flagSimDiff, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().BoolVar(&flagNoDeploy, "no-deploy", false, "Never deploy agents")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Seed    int64
	Frames  int
	Score   int
	Correct int
	Wrong   int
	Level   int
	Combo   int
	Reason  string
	Hash    uint64
}

func runSim(cmd *cobra.Command, _ []string) {
	if flagRuns <= 0 || flagFrames <= 0 {
		fail("--runs and --frames must be positive")
	}
	if flagAccuracy < 0 || flagAccuracy > 1 {
		fail("--accuracy must be between 0 and 1")
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	configureGame(flagSimDiff)
	cyberguard.SetLogger(logger)
	cfg := cyberguard.LoadConfig()

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	results := make([]simResult, flagRuns)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(flagParallel, 1))

	start := time.Now()
	for i := range flagRuns {
		seed := baseSeed + int64(i)
		runLog := logger.With("run", i)
		g.Go(func() error {
			r, err := simulate(ctx, cfg, seed, runLog)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail("sim: %v", err)
	}

	logger.Info("batch finished", "runs", flagRuns, "elapsed", time.Since(start).Round(time.Millisecond))
	printSimResults(results)
}

// simulate plays one run with the autopilot until game over or the frame limit.
func simulate(ctx context.Context, cfg config.Config, seed int64, logger *log.Logger) (simResult, error) {
	opts := []sim.Option{sim.WithLogger(logger)}
	if flagLevels {
		opts = append(opts, sim.WithLevelGating())
	}
	w := sim.NewWorld(cfg, seed, opts...)

	pilot := sim.NewAutopilot(seed, flagAccuracy)
	pilot.Deploy = !flagNoDeploy

	s := w.State()
	for f := 0; f < flagFrames && !s.GameOver(); f++ {
		if f%256 == 0 {
			if err := ctx.Err(); err != nil {
				return simResult{}, err
			}
		}
		pilot.Drive(w)
		w.Step()
		w.Drain()
	}

	snap := w.Snapshot()
	return simResult{
		Seed:    seed,
		Frames:  snap.Frame,
		Score:   snap.Score,
		Correct: snap.CorrectAnswerCount,
		Wrong:   snap.WrongAnswerCount,
		Level:   snap.Level,
		Combo:   snap.MaxCombo,
		Reason:  snap.Reason,
		Hash:    snap.Hash(),
	}, nil
}

func printSimResults(results []simResult) {
	rows := make([][]string, 0, len(results))
	var totalScore, totalCorrect, totalWrong, over int
	for _, r := range results {
		reason := r.Reason
		if reason == "" {
			reason = "-"
		} else {
			over++
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Frames),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Correct),
			strconv.Itoa(r.Wrong),
			strconv.Itoa(r.Level),
			strconv.Itoa(r.Combo),
			reason,
			fmt.Sprintf("%016x", r.Hash),
		})
		totalScore += r.Score
		totalCorrect += r.Correct
		totalWrong += r.Wrong
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Seed", "Frames", "Score", "Right", "Wrong", "Level", "Combo", "Ended", "Hash").
		Rows(rows...)
	fmt.Println(t.Render())

	n := len(results)
	fmt.Printf("Runs: %d  Ended early: %d  Avg score: %.1f  Right/Wrong: %d/%d\n",
		n, over, float64(totalScore)/float64(n), totalCorrect, totalWrong)
}
