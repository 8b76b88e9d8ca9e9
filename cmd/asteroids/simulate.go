package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/sim"
)

var (
	flagSimTicks      int
	flagSimRuns       int
	flagSimDump       string
	flagSimPractice   bool
	flagSimConfig     string
	flagSimDifficulty string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fly autopilot runs without a terminal",
	Long: `Run the world headless with the autopilot at the controls and print
the outcome. Runs with the same seed and tick rate always end the same way,
which makes this handy for checking balance changes.

With --runs N, seeds seed..seed+N-1 fly in parallel.

Examples:
  asteroids simulate --seed 7
  asteroids simulate --ticks 36000 --runs 16 --difficulty hard
  asteroids simulate --seed 7 --dump world.msgpack`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks per run")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs, one seed each")
	simulateCmd.Flags().StringVar(&flagSimDump, "dump", "", "Write the final world of the first run as msgpack")
	simulateCmd.Flags().BoolVar(&flagSimPractice, "practice", false, "Fly in practice mode")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult is the outcome of one headless run.
type simResult struct {
	Seed     int64
	State    sim.RunState
	Ticks    uint64
	Snapshot sim.Snapshot
}

// simulateRun flies one autopilot run until game over or maxTicks.
func simulateRun(ctx context.Context, cfg config.AsteroidsConfig, seed int64, maxTicks, frameMillis int, practice bool, logger *log.Logger) (simResult, error) {
	simCfg := cfg.ToSim()
	simCfg.PointerAim = true // the autopilot steers with the pointer

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	w := sim.NewWorld(simCfg,
		sim.WithSeed(seed),
		sim.WithPractice(practice),
		sim.WithLogger(logger.With("seed", seed)),
		sim.WithRockSpeed(difficulty.RockSpeed(cfg.Gameplay.StartLevel)),
	)
	w.SetControls(sim.NewAutopilot(w))
	w.Start()

	for i := range maxTicks {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return simResult{}, err
			}
		}
		w.Tick(frameMillis)
		if w.State().GameOver {
			break
		}
	}

	return simResult{
		Seed:     seed,
		State:    w.State(),
		Ticks:    w.Ticks(),
		Snapshot: w.Snapshot(),
	}, nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "simulate")

	cfg, err := config.LoadAsteroids(flagSimConfig)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	if preset := config.ParsePreset(flagSimDifficulty); preset != "" {
		config.ApplyAsteroidsPreset(&cfg, preset)
	}

	runs := max(1, flagSimRuns)
	frame := 1000 / max(1, flagFPS)
	results := make([]simResult, runs)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range runs {
		g.Go(func() error {
			res, err := simulateRun(ctx, cfg, flagSeed+int64(i), flagSimTicks, frame, flagSimPractice, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	printSimResults(results, frame)

	if flagSimDump != "" {
		data, err := results[0].Snapshot.Encode()
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		if err := os.WriteFile(flagSimDump, data, 0o600); err != nil {
			return fmt.Errorf("simulate: cannot write dump: %w", err)
		}
		logger.Info("world dumped", "path", flagSimDump, "bytes", len(data))
	}
	return nil
}

func printSimResults(results []simResult, frame int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tSCORE\tLEVEL\tLIVES\tACCURACY\tTICKS\tSECONDS\tHASH")
	total := 0
	for _, r := range results {
		total += r.State.Score
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.1f%%\t%d\t%.1f\t%016x\n",
			r.Seed, r.State.Score, r.State.Level, max(0, r.State.Lives),
			r.State.Accuracy()*100, r.Ticks, float64(r.Ticks)*float64(frame)/1000,
			r.Snapshot.Hash())
	}
	tw.Flush()

	if len(results) > 1 {
		fmt.Printf("\nmean score %.0f over %d runs\n", float64(total)/float64(len(results)), len(results))
	}
}
