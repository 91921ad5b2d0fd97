package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightcycle/internal/casting"
	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/directing"
	"github.com/vovakirdan/lightcycle/internal/games/lightcycle"
	"github.com/vovakirdan/lightcycle/internal/replay"
	"github.com/vovakirdan/lightcycle/internal/telemetry"
)

var (
	flagSimConfig string
	flagSimScript string
	flagSimTrace  string
	flagSimTicks  int
	flagSimPolicy string
	flagSimQuiet  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted round headless",
	Long: `Run one round without a terminal UI. Directions come from a YAML script,
the playfield size from the config's grid.cols and grid.rows.

Script format:
  steps:
    - {tick: 1, player: 1, dir: right}
    - {tick: 1, player: 2, dir: left}

The round ends on a crash or after --ticks ticks. The final frame is
printed to stdout; --trace writes one CSV row per tick.

Examples:
  lightcycle sim --script headon.yaml
  lightcycle sim --script headon.yaml --policy mutual_death --trace headon.csv`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom config YAML")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Path to input script YAML (empty: nobody steers)")
	simCmd.Flags().StringVar(&flagSimTrace, "trace", "", "Write a per-tick CSV trace to this file")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Stop after this many ticks")
	simCmd.Flags().StringVar(&flagSimPolicy, "policy", "", "Override the round policy: last_survivor, mutual_death")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Do not print the final frame")
}

func validateSimTicks(ticks int) error {
	if ticks < 1 {
		return fmt.Errorf("invalid --ticks %d: must be at least 1", ticks)
	}
	return nil
}

func runSim(cmd *cobra.Command, args []string) (err error) {
	if err := validateSimTicks(flagSimTicks); err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	cfg, err := config.LoadLightcycle(flagSimConfig)
	if err != nil {
		return err
	}
	if flagSimPolicy != "" {
		cfg.Gameplay.Policy = flagSimPolicy
	}
	policy, err := directing.ParsePolicy(cfg.Gameplay.Policy)
	if err != nil {
		return err
	}

	script := &replay.Script{}
	if flagSimScript != "" {
		if script, err = replay.Load(flagSimScript); err != nil {
			return err
		}
	}

	trace, err := telemetry.CreateTraceFile(flagSimTrace)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := trace.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing trace: %w", cerr)
		}
	}()

	display := lightcycle.NewScreenDisplay(cfg.Grid.Cols, cfg.Grid.Rows+lightcycle.HUDRows, cfg.Grid.CellSize)
	display.SetFrameLimit(flagSimTicks)
	input := replay.NewPlayer(script, func() uint64 { return uint64(display.Frames()) })
	if last := input.LastTick(); last > uint64(flagSimTicks) {
		logger.Warn("script steps past the tick limit are never played", "last_step", last, "max_ticks", flagSimTicks)
	}

	cast, err := lightcycle.NewCast(cfg, display.Cols(), display.Rows())
	if err != nil {
		return err
	}

	var traceErr error
	director := directing.NewDirector(input, display, directing.Config{
		CellSize: cfg.Grid.CellSize,
		Policy:   policy,
		Logger:   logger,
		Observe: func(r directing.RoundResult, c *casting.Cast) {
			if traceErr == nil {
				traceErr = trace.Write(telemetry.Capture(r, c))
			}
		},
	})

	logger.Debug("simulating", "cols", cfg.Grid.Cols, "rows", cfg.Grid.Rows, "steps", len(script.Steps), "max_ticks", flagSimTicks)
	result, err := director.StartGame(cast)
	if err != nil {
		return err
	}
	if traceErr != nil {
		return traceErr
	}

	if !flagSimQuiet {
		fmt.Println(display.Screen().String())
	}
	if !result.Over {
		logger.Warn("round stopped before a crash", "ticks", result.Tick)
	}
	fmt.Printf("ticks=%d over=%t winner=%s\n", result.Tick, result.Over, result.Winner)
	return nil
}
