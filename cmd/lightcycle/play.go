package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/games/lightcycle"
	"github.com/vovakirdan/lightcycle/internal/platform/tui"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

var (
	flagConfig  string
	flagSpeed   string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a match on one keyboard",
	Long: `Start a two-player match in the terminal.

Controls:
  W A S D    - Player 1
  Arrows     - Player 2
  P/Esc      - Pause
  R          - Next round (after a crash)
  Q/Ctrl+C   - Quit

Speed options:
  slow   - Cycles step every 8 ticks
  normal - Cycles step every 5 ticks
  fast   - Cycles step every 3 ticks
  fixed  - Keep move_every_ticks from the config

Examples:
  lightcycle play
  lightcycle play lightcycle_survival
  lightcycle play --speed fast --config ./arena.yaml
  lightcycle play --log-level debug --log-file lightcycle.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "lightcycle"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'lightcycle list' to see available modes", gameID)
	}

	if !config.SpeedPreset(flagSpeed).Valid() {
		return fmt.Errorf("unknown speed %q (slow, normal, fast, fixed)", flagSpeed)
	}

	// The alt screen owns stdout, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "lightcycle")
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	lightcycle.SetConfigPath(flagConfig)
	lightcycle.SetSpeedPreset(flagSpeed)
	lightcycle.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
