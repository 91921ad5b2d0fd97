// lightcycle is a two-player light cycle game for the terminal.
//
// Usage:
//
//	lightcycle list            - List available game modes
//	lightcycle play [mode]     - Play on one keyboard (default: lightcycle)
//	lightcycle sim             - Run a scripted round headless and print the result
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/lightcycle/internal/games/lightcycle"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightcycle",
	Short: "Light Cycle - two riders, one grid, no way back",
	Long: `Light Cycle is a two-player game for the terminal. Each rider leaves a
wall behind; the first to hit a wall or a trail loses the round.

Available commands:
  list  - Show all game modes
  play  - Play on one keyboard
  sim   - Run a scripted round without a terminal UI

Examples:
  lightcycle play
  lightcycle play lightcycle_survival --speed fast
  lightcycle sim --script round.yaml --trace round.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}
