// flappy is a Flappy Bird clone that runs in the terminal or in a window.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play the game
//	flappy config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--frontend <tui|window> - Where to draw the game (default: tui)
//	--config <path>         - Custom config YAML
//	--fps <rate>            - Override the tick rate
//	--seed <value>          - RNG seed for reproducible pipes
//	--log-level <level>     - debug, info, warn or error (default: info)
//	--log-file <path>       - Log destination for the terminal frontend
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFrontend string
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal or a window",
	Long: `Guide the bird through the gaps between the pipes.

Controls:
  Enter        - Start / restart after game over
  Space        - Flap
  Esc/Q/Ctrl+C - Quit

Examples:
  flappy
  flappy play --frontend window
  flappy play --seed 42 --log-file flappy.log --log-level debug
  flappy config > my-flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagFrontend, "frontend", frontendTUI, "Frontend: tui or window")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = loop.fps from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Log file (terminal frontend discards logs without one)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
