package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

const (
	frontendTUI    = "tui"
	frontendWindow = "window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal (default) or in a 600x768 window.

Examples:
  flappy play
  flappy play --frontend window
  flappy play --config ./my-flappy.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := checkFrontend(flagFrontend); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pack, err := assets.Default()
	if err != nil {
		return err
	}

	out, closeLog, err := logOutput(flagFrontend, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	rt := core.RuntimeConfig{TickRate: cfg.Loop.FPS, Seed: resolveSeed(flagSeed, time.Now())}
	logger.Info("starting", "frontend", flagFrontend, "seed", rt.Seed, "fps", rt.TickRate)

	switch flagFrontend {
	case frontendWindow:
		audio := window.NewAudio(pack, logger)
		game := flappy.New(cfg, rt.Seed, audio, logger)
		return window.Run(game, window.Options{Pack: pack, Logger: logger})

	default:
		cols, rows := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cols, rows = w, h
		}
		audio := tui.NewAudio(logger)
		game := flappy.New(cfg, rt.Seed, audio, logger)
		return tui.Run(game, tui.Options{
			Cols:     cols,
			Rows:     rows,
			TickRate: rt.TickRate,
			Pack:     pack,
			Audio:    audio,
			Logger:   logger,
		})
	}
}

// checkFrontend rejects unknown --frontend values.
func checkFrontend(name string) error {
	switch name {
	case frontendTUI, frontendWindow:
		return nil
	}
	return fmt.Errorf("unknown frontend %q (want %s or %s)", name, frontendTUI, frontendWindow)
}

// resolveSeed returns seed, or a time-based one when seed is 0.
func resolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}
