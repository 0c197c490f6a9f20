package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a window session.
type Options struct {
	Pack   *assets.Pack
	Logger *log.Logger
}

// runner adapts a flappy.Game to ebiten.Game.
type runner struct {
	game   *flappy.Game
	canvas *Canvas
	input  core.InputFrame
	logger *log.Logger
	width  int
	height int
}

var _ ebiten.Game = (*runner)(nil)

func newRunner(game *flappy.Game, canvas *Canvas, logger *log.Logger) *runner {
	w := game.Config().Window
	return &runner{
		game:   game,
		canvas: canvas,
		input:  core.NewInputFrame(),
		logger: logger,
		width:  w.Width,
		height: w.Height,
	}
}

// Update runs one frame at the fixed tick rate.
func (r *runner) Update() error {
	pollInput(&r.input)
	defer r.input.Clear()

	if r.input.Has(core.ActionQuit) {
		r.logger.Info("quit", "score", r.game.Score())
		return ebiten.Termination
	}

	r.game.Step(r.input, frameDelta(ebiten.TPS()))
	return nil
}

// Draw renders the current frame.
func (r *runner) Draw(screen *ebiten.Image) {
	r.canvas.target(screen)
	r.game.Draw(r.canvas)
}

// Layout keeps the logical resolution fixed; Ebitengine scales it to the window.
func (r *runner) Layout(_, _ int) (int, int) {
	return r.width, r.height
}

// frameDelta returns the seconds per tick.
func frameDelta(tps int) float64 {
	if tps <= 0 {
		return 0
	}
	return 1 / float64(tps)
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	canvas, err := NewCanvas(opts.Pack)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	canvas.preload()

	cfg := game.Config()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Loop.FPS)
	ebiten.SetWindowClosingHandled(true)

	opts.Logger.Info("window opened", "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height), "tps", cfg.Loop.FPS)
	if err := ebiten.RunGame(newRunner(game, canvas, opts.Logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
