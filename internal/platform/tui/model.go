package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a terminal session.
type Options struct {
	Cols, Rows int // initial terminal size
	TickRate   int
	Pack       *assets.Pack
	Audio      *Audio
	Logger     *log.Logger
}

// Model is the Bubble Tea model that drives the game loop.
type Model struct {
	game       *flappy.Game
	canvas     *Canvas
	renderer   *Renderer
	audio      *Audio
	keys       *KeyMapper
	logger     *log.Logger
	inputFrame core.InputFrame
	tickRate   int
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *flappy.Game, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Audio == nil {
		opts.Audio = NewAudio(opts.Logger)
	}

	window := game.Config().Window
	return Model{
		game:       game,
		canvas:     NewCanvas(opts.Pack, window.Width, window.Height, opts.Cols, opts.Rows),
		renderer:   NewRenderer(),
		audio:      opts.Audio,
		keys:       NewKeyMapper(),
		logger:     opts.Logger,
		inputFrame: core.NewInputFrame(),
		tickRate:   opts.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key's action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		st := m.game.State()
		m.logger.Info("quit", "score", st.Score, "game_over", st.GameOver)
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one frame with the wall time elapsed since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.tickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()
	m.audio.tick()

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the game and the sound caption into the screen buffer.
func (m Model) draw() {
	m.canvas.Clear()
	m.game.Draw(m.canvas)
	m.audio.draw(m.canvas.Screen())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return m.renderer.Render(m.canvas.Screen())
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *flappy.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
