// Package flappy implements a Flappy Bird-style game.
// The player keeps a bird airborne and steers it through gaps in scrolling
// pipes. Rendering, audio and input belong to the frontend; the game only
// talks to them through Canvas, Audio and core.InputFrame.
package flappy

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Mode is the game's top-level state.
type Mode int

const (
	ModeIdle     Mode = iota // waiting for Enter, nothing moves
	ModePlaying              // round in progress
	ModeGameOver             // round ended, waiting for Enter to restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// groundTile is one of the two strips that together form the looping ground.
type groundTile struct {
	x float64
}

// Game owns the bird, the live pipes, the ground and the score.
type Game struct {
	cfg    config.FlappyConfig
	bird   *Bird
	pipes  []*Pipe // spawn order == left-to-right; pipes[0] is next to score/collide
	ground [2]groundTile

	score        int
	spawnCounter int
	mode         Mode

	rng    *rand.Rand
	audio  Audio
	logger *log.Logger
}

// New creates a game in idle mode.
// A nil audio discards cues; a nil logger discards log output.
func New(cfg config.FlappyConfig, seed int64, audio Audio, logger *log.Logger) *Game {
	if audio == nil {
		audio = NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    cfg,
		bird:   NewBird(cfg.Bird, cfg.Physics),
		pipes:  make([]*Pipe, 0, 4),
		rng:    rand.New(rand.NewSource(seed)),
		audio:  audio,
		logger: logger,
	}
	g.resetWorld()
	return g
}

// resetWorld puts score, pipes, bird and ground back to their initial values.
func (g *Game) resetWorld() {
	g.score = 0
	g.pipes = g.pipes[:0]
	g.spawnCounter = g.cfg.Pipes.SpawnInterval // first pipe appears on the first playing frame
	g.bird.Reset()
	g.ground[0].x = 0
	g.ground[1].x = float64(g.cfg.Ground.TileWidth)
}

// Reset restarts the round and arms it as playing.
func (g *Game) Reset() {
	g.resetWorld()
	g.bird.UpdateOn = true
	g.mode = ModePlaying
	g.logger.Debug("round restarted")
}

// Step runs one frame: input, update, collision checks.
func (g *Game) Step(in core.InputFrame, dt float64) {
	g.HandleInput(in)
	g.Update(dt)
	g.CheckCollisions()
}

// HandleInput applies this frame's actions.
// Confirm starts the round from idle or restarts it after game over;
// Flap only has an effect while playing.
func (g *Game) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionConfirm) {
		switch g.mode {
		case ModeGameOver:
			g.Reset()
		case ModeIdle:
			g.mode = ModePlaying
			g.bird.UpdateOn = true
			g.logger.Debug("round started")
		}
	}

	if in.Has(core.ActionFlap) && g.mode == ModePlaying {
		g.bird.Flap()
		g.audio.Play(assets.SoundFlap)
	}
}

// Update advances the world by dt seconds. Scrolling, spawning and scoring
// only happen while playing; the bird is updated in every mode but is
// frozen unless its physics are enabled.
func (g *Game) Update(dt float64) {
	dt = core.ClampF(dt, 0, g.cfg.Loop.MaxFrameDelta)

	if g.mode == ModePlaying {
		g.scrollGround(g.cfg.Physics.MoveSpeed * dt)
		g.spawnPipes()
		g.updatePipes(dt)
		g.evictPipe()
	}

	g.bird.Update(dt)
}

// scrollGround moves both tiles left and wraps a tile that left the screen
// to the right of the other one.
func (g *Game) scrollGround(dx float64) {
	w := float64(g.cfg.Ground.TileWidth)
	for i := range g.ground {
		g.ground[i].x -= dx
	}
	for i := range g.ground {
		if g.ground[i].x+w < 0 {
			g.ground[i].x = g.ground[1-i].x + w
		}
	}
}

// spawnPipes appends a pipe once the frame counter reaches the spawn interval.
// With constant speed this keeps consecutive pipes a fixed distance apart.
func (g *Game) spawnPipes() {
	if g.spawnCounter >= g.cfg.Pipes.SpawnInterval {
		p := NewPipe(g.cfg.Pipes, g.cfg.Window.Width, g.cfg.Physics.MoveSpeed, g.rng)
		g.pipes = append(g.pipes, p)
		g.spawnCounter = 0
		g.logger.Debug("pipe spawned", "gap_top", p.Up.Bottom(), "gap_bottom", p.Down.Top(), "live", len(g.pipes))
	}
	g.spawnCounter++
}

// updatePipes scrolls every pipe and scores the ones the bird has cleared.
func (g *Game) updatePipes(dt float64) {
	birdLeft := g.bird.Rect().Left()
	for _, p := range g.pipes {
		p.Update(dt)
		if !p.Passed && p.Right() < birdLeft {
			p.Passed = true
			g.score++
			g.audio.Play(assets.SoundScore)
			g.logger.Debug("pipe passed", "score", g.score)
		}
	}
}

// evictPipe drops the head pipe once it has fully left the screen.
// One per frame is enough: pipes are spawned far apart.
func (g *Game) evictPipe() {
	if len(g.pipes) > 0 && g.pipes[0].Right() < 0 {
		g.pipes = slices.Delete(g.pipes, 0, 1)
	}
}

// CheckCollisions ends the round if the bird hit the ground or the head pipe.
// Only the head pipe is tested: pipes are ordered left to right and spaced
// wider than the bird, so the bird can only ever touch the nearest one.
func (g *Game) CheckCollisions() {
	if g.mode != ModePlaying {
		return
	}

	r := g.bird.Rect()
	if r.Bottom() > g.cfg.Ground.Y {
		g.endGame("ground")
		return
	}
	if len(g.pipes) > 0 && g.pipes[0].Collides(r) {
		g.endGame("pipe")
	}
}

// endGame freezes the world and plays the death cue once.
func (g *Game) endGame(cause string) {
	if g.mode != ModePlaying {
		return
	}
	g.bird.UpdateOn = false
	g.mode = ModeGameOver
	g.audio.Play(assets.SoundDead)
	g.logger.Info("game over", "cause", cause, "score", g.score)
}

// Draw renders the frame back to front.
func (g *Game) Draw(c Canvas) {
	bg := g.cfg.Background
	c.DrawSprite(assets.SpriteBackground, core.NewRect(bg.X, bg.Y, bg.Width, bg.Height))

	for _, p := range g.pipes {
		p.Draw(c)
	}
	for _, r := range g.GroundRects() {
		c.DrawSprite(assets.SpriteGround, r)
	}
	g.bird.Draw(c)

	cx := g.cfg.Window.Width / 2
	cy := g.cfg.Window.Height / 2
	c.DrawText(fmt.Sprint(g.score), cx, 50, TextStyle{Size: TextLarge, Color: core.ColorWhite})

	switch g.mode {
	case ModeIdle:
		c.DrawText("Press Enter to Start", cx, cy-50, TextStyle{Size: TextMedium, Color: core.ColorWhite})
	case ModeGameOver:
		c.DrawText("Game Over", cx, cy-50, TextStyle{Size: TextLarge, Color: core.ColorRed})
		c.DrawText(fmt.Sprintf("Your Score: %d", g.score), cx, cy+10, TextStyle{Size: TextLarge, Color: core.ColorWhite})
		c.DrawText("Press Enter to Restart", cx, cy+60, TextStyle{Size: TextMedium, Color: core.ColorLightGray})
	}
}

// GroundRects returns the two ground tiles' rectangles.
func (g *Game) GroundRects() [2]core.Rect {
	var out [2]core.Rect
	for i, t := range g.ground {
		out[i] = core.NewRect(int(math.Floor(t.x)), g.cfg.Ground.Y, g.cfg.Ground.TileWidth, g.cfg.Ground.TileHeight)
	}
	return out
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of pipes passed this round.
func (g *Game) Score() int {
	return g.score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Playing:  g.mode == ModePlaying,
		GameOver: g.mode == ModeGameOver,
	}
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
