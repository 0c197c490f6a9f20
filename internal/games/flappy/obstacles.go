package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is a pair of obstacles sharing one x position with a gap between them.
// Up is the upper segment ending at the top of the gap; Down is the lower
// segment starting at the bottom of the gap.
type Pipe struct {
	Up     core.Rect
	Down   core.Rect
	Speed  float64 // px/s leftward
	Passed bool    // set once when the bird clears the pipe

	x float64
}

// NewPipe spawns a pipe at the right edge of the screen with a random gap.
// The bottom of the gap is drawn uniformly from [GapBottomMin, GapBottomMax].
func NewPipe(cfg config.PipeConfig, screenW int, speed float64, rng *rand.Rand) *Pipe {
	gapBottom := cfg.GapBottomMin
	if span := cfg.GapBottomMax - cfg.GapBottomMin; span > 0 {
		gapBottom += rng.Intn(span + 1)
	}
	gapTop := gapBottom - cfg.Gap

	p := &Pipe{
		Up:    core.NewRect(screenW, gapTop-cfg.Height, cfg.Width, cfg.Height),
		Down:  core.NewRect(screenW, gapBottom, cfg.Width, cfg.Height),
		Speed: speed,
		x:     float64(screenW),
	}
	return p
}

// Update scrolls both segments left by Speed*dt.
func (p *Pipe) Update(dt float64) {
	p.x -= p.Speed * dt
	x := int(math.Floor(p.x))
	p.Up.X = x
	p.Down.X = x
}

// Right returns the x-coordinate of the pipe's right edge.
func (p *Pipe) Right() int {
	return p.Up.Right()
}

// Collides reports whether r overlaps either segment.
func (p *Pipe) Collides(r core.Rect) bool {
	return r.Intersects(p.Up) || r.Intersects(p.Down)
}

// Draw renders both segments.
func (p *Pipe) Draw(c Canvas) {
	c.DrawSprite(assets.SpritePipeTop, p.Up)
	c.DrawSprite(assets.SpritePipe, p.Down)
}
