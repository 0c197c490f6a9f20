package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player sprite. It owns its position and vertical velocity.
// Physics only runs while UpdateOn is set; otherwise the bird is frozen.
type Bird struct {
	X, Y     float64 // top-left corner in pixels
	Velocity float64 // px/s, positive = down
	UpdateOn bool

	rect        core.Rect
	wingDown    bool
	animCounter int

	cfg  config.BirdConfig
	phys config.PhysicsConfig
}

// NewBird creates a bird at its start position with physics disabled.
func NewBird(cfg config.BirdConfig, phys config.PhysicsConfig) *Bird {
	b := &Bird{cfg: cfg, phys: phys}
	b.Reset()
	return b
}

// Reset moves the bird back to its start point and stops it.
// UpdateOn is left to the caller.
func (b *Bird) Reset() {
	start := core.RectAtCenter(b.cfg.StartX, b.cfg.StartY, b.cfg.Width, b.cfg.Height)
	b.X = float64(start.X)
	b.Y = float64(start.Y)
	b.Velocity = 0
	b.wingDown = false
	b.animCounter = 0
	b.updateRect()
}

// Flap replaces the vertical velocity with the upward flap impulse.
// It does not depend on frame time.
func (b *Bird) Flap() {
	b.Velocity = b.phys.FlapVelocity
}

// Update integrates gravity over dt seconds.
func (b *Bird) Update(dt float64) {
	if !b.UpdateOn {
		return
	}

	b.animate()

	b.Velocity += b.phys.Gravity * dt
	b.Y += b.Velocity * dt

	// Ceiling: pin to the top edge and kill upward motion.
	if b.Y <= 0 {
		b.Y = 0
		if b.Velocity < 0 {
			b.Velocity = 0
		}
	}

	b.updateRect()
}

// animate flips the wing frame every AnimFrames updates.
func (b *Bird) animate() {
	b.animCounter++
	if b.animCounter >= b.cfg.AnimFrames {
		b.wingDown = !b.wingDown
		b.animCounter = 0
	}
}

func (b *Bird) updateRect() {
	b.rect = core.NewRect(int(math.Floor(b.X)), int(math.Floor(b.Y)), b.cfg.Width, b.cfg.Height)
}

// Rect returns the bounding rectangle as of the last update.
func (b *Bird) Rect() core.Rect {
	return b.rect
}

// Sprite returns the current animation frame.
func (b *Bird) Sprite() assets.SpriteID {
	if b.wingDown {
		return assets.SpriteBirdDown
	}
	return assets.SpriteBirdUp
}

// Draw renders the bird.
func (b *Bird) Draw(c Canvas) {
	c.DrawSprite(b.Sprite(), b.rect)
}
