// Package config provides YAML-based configuration loading for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tunable values of the game.
// The embedded defaults reproduce the classic tuning exactly.
type FlappyConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Loop       LoopConfig       `yaml:"loop"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipeConfig       `yaml:"pipes"`
	Ground     GroundConfig     `yaml:"ground"`
	Background BackgroundConfig `yaml:"background"`
}

// WindowConfig defines the logical playfield.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	FPS           int     `yaml:"fps"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // seconds; longer frames are clamped
}

// PhysicsConfig defines speeds and accelerations in pixels and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // px/s²
	FlapVelocity float64 `yaml:"flap_velocity"` // px/s, negative = up
	MoveSpeed    float64 `yaml:"move_speed"`    // px/s, ground and pipe scroll
}

// BirdConfig defines the bird sprite and its spawn point.
type BirdConfig struct {
	StartX     int `yaml:"start_x"` // center
	StartY     int `yaml:"start_y"` // center
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	AnimFrames int `yaml:"anim_frames"` // updates per wing frame
}

// PipeConfig defines obstacle geometry and spawn cadence.
type PipeConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"` // height of one segment sprite
	Gap           int `yaml:"gap"`
	GapBottomMin  int `yaml:"gap_bottom_min"`
	GapBottomMax  int `yaml:"gap_bottom_max"`
	SpawnInterval int `yaml:"spawn_interval"` // frames between spawns
}

// GroundConfig defines the looping ground strip.
type GroundConfig struct {
	Y          int `yaml:"y"` // ground line; the bird dies below it
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
}

// BackgroundConfig defines where the backdrop is drawn.
type BackgroundConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Loop.FPS > 0, "loop.fps %d must be positive", c.Loop.FPS)
	check(c.Loop.MaxFrameDelta > 0, "loop.max_frame_delta %v must be positive", c.Loop.MaxFrameDelta)
	check(c.Physics.Gravity > 0, "physics.gravity %v must be positive", c.Physics.Gravity)
	check(c.Physics.FlapVelocity < 0, "physics.flap_velocity %v must be negative (upward)", c.Physics.FlapVelocity)
	check(c.Physics.MoveSpeed > 0, "physics.move_speed %v must be positive", c.Physics.MoveSpeed)
	check(c.Bird.Width > 0 && c.Bird.Height > 0, "bird size %dx%d must be positive", c.Bird.Width, c.Bird.Height)
	check(c.Bird.AnimFrames > 0, "bird.anim_frames %d must be positive", c.Bird.AnimFrames)
	check(c.Pipes.Width > 0 && c.Pipes.Height > 0, "pipe size %dx%d must be positive", c.Pipes.Width, c.Pipes.Height)
	check(c.Pipes.Gap > 0, "pipes.gap %d must be positive", c.Pipes.Gap)
	check(c.Pipes.GapBottomMin <= c.Pipes.GapBottomMax, "pipes.gap_bottom_min %d exceeds gap_bottom_max %d", c.Pipes.GapBottomMin, c.Pipes.GapBottomMax)
	check(c.Pipes.GapBottomMin-c.Pipes.Gap >= 0, "pipes.gap %d does not fit above gap_bottom_min %d", c.Pipes.Gap, c.Pipes.GapBottomMin)
	check(c.Pipes.SpawnInterval > 0, "pipes.spawn_interval %d must be positive", c.Pipes.SpawnInterval)
	check(c.Ground.Y > 0 && c.Ground.Y < c.Window.Height, "ground.y %d must lie inside the window", c.Ground.Y)
	check(c.Ground.TileWidth > 0 && c.Ground.TileHeight > 0, "ground tile size %dx%d must be positive", c.Ground.TileWidth, c.Ground.TileHeight)
	check(2*c.Ground.TileWidth >= c.Window.Width, "two ground tiles (%d px each) cannot cover the window width %d", c.Ground.TileWidth, c.Window.Width)

	return errors.Join(errs...)
}
