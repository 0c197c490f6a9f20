package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// It must stay in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Window: WindowConfig{
			Width:  600,
			Height: 768,
			Title:  "Flappy Bird",
		},
		Loop: LoopConfig{
			FPS:           60,
			MaxFrameDelta: 0.1,
		},
		Physics: PhysicsConfig{
			Gravity:      600,
			FlapVelocity: -250,
			MoveSpeed:    250,
		},
		Bird: BirdConfig{
			StartX:     100,
			StartY:     100,
			Width:      51,
			Height:     36,
			AnimFrames: 5,
		},
		Pipes: PipeConfig{
			Width:         78,
			Height:        480,
			Gap:           200,
			GapBottomMin:  250,
			GapBottomMax:  520,
			SpawnInterval: 71,
		},
		Ground: GroundConfig{
			Y:          568,
			TileWidth:  504,
			TileHeight: 168,
		},
		Background: BackgroundConfig{
			X:      0,
			Y:      -300,
			Width:  600,
			Height: 1068,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
