package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Canvas is the drawing surface a frontend hands to Game.Draw.
// Coordinates are logical window pixels.
type Canvas interface {
	// DrawSprite stretches a sprite over dst.
	DrawSprite(id assets.SpriteID, dst core.Rect)
	// DrawText draws a single line centered on (cx, cy).
	DrawText(text string, cx, cy int, style TextStyle)
}

// Audio plays one-shot sound cues. Play must not block.
type Audio interface {
	Play(s assets.Sound)
}

// TextSize is a coarse font size class; frontends pick concrete sizes.
type TextSize int

const (
	TextLarge  TextSize = iota // score, banners
	TextMedium                 // hints
)

// TextStyle describes how a line of text is drawn.
type TextStyle struct {
	Size  TextSize
	Color core.Color
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements Audio.
func (NopAudio) Play(assets.Sound) {}
