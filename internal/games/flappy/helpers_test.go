package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const frame = 1.0 / 60.0

// audioRecorder counts the cues the game plays.
type audioRecorder struct {
	played []assets.Sound
}

func (a *audioRecorder) Play(s assets.Sound) {
	a.played = append(a.played, s)
}

func (a *audioRecorder) count(s assets.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

// drawCall is one recorded Canvas operation.
type drawCall struct {
	sprite assets.SpriteID
	dst    core.Rect
	text   string
	style  TextStyle
}

// canvasRecorder records draw calls in order.
type canvasRecorder struct {
	calls []drawCall
}

func (c *canvasRecorder) DrawSprite(id assets.SpriteID, dst core.Rect) {
	c.calls = append(c.calls, drawCall{sprite: id, dst: dst})
}

func (c *canvasRecorder) DrawText(text string, cx, cy int, style TextStyle) {
	c.calls = append(c.calls, drawCall{text: text, dst: core.NewRect(cx, cy, 0, 0), style: style})
}

func (c *canvasRecorder) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.text != "" {
			out = append(out, call.text)
		}
	}
	return out
}

// newTestGame returns a game with default tuning and a recording audio sink.
func newTestGame(seed int64) (*Game, *audioRecorder) {
	audio := &audioRecorder{}
	return New(config.DefaultFlappyConfig(), seed, audio, nil), audio
}

// input builds an input frame holding the given actions.
func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// placeBird moves the bird so its top edge is at y.
func placeBird(g *Game, y float64) {
	g.bird.Y = y
	g.bird.updateRect()
}
