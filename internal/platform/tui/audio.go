package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// cueFrames is how long a sound cue stays visible, in frames.
const cueFrames = 20

// cueLabels are the on-screen captions terminals show instead of sound.
var cueLabels = map[assets.Sound]string{
	assets.SoundFlap:  "♪ flap",
	assets.SoundScore: "♪ score!",
	assets.SoundDead:  "♪ thud",
}

// Audio stands in for a sound device: a terminal cannot mix audio, so each
// cue is logged and shown as a short caption in the corner of the screen.
type Audio struct {
	logger *log.Logger
	label  string
	ttl    int
}

var _ flappy.Audio = (*Audio)(nil)

// NewAudio creates a caption-based audio sink.
func NewAudio(logger *log.Logger) *Audio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Audio{logger: logger}
}

// Play implements flappy.Audio.
func (a *Audio) Play(s assets.Sound) {
	label, ok := cueLabels[s]
	if !ok {
		return
	}
	a.label = label
	a.ttl = cueFrames
	a.logger.Debug("sound", "cue", s)
}

// tick ages the current caption by one frame.
func (a *Audio) tick() {
	if a.ttl > 0 {
		a.ttl--
	}
}

// draw renders the active caption in the top-right corner.
func (a *Audio) draw(s *core.Screen) {
	if a.ttl == 0 {
		return
	}
	x := s.Width() - len([]rune(a.label)) - 1
	s.DrawText(x, 0, a.label, core.ColorWhite)
}
