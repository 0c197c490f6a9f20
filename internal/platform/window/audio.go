package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// SampleRate is the mixer rate the tones are rendered at.
const SampleRate = 44100

// Audio plays synthesized cues through the Ebitengine mixer.
type Audio struct {
	players map[assets.Sound]*audio.Player
	logger  *log.Logger
}

var _ flappy.Audio = (*Audio)(nil)

// NewAudio renders every tone in pack and prepares one player per cue.
// Only one audio context may exist per process.
func NewAudio(pack *assets.Pack, logger *log.Logger) *Audio {
	ctx := audio.NewContext(SampleRate)
	a := &Audio{
		players: make(map[assets.Sound]*audio.Player, len(assets.Sounds)),
		logger:  logger,
	}
	for _, s := range assets.Sounds {
		tone, ok := pack.Tone(s)
		if !ok {
			continue
		}
		a.players[s] = ctx.NewPlayerFromBytes(tone.PCM(SampleRate))
	}
	return a
}

// Play implements flappy.Audio. A cue that is still playing restarts.
func (a *Audio) Play(s assets.Sound) {
	p, ok := a.players[s]
	if !ok {
		return
	}
	if err := p.SetPosition(0); err != nil {
		a.logger.Warn("rewind failed", "cue", s, "error", err)
		return
	}
	p.Play()
}
