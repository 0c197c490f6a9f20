package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// keyBindings maps keyboard keys to game actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyEnter:       core.ActionConfirm,
	ebiten.KeyNumpadEnter: core.ActionConfirm,
	ebiten.KeySpace:       core.ActionFlap,
	ebiten.KeyEscape:      core.ActionQuit,
}

// pollInput records the actions whose keys went down this tick.
func pollInput(frame *core.InputFrame) {
	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			frame.Set(action)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		frame.Set(core.ActionQuit)
	}
}
