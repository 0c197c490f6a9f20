package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestPipeGapIsBounded(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		p := NewPipe(cfg.Pipes, cfg.Window.Width, cfg.Physics.MoveSpeed, rng)

		if p.Up.Bottom() >= p.Down.Top() {
			t.Fatalf("pipe %d: up.bottom %d must be above down.top %d", i, p.Up.Bottom(), p.Down.Top())
		}
		if gap := p.Down.Top() - p.Up.Bottom(); gap != cfg.Pipes.Gap {
			t.Fatalf("pipe %d: gap = %d, expected %d", i, gap, cfg.Pipes.Gap)
		}
		if p.Down.Top() < cfg.Pipes.GapBottomMin || p.Down.Top() > cfg.Pipes.GapBottomMax {
			t.Fatalf("pipe %d: gap bottom %d outside [%d, %d]", i, p.Down.Top(), cfg.Pipes.GapBottomMin, cfg.Pipes.GapBottomMax)
		}
		if p.Up.X != cfg.Window.Width || p.Down.X != cfg.Window.Width {
			t.Fatalf("pipe %d: should spawn at x=%d, got %d/%d", i, cfg.Window.Width, p.Up.X, p.Down.X)
		}
		if p.Passed {
			t.Fatalf("pipe %d: new pipe must not be passed", i)
		}
	}
}

func TestPipeGapCoversRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.GapBottomMin = 300
	cfg.Pipes.GapBottomMax = 302
	rng := rand.New(rand.NewSource(1))

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		seen[NewPipe(cfg.Pipes, 600, 250, rng).Down.Top()] = true
	}
	for y := 300; y <= 302; y++ {
		if !seen[y] {
			t.Errorf("gap bottom %d never produced", y)
		}
	}
}

func TestPipeUpdateScrollsTogether(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipe(cfg.Pipes, 600, 250, rand.New(rand.NewSource(3)))
	upY, downY := p.Up.Y, p.Down.Y

	p.Update(0.125)

	if p.Up.X != 568 || p.Down.X != 568 {
		t.Errorf("after 0.125s at 250px/s x = %d/%d, expected 568", p.Up.X, p.Down.X)
	}
	if p.Up.Y != upY || p.Down.Y != downY {
		t.Error("pipes must not move vertically")
	}

	// Sub-pixel steps accumulate instead of being truncated away:
	// 4 x 0.48828125px = 1.953125px.
	for i := 0; i < 4; i++ {
		p.Update(1.0 / 512)
	}
	if p.Up.X != 566 {
		t.Errorf("after sub-pixel steps x = %d, expected 566", p.Up.X)
	}
}

func TestPipeDraw(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipe(cfg.Pipes, 600, 250, rand.New(rand.NewSource(3)))
	c := &canvasRecorder{}

	p.Draw(c)

	if len(c.calls) != 2 || c.calls[0].dst != p.Up || c.calls[1].dst != p.Down {
		t.Errorf("Draw() calls = %+v", c.calls)
	}
}
