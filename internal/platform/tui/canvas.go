package tui

import (
	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// halfBlock draws two vertical pixels per cell: FG is the top one, BG the bottom.
const halfBlock = '▀'

// Canvas scales the logical playfield onto a terminal Screen.
// Each cell holds two stacked pixels, so the pixel grid is width × 2·height.
type Canvas struct {
	screen  *core.Screen
	pack    *assets.Pack
	logical core.Rect // logical window, origin at 0,0
}

var _ flappy.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas for a logicalW×logicalH playfield drawn into a
// cols×rows terminal.
func NewCanvas(pack *assets.Pack, logicalW, logicalH, cols, rows int) *Canvas {
	return &Canvas{
		screen:  core.NewScreen(cols, rows),
		pack:    pack,
		logical: core.NewRect(0, 0, logicalW, logicalH),
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Resize changes the terminal size.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Clear blanks the buffer before a new frame.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// pixelW and pixelH return the size of the terminal pixel grid.
func (c *Canvas) pixelW() int { return c.screen.Width() }
func (c *Canvas) pixelH() int { return c.screen.Height() * 2 }

// toPixel maps a logical coordinate to the terminal pixel grid.
func (c *Canvas) toPixel(x, y int) (int, int) {
	return floorDiv(x*c.pixelW(), c.logical.W), floorDiv(y*c.pixelH(), c.logical.H)
}

// DrawSprite implements flappy.Canvas.
func (c *Canvas) DrawSprite(id assets.SpriteID, dst core.Rect) {
	s := c.pack.Sprite(id)
	if s == nil || dst.W <= 0 || dst.H <= 0 || c.pixelW() == 0 || c.pixelH() == 0 {
		return
	}

	x0, y0 := c.toPixel(dst.Left(), dst.Top())
	x1, y1 := c.toPixel(dst.Right(), dst.Bottom())
	x0, x1 = core.Max(x0, 0), core.Min(x1, c.pixelW())
	y0, y1 = core.Max(y0, 0), core.Min(y1, c.pixelH())

	for py := y0; py < y1; py++ {
		// Logical y at the pixel's center, relative to dst.
		ly := floorDiv((2*py+1)*c.logical.H, 2*c.pixelH()) - dst.Y
		if ly < 0 || ly >= dst.H {
			continue
		}
		for px := x0; px < x1; px++ {
			lx := floorDiv((2*px+1)*c.logical.W, 2*c.pixelW()) - dst.X
			if lx < 0 || lx >= dst.W {
				continue
			}
			if col := s.Sample(lx, ly, dst.W, dst.H); col != core.ColorNone {
				c.setPixel(px, py, col)
			}
		}
	}
}

// setPixel paints one half of a cell.
func (c *Canvas) setPixel(px, py int, col core.Color) {
	cell := c.screen.Get(px, py/2)
	if cell.Rune != halfBlock {
		cell = core.Cell{Rune: halfBlock, FG: cell.BG, BG: cell.BG}
	}
	if py%2 == 0 {
		cell.FG = col
	} else {
		cell.BG = col
	}
	c.screen.Set(px, py/2, cell)
}

// DrawText implements flappy.Canvas. Text keeps the background underneath.
// Every size class renders at one cell per character.
func (c *Canvas) DrawText(text string, cx, cy int, style flappy.TextStyle) {
	px, py := c.toPixel(cx, cy)
	c.screen.DrawTextCentered(px, py/2, text, style.Color)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
