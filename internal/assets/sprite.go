package assets

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// transparent is the palette key for an empty pixel.
const transparent = "."

// spriteDef is the on-disk sprite format.
type spriteDef struct {
	Palette map[string]string `yaml:"palette"`
	Rows    []string          `yaml:"rows"`
}

// Sprite is a small pixel map. Frontends stretch it over a destination
// rectangle with nearest-neighbour sampling.
type Sprite struct {
	width  int
	height int
	pixels []core.Color // row-major, ColorNone = transparent
}

// build validates the definition and resolves palette keys to colours.
func (d spriteDef) build() (*Sprite, error) {
	if len(d.Rows) == 0 {
		return nil, errors.New("no rows")
	}

	palette := make(map[rune]core.Color, len(d.Palette))
	for key, hex := range d.Palette {
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) || key == transparent {
			return nil, fmt.Errorf("palette key %q must be a single non-%q character", key, transparent)
		}
		c, err := core.ParseColor(hex)
		if err != nil {
			return nil, err
		}
		palette[r] = c
	}

	width := utf8.RuneCountInString(d.Rows[0])
	if width == 0 {
		return nil, errors.New("empty first row")
	}

	s := &Sprite{
		width:  width,
		height: len(d.Rows),
		pixels: make([]core.Color, 0, width*len(d.Rows)),
	}
	for y, row := range d.Rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("row %d has %d pixels, expected %d", y, n, width)
		}
		for _, r := range row {
			if string(r) == transparent {
				s.pixels = append(s.pixels, core.ColorNone)
				continue
			}
			c, ok := palette[r]
			if !ok {
				return nil, fmt.Errorf("row %d uses %q which is not in the palette", y, r)
			}
			s.pixels = append(s.pixels, c)
		}
	}
	return s, nil
}

// Width returns the art width in pixels.
func (s *Sprite) Width() int { return s.width }

// Height returns the art height in pixels.
func (s *Sprite) Height() int { return s.height }

// At returns the colour at (x, y); out-of-range pixels are transparent.
func (s *Sprite) At(x, y int) core.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return core.ColorNone
	}
	return s.pixels[y*s.width+x]
}

// Sample maps a point inside a dstW×dstH destination onto the art and
// returns the nearest pixel.
func (s *Sprite) Sample(dx, dy, dstW, dstH int) core.Color {
	if dstW <= 0 || dstH <= 0 {
		return core.ColorNone
	}
	return s.At(dx*s.width/dstW, dy*s.height/dstH)
}

// FlipV returns a vertically mirrored copy.
func (s *Sprite) FlipV() *Sprite {
	out := &Sprite{
		width:  s.width,
		height: s.height,
		pixels: make([]core.Color, len(s.pixels)),
	}
	for y := 0; y < s.height; y++ {
		copy(out.pixels[y*s.width:(y+1)*s.width], s.pixels[(s.height-1-y)*s.width:(s.height-y)*s.width])
	}
	return out
}
