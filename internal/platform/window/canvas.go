// Package window runs the game in a desktop window through Ebitengine.
package window

import (
	"bytes"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Font sizes in logical pixels.
var textSizes = map[flappy.TextSize]float64{
	flappy.TextLarge:  48,
	flappy.TextMedium: 32,
}

// Canvas draws sprites and text onto an Ebitengine frame.
type Canvas struct {
	pack   *assets.Pack
	images map[assets.SpriteID]*ebiten.Image
	font   *text.GoTextFaceSource
	dst    *ebiten.Image
}

var _ flappy.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas that renders sprites from pack.
func NewCanvas(pack *assets.Pack) (*Canvas, error) {
	font, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Canvas{
		pack:   pack,
		images: make(map[assets.SpriteID]*ebiten.Image),
		font:   font,
	}, nil
}

// preload uploads every sprite in the pack.
func (c *Canvas) preload() {
	for _, id := range c.pack.SpriteIDs() {
		c.image(id)
	}
}

// target sets the image the next draw calls render into.
func (c *Canvas) target(dst *ebiten.Image) {
	c.dst = dst
}

// image returns the GPU image for a sprite, uploading it on first use.
func (c *Canvas) image(id assets.SpriteID) *ebiten.Image {
	if img, ok := c.images[id]; ok {
		return img
	}
	s := c.pack.Sprite(id)
	if s == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(spriteRGBA(s))
	c.images[id] = img
	return img
}

// DrawSprite implements flappy.Canvas.
func (c *Canvas) DrawSprite(id assets.SpriteID, dst core.Rect) {
	img := c.image(id)
	if img == nil || c.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{GeoM: spriteGeoM(img.Bounds().Dx(), img.Bounds().Dy(), dst)}
	c.dst.DrawImage(img, op)
}

// DrawText implements flappy.Canvas. Text is centered on (cx, cy).
func (c *Canvas) DrawText(s string, cx, cy int, style flappy.TextStyle) {
	if c.dst == nil {
		return
	}
	size, ok := textSizes[style.Size]
	if !ok {
		size = textSizes[flappy.TextMedium]
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.ColorScale.ScaleWithColor(style.Color.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, &text.GoTextFace{Source: c.font, Size: size}, op)
}

// spriteRGBA converts pixel art to an image; transparent pixels stay clear.
func spriteRGBA(s *assets.Sprite) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	for y := range s.Height() {
		for x := range s.Width() {
			if col := s.At(x, y); col != core.ColorNone {
				img.SetRGBA(x, y, col.RGBA())
			}
		}
	}
	return img
}

// spriteGeoM stretches a w×h image over dst.
func spriteGeoM(w, h int, dst core.Rect) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(float64(dst.W)/float64(w), float64(dst.H)/float64(h))
	m.Translate(float64(dst.X), float64(dst.Y))
	return m
}
