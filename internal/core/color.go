package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a "#rrggbb" hex colour shared by the terminal and window frontends.
// The zero value means "no colour" (transparent / terminal default).
type Color string

// ColorNone marks a transparent pixel or an unstyled cell.
const ColorNone Color = ""

// Frequently used text colours.
const (
	ColorWhite     Color = "#ffffff"
	ColorRed       Color = "#ff0000"
	ColorLightGray Color = "#c8c8c8"
)

// ParseColor validates a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return ColorNone, fmt.Errorf("core: invalid colour %q: want #rrggbb", s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return ColorNone, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return Color(strings.ToLower(s)), nil
}

// RGBA converts the colour to an opaque color.RGBA.
// ColorNone converts to fully transparent black.
func (c Color) RGBA() color.RGBA {
	if c == ColorNone || len(c) != 7 {
		return color.RGBA{}
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
