package components

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color independent of any draw backend.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Black = Color{R: 0, G: 0, B: 0, A: 255}
)

// RGBA builds a color with a fractional alpha in [0,1].
func RGBA(r, g, b uint8, alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return Color{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// ParseHex parses "#rgb" or "#rrggbb" (the "#" is optional) into an opaque color.
func ParseHex(s string) (Color, error) {
	hex := "#" + strings.TrimPrefix(s, "#")
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("parsing color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}

// MustParseHex is like ParseHex but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
