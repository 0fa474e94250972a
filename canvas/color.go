package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) WithAlpha(a uint8) Color { c.A = a; return c }

func (c Color) std() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// css formats c as a 2D context style string.
func (c Color) css() string {
	if c.A == 0xFF {
		return c.colorful().Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

var (
	Black  = RGB(0x00, 0x00, 0x00)
	White  = RGB(0xFF, 0xFF, 0xFF)
	Yellow = RGB(0xFF, 0xFF, 0x00)
)

var named = map[string]Color{
	"black":  Black,
	"white":  White,
	"yellow": Yellow,
}

// ParseColor accepts "#rrggbb" or one of a few CSS color names.
func ParseColor(s string) (Color, error) {
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b), nil
}

// MustColor is ParseColor for compile-time constants. It panics on bad input.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
