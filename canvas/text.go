package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the bitmap font used for labels and the HUD.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// FontHeight is the line height of Font in pixels.
const FontHeight = 8

// TextWidth returns the advance width of s in Font.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int(outbox)
}

func (c *Canvas) Text(x, y float64, s string, col Color) {
	if c == nil || c.backend == nil || s == "" {
		return
	}
	tinyfont.WriteLine(c.Displayer(), Font, int16(x), int16(y), s, col.std())
}

// Displayer adapts the canvas to drivers.Displayer so tinyfont (and anything
// else written against tinygo drivers) can draw into it.
func (c *Canvas) Displayer() drivers.Displayer { return &displayer{c: c} }

type displayer struct {
	c *Canvas
}

func (d *displayer) Size() (x, y int16) {
	w, h := d.c.Size()
	return int16(min(w, 0x7FFF)), int16(min(h, 0x7FFF))
}

// SetPixel composites c over the pixel; tinyfont hands over straight alpha.
func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	img := d.c.Image()
	p := image.Pt(int(x), int(y))
	if !p.In(img.Bounds()) {
		return
	}
	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	draw.Draw(img, image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))}, src, image.Point{}, draw.Over)
}

func (d *displayer) Display() error { return nil }
