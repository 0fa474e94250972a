package canvas

import (
	"image"
	"math"

	html5 "github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"
)

// msaa is the software backend's samples per pixel axis for edge smoothing.
const msaa = 4

// Canvas renders into an *image.RGBA through an HTML5-style 2D context.
//
// The image is not owned: callers may swap it with Reset when the surface is
// resized.
type Canvas struct {
	backend *softwarebackend.SoftwareBackend
	ctx     *html5.Canvas
}

// New allocates a w x h canvas.
func New(w, h int) *Canvas {
	return Wrap(image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))))
}

// Wrap draws into img.
func Wrap(img *image.RGBA) *Canvas {
	b := img.Bounds()
	backend := softwarebackend.New(b.Dx(), b.Dy())
	backend.MSAA = msaa
	backend.Image = img
	return &Canvas{backend: backend, ctx: html5.New(backend)}
}

// Reset points the canvas at img, resizing the backend's clip and mask
// buffers when the dimensions changed.
func (c *Canvas) Reset(img *image.RGBA) {
	b := img.Bounds()
	if w, h := c.backend.Size(); w != b.Dx() || h != b.Dy() {
		c.backend.SetSize(b.Dx(), b.Dy())
	}
	c.backend.Image = img
}

func (c *Canvas) Image() *image.RGBA { return c.backend.Image }

func (c *Canvas) Size() (w, h int) {
	if c == nil || c.backend == nil {
		return 0, 0
	}
	return c.backend.Size()
}

func (c *Canvas) Clear(col Color) {
	w, h := c.Size()
	c.ctx.ClearRect(0, 0, float64(w), float64(h))
	c.ctx.SetFillStyle(col.css())
	c.ctx.FillRect(0, 0, float64(w), float64(h))
}

func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	c.ctx.SetFillStyle(col.css())
	c.ctx.FillRect(x, y, w, h)
}

func (c *Canvas) FillCircle(cx, cy, r float64, p Paint) {
	if r <= 0 {
		return
	}
	c.ctx.BeginPath()
	c.ctx.Arc(cx, cy, r, 0, 2*math.Pi, false)
	c.ctx.ClosePath()
	c.ctx.SetFillStyle(c.style(p))
	c.ctx.Fill()
}

// style converts a Paint into a fill style the 2D context understands.
func (c *Canvas) style(p Paint) interface{} {
	switch p := p.(type) {
	case Solid:
		return Color(p).css()
	case *RadialGradient:
		g := c.ctx.CreateRadialGradient(p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1)
		for _, s := range p.stops {
			g.AddColorStop(s.Offset, s.Color.css())
		}
		return g
	}
	return Color{}.css()
}

func (c *Canvas) stroke(width float64, col Color) {
	c.ctx.SetStrokeStyle(col.css())
	c.ctx.SetLineWidth(width)
	c.ctx.Stroke()
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col Color) {
	c.StrokeArc(cx, cy, r, 0, 2*math.Pi, width, col)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	c.ctx.BeginPath()
	c.ctx.MoveTo(x0, y0)
	c.ctx.LineTo(x1, y1)
	c.stroke(width, col)
}

func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, rotation, width float64, col Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c.ctx.BeginPath()
	c.ctx.Ellipse(cx, cy, rx, ry, rotation, 0, 2*math.Pi, false)
	c.ctx.ClosePath()
	c.stroke(width, col)
}

func (c *Canvas) StrokeArc(cx, cy, r, start, end, width float64, col Color) {
	if r <= 0 {
		return
	}
	c.ctx.BeginPath()
	c.ctx.Arc(cx, cy, r, start, end, false)
	c.stroke(width, col)
}
