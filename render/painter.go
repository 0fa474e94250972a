// Package render paints a world.World onto a canvas.Surface.
package render

import (
	"orrery/canvas"
	"orrery/world"
)

// Options toggles optional scene decorations.
type Options struct {
	Labels bool // planet names under each body
}

// Painter draws one frame of the scene. It reads the world and never
// modifies it; its random source only feeds cosmetic overlays.
type Painter struct {
	rng  world.Rand
	opts Options
}

func NewPainter(rng world.Rand, opts Options) *Painter {
	return &Painter{rng: rng, opts: opts}
}

func (p *Painter) SetLabels(on bool) { p.opts.Labels = on }

// Draw paints the background, starfield, sun, planets (with overlays and
// moons) and the asteroid belt, in that order.
func (p *Painter) Draw(s canvas.Surface, w *world.World) {
	s.Clear(background)

	for _, st := range w.Stars {
		s.FillCircle(st.X, st.Y, st.Radius, canvas.Solid(starColor))
	}

	p.drawSun(s, w.Sun)

	for i := range w.Planets {
		p.drawPlanet(s, &w.Planets[i])
	}

	for _, a := range w.Asteroids {
		s.FillCircle(a.Pos.X, a.Pos.Y, a.Radius, canvas.Solid(asteroidFill))
	}

	if p.opts.Labels {
		for i := range w.Planets {
			p.drawLabel(s, &w.Planets[i])
		}
	}
}

func (p *Painter) drawSun(s canvas.Surface, sun world.Sun) {
	x, y, r := sun.Pos.X, sun.Pos.Y, sun.Radius
	s.FillCircle(x, y, r, gradient(sunStops, x, y, r*0.2, x, y, r))
}

func (p *Painter) drawPlanet(s canvas.Surface, pl *world.Planet) {
	x, y, r := pl.Pos.X, pl.Pos.Y, pl.Radius

	p.underlay(s, pl)
	// Light comes from the upper left.
	s.FillCircle(x, y, r, gradient(Palette(pl.ID), x-r/3, y-r/3, r/5, x, y, r))
	p.overlay(s, pl)

	if m := pl.Moon; m != nil {
		mx, my, mr := m.Pos.X, m.Pos.Y, m.Radius
		s.FillCircle(mx, my, mr, gradient(moonStops, mx-mr/3, my-mr/3, mr/4, mx, my, mr))
	}
}

func (p *Painter) drawLabel(s canvas.Surface, pl *world.Planet) {
	name := pl.ID.String()
	x := pl.Pos.X - float64(canvas.TextWidth(name))/2
	y := pl.Pos.Y + pl.Radius + canvas.FontHeight + 2
	s.Text(x, y, name, labelColor)
}

// DrawHUD writes a single status line in the top-left corner.
func (p *Painter) DrawHUD(s canvas.Surface, line string) {
	if line == "" {
		return
	}
	s.Text(4, canvas.FontHeight+2, line, hudColor)
}
