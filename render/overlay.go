package render

import (
	"math"

	"orrery/canvas"
	"orrery/world"
)

var (
	cloudColor  = canvas.RGBA(0xFF, 0xFF, 0xFF, 0x48)
	streakColor = canvas.RGBA(0x6e, 0x1e, 0x0a, 0x70)
	bandColor   = canvas.RGBA(0x8a, 0x5a, 0x3c, 0x60)
	ringColor   = canvas.RGBA(0xe8, 0xd8, 0xa8, 0xc0)
	hazeColor   = canvas.RGBA(0xFF, 0xFF, 0xFF, 0x30)
	stormColor  = canvas.RGBA(0xd0, 0xe4, 0xff, 0x38)
)

const (
	cloudBlobs    = 4
	marsStreaks   = 3
	jupiterBands  = 3
	uranusLines   = 3
	neptuneArcs   = 2
	saturnTilt    = math.Pi / 4
	saturnRingRx  = 1.8
	saturnRingRy  = 0.55
	saturnRingW   = 2
	overlayStroke = 1
)

// underlay draws decorations that sit behind the planet disc.
func (p *Painter) underlay(s canvas.Surface, pl *world.Planet) {
	switch pl.ID {
	case world.Saturn:
		s.StrokeEllipse(pl.Pos.X, pl.Pos.Y, pl.Radius*saturnRingRx, pl.Radius*saturnRingRy, saturnTilt, saturnRingW, ringColor)
	}
}

// overlay draws decorations on top of the planet disc. Random placements
// are drawn fresh every frame.
func (p *Painter) overlay(s canvas.Surface, pl *world.Planet) {
	x, y, r := pl.Pos.X, pl.Pos.Y, pl.Radius
	switch pl.ID {
	case world.Earth:
		for i := 0; i < cloudBlobs; i++ {
			a := p.rng.Float64() * 2 * math.Pi
			d := p.rng.Float64() * r * 0.55
			br := r * (0.15 + 0.2*p.rng.Float64())
			s.FillCircle(x+d*math.Cos(a), y+d*math.Sin(a), br, canvas.Solid(cloudColor))
		}

	case world.Mars:
		for i := 0; i < marsStreaks; i++ {
			a0 := p.rng.Float64() * 2 * math.Pi
			a1 := a0 + math.Pi/2 + p.rng.Float64()*math.Pi
			d0 := r * (0.3 + 0.5*p.rng.Float64())
			d1 := r * (0.3 + 0.5*p.rng.Float64())
			s.StrokeLine(x+d0*math.Cos(a0), y+d0*math.Sin(a0), x+d1*math.Cos(a1), y+d1*math.Sin(a1), overlayStroke, streakColor)
		}

	case world.Jupiter:
		for k := 1; k <= jupiterBands; k++ {
			s.StrokeCircle(x, y, r*(1-0.22*float64(k)), overlayStroke, bandColor)
		}

	case world.Uranus:
		for i := 0; i < uranusLines; i++ {
			dy := (p.rng.Float64()*2 - 1) * r * 0.7
			half := math.Sqrt(r*r - dy*dy)
			s.StrokeLine(x-half, y+dy, x+half, y+dy, overlayStroke, hazeColor)
		}

	case world.Neptune:
		for i := 0; i < neptuneArcs; i++ {
			ar := r * (0.4 + 0.4*p.rng.Float64())
			start := p.rng.Float64() * 2 * math.Pi
			sweep := math.Pi/3 + p.rng.Float64()*math.Pi/2
			s.StrokeArc(x, y, ar, start, start+sweep, 1.5, stormColor)
		}
	}
}
