package canvas

import "sort"

// Paint is a fill: either Solid or *RadialGradient.
type Paint interface {
	paint()
}

// Solid is a single-color paint.
type Solid Color

func (Solid) paint() {}

// Stop is one gradient color stop; Offset is in [0,1].
type Stop struct {
	Offset float64
	Color  Color
}

// RadialGradient is a two-circle radial gradient from the start circle
// (offset 0) to the end circle (offset 1), padded outside that range.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64

	stops []Stop
}

func (*RadialGradient) paint() {}

// NewRadialGradient returns a gradient without stops.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddColorStop inserts a stop, keeping stops ordered by offset. Stops with
// equal offsets keep insertion order.
func (g *RadialGradient) AddColorStop(offset float64, c Color) *RadialGradient {
	offset = clamp01(offset)
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Offset > offset })
	g.stops = append(g.stops, Stop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = Stop{Offset: offset, Color: c}
	return g
}

func (g *RadialGradient) Stops() []Stop { return g.stops }
