package world

import "math"

const twoPi = 2 * math.Pi

// Vec is a point on the drawing surface, in pixels.
type Vec struct {
	X, Y float64
}

// Orbit returns the point at distance and angle from center.
func Orbit(center Vec, distance, angle float64) Vec {
	return Vec{
		X: center.X + distance*math.Cos(angle),
		Y: center.Y + distance*math.Sin(angle),
	}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

type Sun struct {
	Radius float64
	Color  string
	Pos    Vec
}

type Moon struct {
	Radius   float64
	Distance float64
	Speed    float64
	Angle    float64
	Pos      Vec
}

type Planet struct {
	ID       PlanetID
	Radius   float64
	Distance float64
	Speed    float64
	Color    string
	Angle    float64
	Pos      Vec
	Moon     *Moon
}

type Asteroid struct {
	Radius   float64
	Distance float64
	Speed    float64
	Angle    float64
	Pos      Vec
}

type Star struct {
	X, Y   float64
	Radius float64
}

// World is the mutable scene state. It is owned by a single controller and
// is not safe for concurrent use.
type World struct {
	cat Catalog
	rng Rand

	Width  int
	Height int
	Center Vec

	Sun       Sun
	Planets   []Planet
	Asteroids []Asteroid
	Stars     []Star

	// Frame counts Step calls since the last Init.
	Frame uint64
}

// New returns an empty world. Call Init before the first Step.
func New(cat Catalog, rng Rand) *World {
	return &World{cat: cat, rng: rng}
}

// Init discards all bodies and repopulates them for a width x height surface.
// Every random parameter is sampled again.
func (w *World) Init(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	w.Width = width
	w.Height = height
	w.Center = Vec{X: float64(width) / 2, Y: float64(height) / 2}
	w.Frame = 0

	w.Sun = Sun{Radius: w.cat.Sun.Radius, Color: w.cat.Sun.Color, Pos: w.Center}

	w.Planets = make([]Planet, 0, len(w.cat.Planets))
	for _, spec := range w.cat.Planets {
		p := Planet{
			ID:       spec.ID,
			Radius:   spec.Radius,
			Distance: spec.Distance,
			Speed:    spec.Speed,
			Color:    spec.Color,
			Angle:    w.angle(),
		}
		p.Pos = Orbit(w.Center, p.Distance, p.Angle)
		if spec.Moon != nil {
			m := &Moon{
				Radius:   spec.Moon.Radius,
				Distance: spec.Moon.Distance,
				Speed:    spec.Moon.Speed,
				Angle:    w.angle(),
			}
			m.Pos = Orbit(p.Pos, m.Distance, m.Angle)
			p.Moon = m
		}
		w.Planets = append(w.Planets, p)
	}

	belt := w.cat.Belt
	w.Asteroids = make([]Asteroid, 0, max(belt.Count, 0))
	for i := 0; i < belt.Count; i++ {
		a := Asteroid{
			Distance: belt.Distance.Sample(w.rng.Float64()),
			Angle:    w.angle(),
			Radius:   belt.Radius.Sample(w.rng.Float64()),
			Speed:    belt.Speed.Sample(w.rng.Float64()),
		}
		a.Pos = Orbit(w.Center, a.Distance, a.Angle)
		w.Asteroids = append(w.Asteroids, a)
	}

	stars := w.cat.Stars
	w.Stars = make([]Star, 0, max(stars.Count, 0))
	for i := 0; i < stars.Count; i++ {
		w.Stars = append(w.Stars, Star{
			X:      w.rng.Float64() * float64(width),
			Y:      w.rng.Float64() * float64(height),
			Radius: w.rng.Float64() * stars.MaxRadius,
		})
	}
}

func (w *World) angle() float64 { return w.rng.Float64() * twoPi }

// Step advances every orbiting body by one frame.
//
// A moon is placed relative to its planet's position for this frame, so the
// planet is always moved first.
func (w *World) Step() {
	for i := range w.Planets {
		p := &w.Planets[i]
		p.Angle += p.Speed
		p.Pos = Orbit(w.Center, p.Distance, p.Angle)
		if m := p.Moon; m != nil {
			m.Angle += m.Speed
			m.Pos = Orbit(p.Pos, m.Distance, m.Angle)
		}
	}
	for i := range w.Asteroids {
		a := &w.Asteroids[i]
		a.Angle += a.Speed
		a.Pos = Orbit(w.Center, a.Distance, a.Angle)
	}
	w.Frame++
}

// Planet returns the planet with the given identity, if present.
func (w *World) Planet(id PlanetID) (*Planet, bool) {
	for i := range w.Planets {
		if w.Planets[i].ID == id {
			return &w.Planets[i], true
		}
	}
	return nil, false
}

// Bodies returns the number of drawable bodies by kind.
func (w *World) Bodies() (planets, moons, asteroids, stars int) {
	for _, p := range w.Planets {
		if p.Moon != nil {
			moons++
		}
	}
	return len(w.Planets), moons, len(w.Asteroids), len(w.Stars)
}
