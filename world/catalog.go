package world

// PlanetID identifies one of the eight catalog planets.
//
// The set is closed: palettes and overlays switch over it exhaustively.
type PlanetID uint8

const (
	Mercury PlanetID = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune

	planetCount
)

var planetNames = [planetCount]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

func (id PlanetID) String() string {
	if id >= planetCount {
		return "unknown"
	}
	return planetNames[id]
}

// Range is a closed [Min, Max] interval used for randomized body parameters.
type Range struct {
	Min, Max float64
}

// Sample maps u in [0,1) into the range.
func (r Range) Sample(u float64) float64 { return r.Min + u*(r.Max-r.Min) }

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

type SunSpec struct {
	Radius float64
	Color  string
}

type MoonSpec struct {
	Radius   float64
	Distance float64
	Speed    float64
}

type PlanetSpec struct {
	ID       PlanetID
	Radius   float64
	Distance float64
	Speed    float64 // radians per frame
	Color    string
	Moon     *MoonSpec
}

type BeltSpec struct {
	Count    int
	Distance Range
	Radius   Range
	Speed    Range
}

type StarfieldSpec struct {
	Count     int
	MaxRadius float64 // exclusive
}

// Catalog is the fixed, hand-authored description of the scene.
type Catalog struct {
	Sun     SunSpec
	Planets []PlanetSpec
	Belt    BeltSpec
	Stars   StarfieldSpec
}

const (
	DefaultAsteroidCount = 100
	DefaultStarCount     = 200
)

// DefaultCatalog returns the stock solar system.
func DefaultCatalog() Catalog {
	return Catalog{
		Sun: SunSpec{Radius: 50, Color: "yellow"},
		Planets: []PlanetSpec{
			{ID: Mercury, Radius: 5, Distance: 70, Speed: 0.04, Color: "#b2b2b2"},
			{ID: Venus, Radius: 12, Distance: 100, Speed: 0.015, Color: "#f5deb3"},
			{ID: Earth, Radius: 13, Distance: 140, Speed: 0.01, Color: "#2e86c1",
				Moon: &MoonSpec{Radius: 4, Distance: 20, Speed: 0.05}},
			{ID: Mars, Radius: 8, Distance: 180, Speed: 0.008, Color: "#c1440e"},
			{ID: Jupiter, Radius: 25, Distance: 230, Speed: 0.006, Color: "#d9b48f"},
			{ID: Saturn, Radius: 22, Distance: 280, Speed: 0.005, Color: "#f4e1a0"},
			{ID: Uranus, Radius: 18, Distance: 330, Speed: 0.003, Color: "#7fdbff"},
			{ID: Neptune, Radius: 17, Distance: 380, Speed: 0.002, Color: "#4169e1"},
		},
		Belt: BeltSpec{
			Count:    DefaultAsteroidCount,
			Distance: Range{Min: 220, Max: 260},
			Radius:   Range{Min: 1, Max: 3},
			Speed:    Range{Min: 0.002, Max: 0.005},
		},
		Stars: StarfieldSpec{Count: DefaultStarCount, MaxRadius: 1.5},
	}
}

// WithCounts returns a copy of c with the asteroid and star counts replaced.
// Non-positive values keep the catalog's counts.
func (c Catalog) WithCounts(asteroids, stars int) Catalog {
	if asteroids > 0 {
		c.Belt.Count = asteroids
	}
	if stars > 0 {
		c.Stars.Count = stars
	}
	return c
}
