package render

import (
	"orrery/canvas"
	"orrery/world"
)

var (
	background   = canvas.Black
	starColor    = canvas.White
	asteroidFill = canvas.MustColor("#aaaaaa")
	labelColor   = canvas.MustColor("#9aa4b1")
	hudColor     = canvas.MustColor("#c8d0da")
)

// Sun shading, bright core to soft orange edge.
var sunStops = []canvas.Stop{
	{Offset: 0, Color: canvas.MustColor("#fff9a3")},
	{Offset: 0.3, Color: canvas.MustColor("#fff176")},
	{Offset: 0.6, Color: canvas.MustColor("#ffd54f")},
	{Offset: 0.8, Color: canvas.MustColor("#ffb300")},
	{Offset: 1, Color: canvas.MustColor("#ffa000")},
}

var moonStops = []canvas.Stop{
	{Offset: 0, Color: canvas.MustColor("#dddddd")},
	{Offset: 1, Color: canvas.MustColor("#888888")},
}

var planetStops = map[world.PlanetID][]canvas.Stop{
	world.Mercury: {
		{Offset: 0, Color: canvas.MustColor("#d0d0d0")},
		{Offset: 1, Color: canvas.MustColor("#7a7a7a")},
	},
	world.Venus: {
		{Offset: 0, Color: canvas.MustColor("#fff5e6")},
		{Offset: 1, Color: canvas.MustColor("#f5d6a1")},
	},
	world.Earth: {
		{Offset: 0, Color: canvas.MustColor("#6ec1ff")},   // oceans
		{Offset: 0.7, Color: canvas.MustColor("#2e86c1")}, // deep water
		{Offset: 1, Color: canvas.MustColor("#1c5a99")},   // terminator
	},
	world.Mars: {
		{Offset: 0, Color: canvas.MustColor("#ff6f4c")},
		{Offset: 1, Color: canvas.MustColor("#b03d1d")},
	},
	world.Jupiter: {
		{Offset: 0, Color: canvas.MustColor("#ffe0b2")},
		{Offset: 0.5, Color: canvas.MustColor("#d9b48f")},
		{Offset: 1, Color: canvas.MustColor("#b07250")},
	},
	world.Saturn: {
		{Offset: 0, Color: canvas.MustColor("#fff8c4")},
		{Offset: 0.7, Color: canvas.MustColor("#f4e1a0")},
		{Offset: 1, Color: canvas.MustColor("#d4c08c")},
	},
	world.Uranus: {
		{Offset: 0, Color: canvas.MustColor("#b0f0ff")},
		{Offset: 1, Color: canvas.MustColor("#4da3cc")},
	},
	world.Neptune: {
		{Offset: 0, Color: canvas.MustColor("#66a3ff")},
		{Offset: 1, Color: canvas.MustColor("#1c3fa0")},
	},
}

// Palette returns the shading stops for a planet. Unknown identities fall
// back to a flat gray.
func Palette(id world.PlanetID) []canvas.Stop {
	if stops, ok := planetStops[id]; ok {
		return stops
	}
	return []canvas.Stop{{Offset: 0, Color: asteroidFill}, {Offset: 1, Color: asteroidFill}}
}

func gradient(stops []canvas.Stop, x0, y0, r0, x1, y1, r1 float64) *canvas.RadialGradient {
	g := canvas.NewRadialGradient(x0, y0, r0, x1, y1, r1)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	return g
}
