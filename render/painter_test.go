package render

import (
	"math"
	"reflect"
	"testing"

	"orrery/canvas"
	"orrery/world"
)

type opKind int

const (
	opClear opKind = iota
	opFillRect
	opFillCircle
	opStrokeCircle
	opStrokeEllipse
	opStrokeLine
	opStrokeArc
	opText
)

type op struct {
	kind  opKind
	x, y  float64
	r     float64
	rot   float64
	paint canvas.Paint
	color canvas.Color
	text  string
}

// recorder is a canvas.Surface that keeps every call.
type recorder struct {
	w, h int
	ops  []op
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Clear(c canvas.Color) {
	r.ops = append(r.ops, op{kind: opClear, color: c})
}
func (r *recorder) FillRect(x, y, w, h float64, c canvas.Color) {
	r.ops = append(r.ops, op{kind: opFillRect, x: x, y: y, color: c})
}
func (r *recorder) FillCircle(cx, cy, rad float64, p canvas.Paint) {
	r.ops = append(r.ops, op{kind: opFillCircle, x: cx, y: cy, r: rad, paint: p})
}
func (r *recorder) StrokeCircle(cx, cy, rad, width float64, c canvas.Color) {
	r.ops = append(r.ops, op{kind: opStrokeCircle, x: cx, y: cy, r: rad, color: c})
}
func (r *recorder) StrokeEllipse(cx, cy, rx, ry, rot, width float64, c canvas.Color) {
	r.ops = append(r.ops, op{kind: opStrokeEllipse, x: cx, y: cy, r: rx, rot: rot, color: c})
}
func (r *recorder) StrokeLine(x0, y0, x1, y1, width float64, c canvas.Color) {
	r.ops = append(r.ops, op{kind: opStrokeLine, x: x0, y: y0, color: c})
}
func (r *recorder) StrokeArc(cx, cy, rad, start, end, width float64, c canvas.Color) {
	r.ops = append(r.ops, op{kind: opStrokeArc, x: cx, y: cy, r: rad, color: c})
}
func (r *recorder) Text(x, y float64, s string, c canvas.Color) {
	r.ops = append(r.ops, op{kind: opText, x: x, y: y, text: s, color: c})
}

func (r *recorder) count(kind opKind) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func gradientOf(t *testing.T, o op) *canvas.RadialGradient {
	t.Helper()
	g, ok := o.paint.(*canvas.RadialGradient)
	if !ok {
		t.Fatalf("op at (%v,%v) r=%v: paint %T is not a gradient", o.x, o.y, o.r, o.paint)
	}
	return g
}

func isMoonFill(o op) bool {
	if o.kind != opFillCircle {
		return false
	}
	g, ok := o.paint.(*canvas.RadialGradient)
	return ok && len(g.Stops()) == 2 && g.Stops()[0].Color == moonStops[0].Color
}

func setup(t *testing.T, w, h int) (*world.World, *Painter, *recorder) {
	t.Helper()
	wd := world.New(world.DefaultCatalog(), world.NewRand(7))
	wd.Init(w, h)
	return wd, NewPainter(world.NewRand(8), Options{}), &recorder{w: w, h: h}
}

func TestDrawOrderAndCounts(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	wd.Step()
	p.Draw(rec, wd)

	if rec.ops[0].kind != opClear || rec.ops[0].color != canvas.Black {
		t.Fatalf("first op: %+v", rec.ops[0])
	}
	for i := 1; i <= 200; i++ {
		o := rec.ops[i]
		s, ok := o.paint.(canvas.Solid)
		if o.kind != opFillCircle || !ok || canvas.Color(s) != canvas.White {
			t.Fatalf("op %d is not a star: %+v", i, o)
		}
	}
	sun := rec.ops[201]
	if sun.kind != opFillCircle || sun.x != 400 || sun.y != 300 || sun.r != 50 {
		t.Fatalf("sun op: %+v", sun)
	}

	asteroids := 0
	for _, o := range rec.ops {
		if s, ok := o.paint.(canvas.Solid); ok && canvas.Color(s) == asteroidFill {
			asteroids++
		}
	}
	if asteroids != 100 {
		t.Fatalf("asteroid fills: %d", asteroids)
	}
	if rec.count(opText) != 0 {
		t.Fatal("labels drawn while disabled")
	}
}

func TestSunGradient(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	p.Draw(rec, wd)
	g := gradientOf(t, rec.ops[201])
	if len(g.Stops()) != 5 {
		t.Fatalf("sun stops: %d", len(g.Stops()))
	}
	if g.X0 != 400 || g.Y0 != 300 || g.R0 != 10 || g.R1 != 50 {
		t.Fatalf("sun geometry: %+v", g)
	}
	if got := g.Stops()[0].Color; got != canvas.MustColor("#fff9a3") {
		t.Fatalf("core color: %+v", got)
	}
}

func TestPlanetFills(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	wd.Step()
	p.Draw(rec, wd)

	for _, pl := range wd.Planets {
		found := false
		for _, o := range rec.ops {
			if o.kind != opFillCircle || o.x != pl.Pos.X || o.y != pl.Pos.Y || o.r != pl.Radius {
				continue
			}
			g := gradientOf(t, o)
			if n := len(g.Stops()); n < 2 || n > 4 {
				t.Fatalf("%v: %d stops", pl.ID, n)
			}
			if !reflect.DeepEqual(g.Stops(), Palette(pl.ID)) {
				t.Fatalf("%v: wrong palette", pl.ID)
			}
			if g.X0 != pl.Pos.X-pl.Radius/3 || g.Y0 != pl.Pos.Y-pl.Radius/3 || g.R0 != pl.Radius/5 {
				t.Fatalf("%v: focus %+v", pl.ID, g)
			}
			found = true
		}
		if !found {
			t.Fatalf("%v: no fill at %+v", pl.ID, pl.Pos)
		}
	}
}

func TestPalettesDistinct(t *testing.T) {
	seen := map[canvas.Color]world.PlanetID{}
	for id := world.Mercury; id <= world.Neptune; id++ {
		first := Palette(id)[0].Color
		if other, dup := seen[first]; dup {
			t.Fatalf("%v shares highlight with %v", id, other)
		}
		seen[first] = id
	}
}

func TestMoonFollowsUpdatedEarth(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	for frame := 0; frame < 30; frame++ {
		rec.ops = rec.ops[:0]
		wd.Step()
		p.Draw(rec, wd)

		earth, _ := wd.Planet(world.Earth)
		moons := 0
		for _, o := range rec.ops {
			if !isMoonFill(o) {
				continue
			}
			moons++
			d := math.Hypot(o.x-earth.Pos.X, o.y-earth.Pos.Y)
			if math.Abs(d-20) > 1e-9 {
				t.Fatalf("frame %d: moon %v from earth", frame, d)
			}
			if o.r != 4 {
				t.Fatalf("moon radius %v", o.r)
			}
		}
		if moons != 1 {
			t.Fatalf("frame %d: %d moon fills", frame, moons)
		}
	}
}

func TestMarsNeverDrawsMoon(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	mars, _ := wd.Planet(world.Mars)
	if mars.Moon != nil {
		t.Fatal("mars has a moon")
	}
	for frame := 0; frame < 50; frame++ {
		rec.ops = rec.ops[:0]
		wd.Step()
		p.Draw(rec, wd)
		for _, o := range rec.ops {
			if !isMoonFill(o) {
				continue
			}
			if d := math.Hypot(o.x-mars.Pos.X, o.y-mars.Pos.Y); math.Abs(d-20) < 1e-6 {
				t.Fatalf("frame %d: moon drawn around mars", frame)
			}
		}
	}
}

func TestOverlays(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	wd.Step()
	p.Draw(rec, wd)

	saturn, _ := wd.Planet(world.Saturn)
	ringIdx, fillIdx := -1, -1
	for i, o := range rec.ops {
		if o.kind == opStrokeEllipse && o.x == saturn.Pos.X && o.y == saturn.Pos.Y {
			if o.rot != math.Pi/4 {
				t.Fatalf("ring tilt %v", o.rot)
			}
			ringIdx = i
		}
		if o.kind == opFillCircle && o.x == saturn.Pos.X && o.y == saturn.Pos.Y && o.r == saturn.Radius {
			fillIdx = i
		}
	}
	if ringIdx < 0 || fillIdx < 0 || ringIdx > fillIdx {
		t.Fatalf("saturn ring at %d, fill at %d", ringIdx, fillIdx)
	}
	if rec.count(opStrokeEllipse) != 1 {
		t.Fatalf("ellipses: %d", rec.count(opStrokeEllipse))
	}

	jupiter, _ := wd.Planet(world.Jupiter)
	prev := math.Inf(1)
	bands := 0
	for _, o := range rec.ops {
		if o.kind == opStrokeCircle && o.x == jupiter.Pos.X && o.y == jupiter.Pos.Y {
			if o.r >= prev {
				t.Fatalf("bands not decreasing: %v after %v", o.r, prev)
			}
			prev = o.r
			bands++
		}
	}
	if bands != jupiterBands {
		t.Fatalf("jupiter bands: %d", bands)
	}

	if got := rec.count(opStrokeLine); got != marsStreaks+uranusLines {
		t.Fatalf("line strokes: %d", got)
	}
	if got := rec.count(opStrokeArc); got != neptuneArcs {
		t.Fatalf("arcs: %d", got)
	}
	clouds := 0
	for _, o := range rec.ops {
		if s, ok := o.paint.(canvas.Solid); ok && canvas.Color(s) == cloudColor {
			clouds++
		}
	}
	if clouds != cloudBlobs {
		t.Fatalf("clouds: %d", clouds)
	}
}

func TestOverlaysResampleEachFrame(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	p.Draw(rec, wd)
	first := append([]op(nil), rec.ops...)
	rec.ops = rec.ops[:0]
	p.Draw(rec, wd) // same world, no Step
	if reflect.DeepEqual(first, rec.ops) {
		t.Fatal("overlays identical across frames")
	}
}

func TestDrawDoesNotMutateWorld(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	wd.Step()
	before := make([]world.Planet, len(wd.Planets))
	copy(before, wd.Planets)
	moon := *wd.Planets[world.Earth].Moon
	asteroids := append([]world.Asteroid(nil), wd.Asteroids...)

	p.Draw(rec, wd)

	for i := range before {
		a, b := before[i], wd.Planets[i]
		if a.Angle != b.Angle || a.Pos != b.Pos {
			t.Fatalf("%v changed", a.ID)
		}
	}
	if *wd.Planets[world.Earth].Moon != moon {
		t.Fatal("moon changed")
	}
	if !reflect.DeepEqual(asteroids, wd.Asteroids) {
		t.Fatal("asteroids changed")
	}
}

func TestDrawAfterResize(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	wd.Step()
	wd.Init(1920, 1080)
	wd.Step()
	p.Draw(rec, wd)
	sun := rec.ops[201]
	if sun.x != 960 || sun.y != 540 {
		t.Fatalf("sun at (%v,%v)", sun.x, sun.y)
	}
	for _, pl := range wd.Planets {
		if d := math.Hypot(pl.Pos.X-960, pl.Pos.Y-540); math.Abs(d-pl.Distance) > 1e-9 {
			t.Fatalf("%v: %v from new center", pl.ID, d)
		}
	}
}

func TestLabelsAndHUD(t *testing.T) {
	wd, p, rec := setup(t, 800, 600)
	p.SetLabels(true)
	p.Draw(rec, wd)
	p.DrawHUD(rec, "orrery dev")
	p.DrawHUD(rec, "")

	var names []string
	for _, o := range rec.ops {
		if o.kind == opText {
			names = append(names, o.text)
		}
	}
	want := []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "orrery dev"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("text ops: %v", names)
	}
}

func TestPaintsRealCanvas(t *testing.T) {
	wd := world.New(world.DefaultCatalog(), world.NewRand(3))
	wd.Init(320, 240)
	wd.Step()
	c := canvas.New(320, 240)
	NewPainter(world.NewRand(4), Options{Labels: true}).Draw(c, wd)

	off := c.Image().PixOffset(160, 120)
	px := c.Image().Pix[off : off+4]
	// Sun core is bright yellow-white.
	if px[0] < 0xF0 || px[1] < 0xF0 || px[3] != 0xFF {
		t.Fatalf("sun center pixel: %v", px)
	}
}
