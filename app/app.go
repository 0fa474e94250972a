package app

import (
	"fmt"
	"time"

	"orrery/canvas"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/metrics"
	"orrery/render"
	"orrery/world"
)

// ErrQuit is returned by a step when the user asked to leave. Runners treat
// it as a clean shutdown.
var ErrQuit = hal.ErrStop

type Config struct {
	Asteroids int // 0 = world.DefaultAsteroidCount
	Stars     int // 0 = world.DefaultStarCount
	Seed      int64
	Labels    bool
	HUD       bool

	Metrics *metrics.Collector
}

// Scene owns the world and everything needed to put it on the framebuffer.
// All methods run on the host's frame goroutine.
type Scene struct {
	cfg Config

	log  hal.Logger
	fb   hal.Framebuffer
	keys <-chan hal.KeyEvent

	world   *world.World
	painter *render.Painter
	cv      *canvas.Canvas

	paused bool
	inits  uint64
}

// New initializes the scene with default config and returns its frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := NewScene(h, cfg)
	return guard(h, s.Step)
}

func NewScene(h hal.HAL, cfg Config) *Scene {
	s := &Scene{cfg: cfg, log: h.Logger()}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			s.keys = kbd.Events()
		}
	}

	cat := world.DefaultCatalog().WithCounts(cfg.Asteroids, cfg.Stars)
	worldRng, paintRng := world.NewRand(cfg.Seed), world.NewRand(overlaySeed(cfg.Seed))
	s.world = world.New(cat, worldRng)
	s.painter = render.NewPainter(paintRng, render.Options{Labels: cfg.Labels})

	if s.fb != nil {
		s.cv = canvas.Wrap(s.fb.Image())
	} else {
		s.cv = canvas.New(hal.DefaultWidth, hal.DefaultHeight)
	}
	s.reinit("start")
	return s
}

// overlaySeed derives the painter's seed so a fixed -seed reproduces
// overlays as well as the world.
func overlaySeed(seed int64) int64 {
	if seed == 0 {
		return 0
	}
	return seed*31 + 7
}

func (s *Scene) World() *world.World    { return s.world }
func (s *Scene) Canvas() *canvas.Canvas { return s.cv }
func (s *Scene) Paused() bool           { return s.paused }

// Step handles pending input, reinitializes after a surface resize,
// advances the world unless paused and draws one frame.
func (s *Scene) Step() error {
	start := time.Now()

	if err := s.handleKeys(); err != nil {
		return err
	}

	if s.fb != nil {
		if img := s.fb.Image(); img != s.cv.Image() {
			s.cv.Reset(img)
			b := img.Bounds()
			if b.Dx() != s.world.Width || b.Dy() != s.world.Height {
				s.reinit("resize")
			}
		}
	}

	if !s.paused {
		s.world.Step()
	}

	s.painter.Draw(s.cv, s.world)
	if s.cfg.HUD {
		s.painter.DrawHUD(s.cv, s.hudLine())
	}

	if s.fb != nil {
		if err := s.fb.Present(); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}

	if s.cfg.Metrics != nil {
		s.cfg.Metrics.ObserveFrame(time.Since(start))
	}
	return nil
}

func (s *Scene) handleKeys() error {
	if s.keys == nil {
		return nil
	}
	for {
		select {
		case ev := <-s.keys:
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
				s.logf("scene: quit")
				return ErrQuit
			case ev.Code == hal.KeySpace:
				s.paused = !s.paused
				if s.paused {
					s.logf("scene: paused at frame %d", s.world.Frame)
				} else {
					s.logf("scene: resumed")
				}
			case ev.Rune == 'r', ev.Rune == 'R':
				s.reinit("reset")
			case ev.Rune == 'l', ev.Rune == 'L':
				s.cfg.Labels = !s.cfg.Labels
				s.painter.SetLabels(s.cfg.Labels)
			}
		default:
			return nil
		}
	}
}

func (s *Scene) reinit(reason string) {
	w, h := s.cv.Size()
	s.world.Init(w, h)
	s.inits++
	s.logf("scene: %s %dx%d seed=%d", reason, w, h, s.cfg.Seed)

	if m := s.cfg.Metrics; m != nil {
		m.Reinit()
		m.SetBodies(s.world.Bodies())
	}
}

func (s *Scene) hudLine() string {
	state := ""
	if s.paused {
		state = " paused"
	}
	return fmt.Sprintf("orrery %s  frame %d  %dx%d%s",
		buildinfo.Short(), s.world.Frame, s.world.Width, s.world.Height, state)
}

func (s *Scene) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
