package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"orrery/app"
	"orrery/hal"

	"golang.org/x/image/draw"
)

func main() {
	var (
		outPath   = flag.String("out", "", "Output directory for a PNG sequence, or a .gif file.")
		frames    = flag.Int("frames", 60, "Number of frames to render.")
		width     = flag.Int("width", hal.DefaultWidth, "Surface width in pixels.")
		height    = flag.Int("height", hal.DefaultHeight, "Surface height in pixels.")
		seed      = flag.Int64("seed", 1, "Random seed (0 = time-based).")
		asteroids = flag.Int("asteroids", 0, "Asteroid count (0 = default).")
		stars     = flag.Int("stars", 0, "Star count (0 = default).")
		labels    = flag.Bool("labels", false, "Draw planet names.")
		delay     = flag.Int("delay", 2, "GIF frame delay in 1/100 s.")
		verbose   = flag.Bool("v", false, "Print scene log lines.")
	)
	flag.Parse()

	if *outPath == "" || *frames <= 0 {
		fatalf("usage: mkframes -out frames/ [-frames 60] [-width 800] [-height 600] [-seed 1]\n       mkframes -out orrery.gif [-delay 2]")
	}

	var sink frameSink
	if strings.EqualFold(filepath.Ext(*outPath), ".gif") {
		sink = &gifSink{path: *outPath, delay: *delay}
	} else {
		if err := os.MkdirAll(*outPath, 0o755); err != nil {
			fatalf("create %s: %v", *outPath, err)
		}
		sink = &pngSink{dir: *outPath}
	}

	var logw io.Writer = io.Discard
	if *verbose {
		logw = os.Stderr
	}

	cfg := app.Config{Seed: *seed, Asteroids: *asteroids, Stars: *stars, Labels: *labels}
	err := hal.RunHeadless(context.Background(), func(h hal.HAL) func() error {
		step := app.NewWithConfig(h, cfg)
		fb := h.Display().Framebuffer()
		n := 0
		return func() error {
			if err := step(); err != nil {
				return err
			}
			n++
			return sink.add(n, fb.Image())
		}
	}, hal.HeadlessConfig{
		Ticks:   uint64(*frames),
		Width:   *width,
		Height:  *height,
		Unpaced: true,
		Log:     logw,
	})
	if err != nil {
		fatalf("render: %v", err)
	}
	if err := sink.close(); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type frameSink interface {
	add(n int, img *image.RGBA) error
	close() error
}

type pngSink struct {
	dir string
}

func (s *pngSink) add(n int, img *image.RGBA) error {
	path := filepath.Join(s.dir, fmt.Sprintf("frame%05d.png", n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}

func (s *pngSink) close() error { return nil }

// gifSink quantizes every frame to the web-safe palette and writes them
// as one looping animation on close.
type gifSink struct {
	path  string
	delay int
	anim  gif.GIF
}

func (s *gifSink) add(_ int, img *image.RGBA) error {
	p := image.NewPaletted(img.Bounds(), palette.WebSafe)
	draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})
	s.anim.Image = append(s.anim.Image, p)
	s.anim.Delay = append(s.anim.Delay, s.delay)
	return nil
}

func (s *gifSink) close() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create %q: %w", s.path, err)
	}
	if err := gif.EncodeAll(f, &s.anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", s.path, err)
	}
	return f.Close()
}
