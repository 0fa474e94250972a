package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/internal/metrics"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		term     hal.TerminalConfig
		cfg      app.Config

		useTerm     bool
		metricsAddr string
		version     bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N frames in headless and terminal mode (0 = run forever).")
	flag.BoolVar(&useTerm, "term", false, "Render into the terminal with truecolor half blocks.")
	flag.IntVar(&term.Scale, "term-scale", 4, "Framebuffer pixels per terminal half-cell.")
	flag.StringVar(&term.LogPath, "term-log", "", "Write scene log lines to this file in terminal mode.")
	flag.IntVar(&window.Width, "width", hal.DefaultWidth, "Surface width in pixels.")
	flag.IntVar(&window.Height, "height", hal.DefaultHeight, "Surface height in pixels.")
	flag.IntVar(&cfg.Asteroids, "asteroids", 0, "Asteroid count (0 = default).")
	flag.IntVar(&cfg.Stars, "stars", 0, "Star count (0 = default).")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time-based).")
	flag.BoolVar(&cfg.Labels, "labels", false, "Draw planet names.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Draw a status line.")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9102).")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Full())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if metricsAddr != "" {
		cfg.Metrics = metrics.New()
		go func() {
			if err := cfg.Metrics.Serve(ctx, metricsAddr); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	var err error
	switch {
	case useTerm:
		term.Hz = headless.Hz
		term.Ticks = headless.Ticks
		err = hal.RunTerminal(ctx, newApp, term)
	case headless.Enabled:
		headless.Width, headless.Height = window.Width, window.Height
		err = hal.RunHeadless(ctx, newApp, headless)
	default:
		window.TPS = headless.Hz
		err = hal.RunWindow(newApp, window)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
