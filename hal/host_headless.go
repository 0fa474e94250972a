package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/time/rate"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64 // stop after N frames (0 = run forever)
	Width   int
	Height  int

	// Unpaced renders frames back to back instead of at Hz.
	Unpaced bool
	// Log receives host log lines; nil means stdout.
	Log io.Writer
}

// RunHeadless runs the scene without opening a window.
//
// Frames are paced by a token bucket so a slow frame is followed by an
// immediate one rather than a burst.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	_, err := runHeadless(ctx, newApp, cfg)
	return err
}

func runHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) (*hostHAL, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h := newHost(cfg.Width, cfg.Height, &hostLogger{w: cfg.Log})
	step := newApp(h)

	limit := rate.Limit(cfg.Hz)
	if cfg.Unpaced {
		limit = rate.Inf
	}
	lim := rate.NewLimiter(limit, 1)

	var tick uint64
	for cfg.Ticks == 0 || tick < cfg.Ticks {
		if err := ctx.Err(); err != nil {
			return h, err
		}
		if err := lim.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return h, ctxErr
			}
			return h, fmt.Errorf("headless pacing: %w", err)
		}
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrStop) {
					return h, nil
				}
				return h, err
			}
		}
		tick++
	}
	return h, nil
}
