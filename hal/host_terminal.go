package hal

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz    int
	Ticks uint64 // stop after N frames (0 = run forever)
	// Scale is the number of framebuffer pixels per half-cell along each axis.
	Scale int
	// LogPath receives host log lines; empty discards them.
	LogPath string
}

// halfBlock paints the upper half of a cell in the foreground color; the
// background fills the lower half.
const halfBlock = '▀'

// cellSetter is the part of tcell.Screen the presenter needs.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// RunTerminal renders into the controlling terminal with truecolor
// half-block cells. Each frame the framebuffer is scaled down to two pixels
// per cell, stacked vertically.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}

	var logw io.Writer = io.Discard
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open terminal log %q: %w", cfg.LogPath, err)
		}
		defer f.Close()
		logw = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	cols, rows := screen.Size()
	h := newHost(cols*cfg.Scale, rows*2*cfg.Scale, &hostLogger{w: logw})
	step := newApp(h)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer ticker.Stop()

	var (
		tick  uint64
		cells *image.RGBA
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				cols, rows = ev.Size()
				h.fb.Resize(cols*cfg.Scale, rows*2*cfg.Scale)
				screen.Sync()
			case *tcell.EventKey:
				if ke, ok := keyFromTerminal(ev.Key(), ev.Rune()); ok {
					h.kbd.emit(ke)
				}
			}

		case <-ticker.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrStop) {
						return nil
					}
					return err
				}
			}
			cells = downsample(cells, h.fb.Image(), cols, rows)
			presentCells(screen, cells)
			screen.Show()

			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func keyFromTerminal(k tcell.Key, r rune) (KeyEvent, bool) {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyRune:
		if r == ' ' {
			return KeyEvent{Code: KeySpace, Press: true}, true
		}
		return KeyEvent{Press: true, Rune: r}, true
	}
	return KeyEvent{}, false
}

// presentCells maps each vertical pixel pair of cells onto one terminal cell.
func presentCells(dst cellSetter, cells *image.RGBA) {
	b := cells.Bounds()
	for cy := 0; cy < b.Dy()/2; cy++ {
		for cx := 0; cx < b.Dx(); cx++ {
			top := cells.RGBAAt(b.Min.X+cx, b.Min.Y+2*cy)
			bot := cells.RGBAAt(b.Min.X+cx, b.Min.Y+2*cy+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			dst.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}
