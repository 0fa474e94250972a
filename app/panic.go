package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"orrery/canvas"
	"orrery/hal"
)

var (
	panicBackground = canvas.RGB(0xff, 0xff, 0xff)
	panicForeground = canvas.RGB(0, 0, 0)
)

// guard turns a panic inside step into an error after logging it and
// painting it on the framebuffer.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := string(debug.Stack())
			reportPanic(h, v, stack)
			err = fmt.Errorf("frame panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack string) {
	lines := []string{"Orrery Panic:", fmt.Sprintf("panic: %v", v), "stack:"}
	for _, line := range strings.Split(stack, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	cv := canvas.Wrap(fb.Image())
	cv.Clear(panicBackground)
	w, hgt := cv.Size()
	charW := canvas.TextWidth("0")
	if charW <= 0 {
		charW = 1
	}
	cols := w / charW
	if cols <= 0 {
		cols = 1
	}

	y := canvas.FontHeight
	for _, line := range lines {
		for len(line) > 0 {
			if y > hgt {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			cv.Text(0, float64(y), chunk, panicForeground)
			y += canvas.FontHeight + 2
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	r := []rune(s)
	if len(r) <= n {
		return s, ""
	}
	return string(r[:n]), string(r[n:])
}
