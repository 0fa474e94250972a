package hal

import (
	"errors"
	"image"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrStop is returned by a frame step to end the runner cleanly.
var ErrStop = errors.New("stop requested")

// Framebuffer is an RGBA pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	// Image returns the backing image. A Resize replaces it.
	Image() *image.RGBA
	// Resize reallocates the buffer and reports whether the size changed.
	// Non-positive dimensions are ignored.
	Resize(w, h int) bool
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeySpace
)

// KeyEvent is a keyboard event. Printable keys carry Rune with KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the scene and the host it runs in.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
