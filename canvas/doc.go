// Package canvas provides the 2D drawing surface the orrery scene paints on.
//
// Drawing goes through the Surface interface so the scene painter can be
// exercised against a recorder in tests. Canvas is the implementation: an
// HTML5-style 2D context (github.com/tfriedel6/canvas) on its pure Go
// software backend, rendering into an *image.RGBA that hosts present
// however they like (window texture, terminal cells, PNG file). Text is
// drawn with tinyfont directly into the same image.
package canvas
