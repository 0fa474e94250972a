package hal

import (
	"image"

	"golang.org/x/image/draw"
)

// downsample scales src to cols x 2*rows pixels, one pixel per half-cell,
// reusing dst when it already has that size.
func downsample(dst *image.RGBA, src image.Image, cols, rows int) *image.RGBA {
	r := image.Rect(0, 0, cols, 2*rows)
	if dst == nil || dst.Bounds() != r {
		dst = image.NewRGBA(r)
	}
	draw.BiLinear.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return dst
}
