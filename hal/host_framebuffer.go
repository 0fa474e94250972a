package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu        sync.Mutex
	img       *image.RGBA
	presented uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (f *hostFramebuffer) Width() int  { return f.Image().Bounds().Dx() }
func (f *hostFramebuffer) Height() int { return f.Image().Bounds().Dy() }

func (f *hostFramebuffer) Image() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.img
}

func (f *hostFramebuffer) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	b := f.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return false
	}
	f.img = image.NewRGBA(image.Rect(0, 0, w, h))
	return true
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presented++
	return nil
}

func (f *hostFramebuffer) Presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presented
}

// snapshot copies the current pixels into dst, reallocating it when the
// size no longer matches.
func (f *hostFramebuffer) snapshot(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dst == nil || dst.Bounds() != f.img.Bounds() {
		dst = image.NewRGBA(f.img.Bounds())
	}
	copy(dst.Pix, f.img.Pix)
	return dst
}
