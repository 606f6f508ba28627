// Package render implements the portal-recursive software renderer (§4.D)
// and the 2D top-down map view renderer (§4.E).
package render

// Framebuffer is the pixel surface the renderer writes into. Pixels are
// packed 32bpp, byte order R,G,B,A, i.e. as a little-endian uint32:
// (A<<24)|(B<<16)|(G<<8)|R (§6 Framebuffer pixel format). The platform
// uploads this layout to the window as-is.
type Framebuffer struct {
	Width, Height int
	Pixels        []uint32
}

// NewFramebuffer allocates a cleared Framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]uint32, width*height)}
}

// RGBA packs 8-bit channels into the framebuffer's little-endian pixel
// format.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// Clear fills the entire framebuffer with color.
func (fb *Framebuffer) Clear(color uint32) {
	for i := range fb.Pixels {
		fb.Pixels[i] = color
	}
}

// Set writes a single pixel, silently ignoring out-of-bounds coordinates
// (§4.D failure semantics: the renderer never writes outside [0,W)x[0,H)
// and never panics on a bad index).
func (fb *Framebuffer) Set(x, y int, color uint32) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = color
}

// VertLine fills the vertical run [y1, y2] (inclusive) in column x with a
// single color. Used for the "missing texture" gray fallback (§7).
func (fb *Framebuffer) VertLine(x, y1, y2 int, color uint32) {
	if y1 > y2 {
		return
	}
	if y1 < 0 {
		y1 = 0
	}
	if y2 >= fb.Height {
		y2 = fb.Height - 1
	}
	for y := y1; y <= y2; y++ {
		fb.Set(x, y, color)
	}
}
