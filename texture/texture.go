// Package texture defines the opaque texture-handle contract the renderer
// uses, and the Store collaborator interface it is resolved through (§4.C,
// §6). The core never decodes pixels itself; it only asks a Store to
// resolve a handle into a sampled Image.
package texture

// None is the handle value meaning "no texture — fall back to a fixed
// gray" (§4.C, §7 asset-missing policy).
const None Handle = -1

// Handle is an opaque reference to a loaded texture. The zero value is a
// valid handle (typically whatever Load first returns); use None to mean
// "no texture assigned".
type Handle int32

// Valid reports whether h refers to an actual texture rather than None.
func (h Handle) Valid() bool {
	return h != None
}

// Image is the pixel data a Store resolves a Handle to. Pixels are row
// major, Width*Height entries, in the same 32bpp LE layout as the
// renderer's framebuffer (§6 Framebuffer pixel format).
type Image struct {
	Width, Height int
	Pixels        []uint32
}

// At returns the pixel at (x, y), wrapping both coordinates (textures
// repeat on their own dimensions — see §4.D "Flat caster").
func (img *Image) At(x, y int) uint32 {
	if img.Width == 0 || img.Height == 0 {
		return 0
	}
	x %= img.Width
	if x < 0 {
		x += img.Width
	}
	y %= img.Height
	if y < 0 {
		y += img.Height
	}
	return img.Pixels[y*img.Width+x]
}

// Store is the external collaborator that resolves texture paths and
// handles to pixel data (§6). The core only ever calls Get/NameOf; Load and
// HandleOf exist for the map loader and editor tooling.
type Store interface {
	// Load resolves a texture by path, loading it if necessary, and returns
	// a handle. Returns None on any failure (§7 asset-missing policy).
	Load(path string) Handle

	// Get resolves a handle to its pixel data. Returns nil for None or an
	// unknown handle.
	Get(h Handle) *Image

	// HandleOf returns the handle already associated with path, or None if
	// it has not been loaded.
	HandleOf(path string) Handle

	// NameOf returns the path a handle was loaded from, or "" if unknown.
	NameOf(h Handle) string
}
