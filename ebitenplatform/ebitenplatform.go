// Package ebitenplatform implements the input.Platform and
// texture.Store collaborators on top of ebiten (§6), and drives the
// ebiten game loop that calls into the core each frame.
//
// Grounded on the teacher engine's own use of ebiten.Game/ebiten.Image
// for its render-target and input plumbing, generalized here from a 2D
// scene graph's presentation layer to presenting a raw software-rendered
// framebuffer and translating ebiten's polled input into this engine's
// Platform contract.
package ebitenplatform

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/qbradq/boomer/fsmount"
	"github.com/qbradq/boomer/input"
	"github.com/qbradq/boomer/texture"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Platform implements input.Platform backed by an ebiten game loop. Frame
// advancement happens through ebiten's own Update/Draw callbacks; Driver
// (below) wires those into the core's frame function.
type Platform struct {
	screen  *ebiten.Image
	windowW int
	windowH int
}

// NewPlatform returns a Platform with the given logical screen size. The
// caller still has to call ebiten.RunGame with a Driver wrapping this
// Platform and the core's per-frame callback.
func NewPlatform(logicalW, logicalH int) *Platform {
	return &Platform{
		windowW: logicalW,
		windowH: logicalH,
		screen:  ebiten.NewImage(logicalW, logicalH),
	}
}

// PollInput implements input.Platform. It does nothing: ebiten already
// polls input as part of its own event loop; this exists so the core's
// call site reads the same as any other collaborator method.
func (p *Platform) PollInput() {}

// IsKeyDown implements input.Platform.
func (p *Platform) IsKeyDown(k input.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// IsKeyPressed implements input.Platform.
func (p *Platform) IsKeyPressed(k input.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// IsMouseButtonDown implements input.Platform.
func (p *Platform) IsMouseButtonDown(b input.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

// IsMouseButtonPressed implements input.Platform.
func (p *Platform) IsMouseButtonPressed(b input.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

// MousePosition implements input.Platform.
func (p *Platform) MousePosition() (x, y int) {
	return ebiten.CursorPosition()
}

// MouseWheelDelta implements input.Platform: the vertical wheel delta
// ebiten reports for the current tick.
func (p *Platform) MouseWheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// FrameDeltaSeconds implements input.Platform.
func (p *Platform) FrameDeltaSeconds() float32 {
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		return 1.0 / 60
	}
	return float32(1.0 / tps)
}

// ScreenSize implements input.Platform.
func (p *Platform) ScreenSize() (w, h int) {
	return p.windowW, p.windowH
}

// PresentFramebuffer implements input.Platform: the renderer's 32bpp LE
// pixel buffer is written directly into the backing ebiten.Image, which
// Driver.Draw then blits to the real screen (§6 framebuffer pixel
// format — ebiten.Image.WritePixels expects the same R,G,B,A byte order).
func (p *Platform) PresentFramebuffer(pixels []uint32, w, h int) {
	if p.screen == nil || p.screen.Bounds().Dx() != w || p.screen.Bounds().Dy() != h {
		p.screen = ebiten.NewImage(w, h)
		p.windowW, p.windowH = w, h
	}
	buf := make([]byte, 0, len(pixels)*4)
	for _, px := range pixels {
		buf = append(buf, byte(px), byte(px>>8), byte(px>>16), byte(px>>24))
	}
	p.screen.WritePixels(buf)
}

// Screen returns the backing image PresentFramebuffer writes to, for
// Driver.Draw to blit onto the real screen.
func (p *Platform) Screen() *ebiten.Image {
	return p.screen
}

// Store implements texture.Store on top of decoded ebiten/image.Image
// pixel buffers. Decoding itself (PNG plus whatever golang.org/x/image
// formats a level's assets use) happens in Load; Get only ever returns
// the already-decoded buffer.
type Store struct {
	fs      fsmount.Filesystem
	images  []*texture.Image
	byPath  map[string]texture.Handle
	byIndex []string
}

// NewStore returns an empty texture Store that resolves Load calls
// against fs. fs may be nil, in which case Load only ever resolves
// textures already registered via LoadDecoded.
func NewStore(fs fsmount.Filesystem) *Store {
	return &Store{fs: fs, byPath: make(map[string]texture.Handle)}
}

// LoadDecoded registers an already-decoded image under path and returns
// its handle, reusing an existing handle if path was already loaded. Load
// calls this after decoding; exported separately so callers that already
// have a decoded image (e.g. a generated icon) can skip the filesystem
// round trip.
func (s *Store) LoadDecoded(path string, img image.Image) texture.Handle {
	if h, ok := s.byPath[path]; ok {
		return h
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = uint32(a>>8)<<24 | uint32(b>>8)<<16 | uint32(g>>8)<<8 | uint32(r>>8)
		}
	}
	handle := texture.Handle(len(s.images))
	s.images = append(s.images, &texture.Image{Width: w, Height: h, Pixels: pixels})
	s.byIndex = append(s.byIndex, path)
	s.byPath[path] = handle
	return handle
}

// Load implements texture.Store: it reads path from the Filesystem
// collaborator and decodes it via the standard library's registered
// image formats plus golang.org/x/image's bmp/tiff/webp decoders (blank-
// imported above), the same "register a decoder, dispatch through
// image.Decode" idiom the example corpus's imagex package uses. Any
// read or decode failure returns texture.None rather than an error,
// matching §7's asset-missing policy.
func (s *Store) Load(path string) texture.Handle {
	if h, ok := s.byPath[path]; ok {
		return h
	}
	if s.fs == nil {
		return texture.None
	}
	data, ok := s.fs.Read(path)
	if !ok {
		return texture.None
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("ebitenplatform: failed to decode texture %q: %v", path, err)
		return texture.None
	}
	return s.LoadDecoded(path, img)
}

// Get implements texture.Store.
func (s *Store) Get(h texture.Handle) *texture.Image {
	if !h.Valid() || int(h) < 0 || int(h) >= len(s.images) {
		return nil
	}
	return s.images[h]
}

// HandleOf implements texture.Store.
func (s *Store) HandleOf(path string) texture.Handle {
	if h, ok := s.byPath[path]; ok {
		return h
	}
	return texture.None
}

// NameOf implements texture.Store.
func (s *Store) NameOf(h texture.Handle) string {
	if !h.Valid() || int(h) < 0 || int(h) >= len(s.byIndex) {
		return ""
	}
	return s.byIndex[h]
}
