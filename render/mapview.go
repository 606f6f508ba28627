package render

import (
	"math"

	"github.com/qbradq/boomer/world"
)

// Colors used by the 2D map view. A highlighted element is drawn in
// ColorSelected when its Highlight is marked Selected and in ColorHover
// otherwise (see overlayColor); every other element keeps its normal color.
const (
	ColorGrid       = 0xFF3C3C3C
	ColorSolidWall  = 0xFFC8C8C8
	ColorPortalWall = 0xFF5050C8
	ColorPoint      = 0xFFFFFFFF
	ColorEntity     = 0xFF50C850
	ColorCamera     = 0xFFFFD200
	ColorHover      = 0xFFFFC800
	ColorSelected   = 0xFFFF3232
)

// View describes the 2D editor camera: a world-space focus point, a zoom
// factor (screen pixels per world unit — larger Zoom means less world fits
// on screen), and the viewport size in pixels (§4.E "Screen mapping").
type View struct {
	CenterX, CenterY float32
	Zoom             float32 // the editor clamps its own zoom to [1/32, 32]
	Width, Height    int
}

// WorldToScreen converts a world point to a screen pixel, with the Y axis
// inverted (world +Y is "up", screen +Y is "down") per §4.E.
func (v View) WorldToScreen(wx, wy float32) (int, int) {
	sx := float32(v.Width)/2 + (wx-v.CenterX)*v.Zoom
	sy := float32(v.Height)/2 - (wy-v.CenterY)*v.Zoom
	return int(math.Round(float64(sx))), int(math.Round(float64(sy)))
}

// ScreenToWorld is the inverse of WorldToScreen, used to map a cursor
// position into world space for hit testing and dragging (§4.F).
func (v View) ScreenToWorld(sx, sy int) (float32, float32) {
	wx := v.CenterX + (float32(sx)-float32(v.Width)/2)/v.Zoom
	wy := v.CenterY - (float32(sy)-float32(v.Height)/2)/v.Zoom
	return wx, wy
}

// HoverKind distinguishes what a cursor is currently over, in the
// hierarchy required by §4.F: entity beats point beats wall beats sector.
type HoverKind int

const (
	HoverNone HoverKind = iota
	HoverSector
	HoverWall
	HoverPoint
	HoverEntity
)

// Highlight marks a single element as hovered or selected for the overlay
// pass. Index is a point/wall/sector index or an entity id depending on
// Kind; Selected takes priority over merely-hovered when both are set for
// the same element (§4.E "Overlay color priority").
type Highlight struct {
	Kind     HoverKind
	Index    int
	Selected bool
}

func overlayColor(h Highlight, normalColor uint32) uint32 {
	if h.Kind == HoverNone {
		return normalColor
	}
	if h.Selected {
		return ColorSelected
	}
	return ColorHover
}

// MapView renders the 2D top-down editor view (§4.E): a grid, every wall
// colored by portal/solid, an inward-normal tick per wall, a glyph at
// every point, a glyph per entity, and a camera triangle. highlight marks
// at most one hovered/selected element, matching the editor's
// single-hover-target rule.
type MapView struct {
	GridSize float32 // world units between grid lines; 0 disables the grid
}

// Render draws m into fb under the given view, camera pose, and entity
// list, applying highlight to whichever element it names.
func (mv *MapView) Render(fb *Framebuffer, m *world.Map, v View, cam world.Camera, entities []world.Entity, highlight Highlight) {
	fb.Clear(colorClear)
	mv.drawGrid(fb, v)
	mv.drawSectors(fb, m, v, highlight)
	mv.drawWalls(fb, m, v, highlight)
	mv.drawPoints(fb, m, v, highlight)
	mv.drawEntities(fb, entities, v, highlight)
	mv.drawCamera(fb, v, cam)
}

func (mv *MapView) drawGrid(fb *Framebuffer, v View) {
	if mv.GridSize <= 0 {
		return
	}
	step := mv.GridSize * v.Zoom
	if step < 2 {
		return // grid too dense to be useful, skip entirely rather than thrash every pixel
	}
	originX, originY := v.WorldToScreen(0, 0)
	for x := float32(originX); x < float32(fb.Width); x += step {
		drawVLine(fb, int(x), 0, fb.Height-1, ColorGrid)
	}
	for x := float32(originX); x >= 0; x -= step {
		drawVLine(fb, int(x), 0, fb.Height-1, ColorGrid)
	}
	for y := float32(originY); y < float32(fb.Height); y += step {
		drawHLine(fb, 0, fb.Width-1, int(y), ColorGrid)
	}
	for y := float32(originY); y >= 0; y -= step {
		drawHLine(fb, 0, fb.Width-1, int(y), ColorGrid)
	}
}

func drawVLine(fb *Framebuffer, x, y1, y2 int, color uint32) {
	fb.VertLine(x, y1, y2, color)
}

func drawHLine(fb *Framebuffer, x1, x2, y int, color uint32) {
	for x := x1; x <= x2; x++ {
		fb.Set(x, y, color)
	}
}

func drawLine(fb *Framebuffer, x1, y1, x2, y2 int, color uint32) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		fb.Set(x, y, color)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sectors are drawn first, as a faint fill-less pass (§4.E sectors have no
// fill, only their bounding walls), but a hovered/selected sector still
// needs an overlay cue: a filled hover dot at its centroid.
func (mv *MapView) drawSectors(fb *Framebuffer, m *world.Map, v View, highlight Highlight) {
	if highlight.Kind != HoverSector {
		return
	}
	if highlight.Index < 0 || highlight.Index >= len(m.Sectors) {
		return
	}
	s := &m.Sectors[highlight.Index]
	start, end := s.WallRange()
	var cx, cy float32
	n := 0
	for wi := start; wi < end; wi++ {
		p := m.Points[m.Walls[wi].P1]
		cx += p.X
		cy += p.Y
		n++
	}
	if n == 0 {
		return
	}
	sx, sy := v.WorldToScreen(cx/float32(n), cy/float32(n))
	color := overlayColor(highlight, ColorSolidWall)
	for dx := -3; dx <= 3; dx++ {
		for dy := -3; dy <= 3; dy++ {
			fb.Set(sx+dx, sy+dy, color)
		}
	}
}

func (mv *MapView) drawWalls(fb *Framebuffer, m *world.Map, v View, highlight Highlight) {
	for i := range m.Walls {
		w := &m.Walls[i]
		if int(w.P1) >= len(m.Points) || int(w.P2) >= len(m.Points) {
			continue
		}
		p1, p2 := m.Points[w.P1], m.Points[w.P2]
		x1, y1 := v.WorldToScreen(p1.X, p1.Y)
		x2, y2 := v.WorldToScreen(p2.X, p2.Y)

		base := uint32(ColorSolidWall)
		if w.IsPortal() {
			base = ColorPortalWall
		}
		h := Highlight{}
		if highlight.Kind == HoverWall && highlight.Index == i {
			h = highlight
		}
		color := overlayColor(h, base)
		drawLine(fb, x1, y1, x2, y2, color)

		// Inward normal tick at the wall midpoint (§4.E): rotate the wall
		// direction 90 degrees to its left. "Inward" is a convention: the
		// tick is inward only for walls wound counter-clockwise, and winding
		// is not checked here or anywhere else.
		mx, my := (p1.X+p2.X)/2, (p1.Y+p2.Y)/2
		dx, dy := p2.X-p1.X, p2.Y-p1.Y
		length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		if length == 0 {
			continue
		}
		nx, ny := -dy/length, dx/length
		tickLen := float32(0.25)
		tx1, ty1 := v.WorldToScreen(mx, my)
		tx2, ty2 := v.WorldToScreen(mx+nx*tickLen, my+ny*tickLen)
		drawLine(fb, tx1, ty1, tx2, ty2, color)
	}
}

func (mv *MapView) drawPoints(fb *Framebuffer, m *world.Map, v View, highlight Highlight) {
	for i := range m.Points {
		p := m.Points[i]
		sx, sy := v.WorldToScreen(p.X, p.Y)
		h := Highlight{}
		if highlight.Kind == HoverPoint && highlight.Index == i {
			h = highlight
		}
		color := overlayColor(h, ColorPoint)
		for dx := -2; dx <= 2; dx++ {
			for dy := -2; dy <= 2; dy++ {
				fb.Set(sx+dx, sy+dy, color)
			}
		}
	}
}

func (mv *MapView) drawEntities(fb *Framebuffer, entities []world.Entity, v View, highlight Highlight) {
	for _, e := range entities {
		sx, sy := v.WorldToScreen(e.X, e.Y)
		h := Highlight{}
		if highlight.Kind == HoverEntity && highlight.Index == e.ID {
			h = highlight
		}
		color := overlayColor(h, ColorEntity)
		for dx := -3; dx <= 3; dx++ {
			for dy := -3; dy <= 3; dy++ {
				if dx*dx+dy*dy <= 9 {
					fb.Set(sx+dx, sy+dy, color)
				}
			}
		}
		fx, fy := v.WorldToScreen(e.X+float32(math.Cos(float64(e.Yaw)))*0.5, e.Y+float32(math.Sin(float64(e.Yaw)))*0.5)
		drawLine(fb, sx, sy, fx, fy, color)
	}
}

// drawCamera draws a small triangle glyph at the game camera's position,
// pointed along its yaw, so the editor shows where the 3D view currently
// looks from (§4.E).
func (mv *MapView) drawCamera(fb *Framebuffer, v View, cam world.Camera) {
	const glyphLen = 0.6
	const glyphWidth = 0.35
	tip := float64(cam.Yaw)
	left := tip + 2.5
	right := tip - 2.5

	tipX, tipY := cam.X+float32(math.Cos(tip))*glyphLen, cam.Y+float32(math.Sin(tip))*glyphLen
	leftX, leftY := cam.X+float32(math.Cos(left))*glyphWidth, cam.Y+float32(math.Sin(left))*glyphWidth
	rightX, rightY := cam.X+float32(math.Cos(right))*glyphWidth, cam.Y+float32(math.Sin(right))*glyphWidth

	tsx, tsy := v.WorldToScreen(tipX, tipY)
	lsx, lsy := v.WorldToScreen(leftX, leftY)
	rsx, rsy := v.WorldToScreen(rightX, rightY)

	drawLine(fb, tsx, tsy, lsx, lsy, ColorCamera)
	drawLine(fb, lsx, lsy, rsx, rsy, ColorCamera)
	drawLine(fb, rsx, rsy, tsx, tsy, ColorCamera)
}
