package render

import (
	"math"

	"github.com/qbradq/boomer/texture"
	"github.com/qbradq/boomer/world"
)

const (
	fovH          = math.Pi / 2 // 90 degrees horizontal field of view
	nearZSolid    = 0.1
	nearZPortal   = 0.005 // smaller near clip for portals, avoids flicker at the plane
	maxRecursion  = 16
	texelsPerUnit = 64 // 1 world unit = 64 texture pixels, matching the original renderer
)

// fallback colors for missing textures (§7 asset-missing policy).
const (
	colorFallbackWall  = 0xFF646464 // mid gray, ARGB-in-LE
	colorFallbackStep  = 0xFF505050
	colorFallbackFlat  = 0xFF323232
	colorClear         = 0xFF1E1414
)

// Portal renders the 3D view of m from cam's point of view into fb using
// the recursive portal-clipping algorithm (§4.D). store resolves texture
// handles to pixel data; store may be nil, in which case every surface
// draws the gray fallback.
type Portal struct {
	Store texture.Store
}

// Render clears fb and draws the scene visible from cam (§4.D). A camera
// outside any sector falls back to sector 0, per §4.D failure semantics; an
// empty map (no sectors) leaves fb cleared.
func (p *Portal) Render(fb *Framebuffer, m *world.Map, cam world.Camera) {
	fb.Clear(colorClear)
	if len(m.Sectors) == 0 {
		return
	}

	start := sectorOfPoint(m, cam.X, cam.Y)
	if start < 0 {
		start = 0
	}

	yTop := make([]int32, fb.Width)
	yBot := make([]int32, fb.Width)
	for i := range yTop {
		yTop[i] = 0
		yBot[i] = int32(fb.Height - 1)
	}

	p.renderSector(fb, m, cam, start, 0, fb.Width, yTop, yBot, 0)
}

// sectorOfPoint is a tiny local copy of geom.SectorOfPoint's ray cast, so
// that render does not import geom. No import cycle forces this (geom
// depends only on world); keeping the renderer's sector-location
// self-contained matches the original renderer owning its own GetSectorAt. See geom.SectorOfPoint for the
// editor-facing, fully documented version of the same test.
func sectorOfPoint(m *world.Map, x, y float32) int {
	for i := range m.Sectors {
		s := &m.Sectors[i]
		start, end := s.WallRange()
		inside := false
		for wi := start; wi < end; wi++ {
			w := &m.Walls[wi]
			p1, p2 := m.Points[w.P1], m.Points[w.P2]
			if (p1.Y > y) != (p2.Y > y) {
				xCross := (p2.X-p1.X)*(y-p1.Y)/(p2.Y-p1.Y) + p1.X
				if x < xCross {
					inside = !inside
				}
			}
		}
		if inside {
			return i
		}
	}
	return world.NoSector
}

// camPoint is a world point transformed into camera space: X is forward
// depth, Y is lateral (positive = left), Z is vertical (§4.D coordinate
// convention).
type camPoint struct {
	X, Y, Z float32
}

func toCameraSpace(wx, wy, wz float32, cam world.Camera) camPoint {
	lx := wx - cam.X
	ly := wy - cam.Y
	lz := wz - cam.Z
	cs, sn := float32(math.Cos(float64(-cam.Yaw))), float32(math.Sin(float64(-cam.Yaw)))
	return camPoint{
		X: lx*cs - ly*sn,
		Y: -(lx*sn + ly*cs),
		Z: lz,
	}
}

func lerpCam(a, b camPoint, t float32) camPoint {
	return camPoint{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// clipNear clips segment p1-p2 against the near plane x=nearZ. Returns
// false if the whole segment is behind the plane. On a partial clip, the
// behind endpoint is replaced by the interpolated point and its t value
// (0 or 1 originally) becomes the interpolation parameter, for later UV
// interpolation (§4.D "Near-plane clip").
func clipNear(p1, p2 camPoint, nearZ float32) (out1, out2 camPoint, t1, t2 float32, ok bool) {
	out1, out2 = p1, p2
	t1, t2 = 0, 1
	if p1.X < nearZ && p2.X < nearZ {
		return out1, out2, t1, t2, false
	}
	if p1.X >= nearZ && p2.X >= nearZ {
		return out1, out2, t1, t2, true
	}
	t := (nearZ - p1.X) / (p2.X - p1.X)
	mid := lerpCam(p1, p2, t)
	mid.X = nearZ
	if p1.X < nearZ {
		out1 = mid
		t1 = t
	} else {
		out2 = mid
		t2 = t
	}
	return out1, out2, t1, t2, true
}

func projectScale(screenWidth int) float32 {
	return (float32(screenWidth) / 2) / float32(math.Tan(fovH/2))
}

func projectX(p camPoint, screenWidth int, scale float32) float32 {
	return float32(screenWidth)/2 + (p.Y/p.X)*scale
}

func projectY(heightCam float32, px float32, screenHeight int, scale float32) float32 {
	return float32(screenHeight)/2 - (heightCam/px)*scale
}

func textureOf(store texture.Store, id int32) *texture.Image {
	if store == nil || id == world.NoTexture {
		return nil
	}
	return store.Get(texture.Handle(id))
}

// renderSector is the recursive per-sector, per-column walk described in
// §4.D. yTop/yBot are indexed by absolute screen column and give the
// currently unoccluded vertical window for that column; they are mutated
// in place as columns close off, and fresh narrowed copies are built for
// any portal recursion.
func (p *Portal) renderSector(fb *Framebuffer, m *world.Map, cam world.Camera, sectorID, minX, maxX int, yTop, yBot []int32, depth int) {
	if depth > maxRecursion || minX >= maxX {
		return
	}
	if sectorID < 0 || sectorID >= len(m.Sectors) {
		return
	}
	sector := &m.Sectors[sectorID]
	scale := projectScale(fb.Width)

	floorTex := textureOf(p.Store, sector.FloorTexture)
	ceilTex := textureOf(p.Store, sector.CeilTexture)

	start, end := sector.WallRange()
	for wi := start; wi < end; wi++ {
		if wi < 0 || int(wi) >= len(m.Walls) {
			continue // §4.D failure semantics: out-of-range wall index is skipped
		}
		w := &m.Walls[wi]
		if int(w.P1) >= len(m.Points) || int(w.P2) >= len(m.Points) {
			continue
		}

		// Winding enforcement: project with endpoints swapped (§4.D).
		p1w, p2w := m.Points[w.P2], m.Points[w.P1]
		dx, dy := p2w.X-p1w.X, p2w.Y-p1w.Y
		wallLen := float32(math.Sqrt(float64(dx*dx + dy*dy)))

		nearZ := float32(nearZSolid)
		if w.IsPortal() {
			nearZ = nearZPortal
		}

		p1c := toCameraSpace(p1w.X, p1w.Y, 0, cam)
		p2c := toCameraSpace(p2w.X, p2w.Y, 0, cam)
		c1, c2, t1Clip, t2Clip, ok := clipNear(p1c, p2c, nearZ)
		if !ok {
			continue
		}

		x1 := projectX(c1, fb.Width, scale)
		x2 := projectX(c2, fb.Width, scale)
		if x1 >= x2 {
			continue // back-facing under the chosen winding convention
		}

		drawX1 := int(math.Ceil(float64(x1)))
		drawX2 := int(math.Ceil(float64(x2)))
		if drawX1 < minX {
			drawX1 = minX
		}
		if drawX2 > maxX {
			drawX2 = maxX
		}
		if drawX1 >= drawX2 {
			continue
		}

		ceilH := sector.CeilHeight - cam.Z
		floorH := sector.FloorHeight - cam.Z
		y1a := projectY(ceilH, c1.X, fb.Height, scale)
		y1b := projectY(floorH, c1.X, fb.Height, scale)
		y2a := projectY(ceilH, c2.X, fb.Height, scale)
		y2b := projectY(floorH, c2.X, fb.Height, scale)

		iz1, iz2 := 1/c1.X, 1/c2.X
		uScale := wallLen * texelsPerUnit
		u1, u2 := t1Clip*uScale, t2Clip*uScale
		uz1, uz2 := u1*iz1, u2*iz2

		portal := w.IsPortal()
		var nextTop, nextBot []int32
		if portal {
			nextTop = make([]int32, fb.Width)
			nextBot = make([]int32, fb.Width)
		}

		var nextS *world.Sector
		var nCeilH, nFloorH float32
		if portal && int(w.NextSector) >= 0 && int(w.NextSector) < len(m.Sectors) {
			nextS = &m.Sectors[w.NextSector]
			nCeilH = nextS.CeilHeight - cam.Z
			nFloorH = nextS.FloorHeight - cam.Z
		}

		wallTex := textureOf(p.Store, w.Texture)
		topTex := textureOf(p.Store, w.TopTexture)
		botTex := textureOf(p.Store, w.BottomTexture)

		for x := drawX1; x < drawX2; x++ {
			tScreen := (float32(x) - x1) / (x2 - x1)

			yCeilF := y1a + (y2a-y1a)*tScreen
			yFloorF := y1b + (y2b-y1b)*tScreen
			yCeil := int32(yCeilF)
			yFloor := int32(yFloorF)

			cyTop := yTop[x]
			cyBot := yBot[x]

			if yCeil > cyTop {
				hi := yCeil
				if cyBot < hi {
					hi = cyBot
				}
				p.drawFlat(fb, x, int(cyTop), int(hi), sector.CeilHeight-cam.Z, cam, scale, ceilTex)
			}
			if yFloor < cyBot {
				lo := yFloor
				if cyTop > lo {
					lo = cyTop
				}
				p.drawFlat(fb, x, int(lo), int(cyBot), cam.Z-sector.FloorHeight, cam, scale, floorTex)
			}

			wyTop, wyBot := cyTop, cyBot

			if portal && nextS != nil {
				ny1a := projectY(nCeilH, c1.X, fb.Height, scale)
				ny1b := projectY(nFloorH, c1.X, fb.Height, scale)
				ny2a := projectY(nCeilH, c2.X, fb.Height, scale)
				ny2b := projectY(nFloorH, c2.X, fb.Height, scale)
				nyCeilF := ny1a + (ny2a-ny1a)*tScreen
				nyFloorF := ny1b + (ny2b-ny1b)*tScreen
				nyCeil := int32(nyCeilF)
				nyFloor := int32(nyFloorF)

				// Upper transom: current ceiling above neighbor ceiling.
				uStart, uEnd := maxI32(yCeil, cyTop), minI32(nyCeil, cyBot)
				if uStart < uEnd {
					drawTexturedColumn(fb, x, int(uStart), int(uEnd-1), topTex, iz1, iz2, uz1, uz2, tScreen,
						sector.CeilHeight-nextS.CeilHeight, yCeilF, nyCeilF, colorFallbackStep)
				}

				// Lower riser: neighbor floor above current floor.
				bStart, bEnd := maxI32(nyFloor, cyTop), minI32(yFloor, cyBot)
				if bStart < bEnd {
					drawTexturedColumn(fb, x, int(bStart), int(bEnd-1), botTex, iz1, iz2, uz1, uz2, tScreen,
						nextS.FloorHeight-sector.FloorHeight, nyFloorF, yFloorF, colorFallbackStep)
				}

				wyTop = maxI32(nyCeil, cyTop)
				wyBot = minI32(nyFloor, cyBot)
			} else if !portal {
				wStart, wEnd := maxI32(yCeil, cyTop), minI32(yFloor, cyBot)
				if wStart < wEnd {
					drawTexturedColumn(fb, x, int(wStart), int(wEnd-1), wallTex, iz1, iz2, uz1, uz2, tScreen,
						sector.CeilHeight-sector.FloorHeight, yCeilF, yFloorF, colorFallbackWall)
				}
			}

			if portal {
				if wyTop < wyBot {
					nextTop[x] = wyTop
					nextBot[x] = wyBot
				} else {
					nextTop[x] = int32(fb.Height)
					nextBot[x] = -1
				}
			}
		}

		if portal {
			p.renderSector(fb, m, cam, int(w.NextSector), drawX1, drawX2, nextTop, nextBot, depth+1)
		}
	}
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// drawTexturedColumn samples a perspective-correct vertical texture strip
// into column x over [yStart, yEnd] (inclusive), where [yTopF, yBotF] is
// the unclipped floating-point span the strip spans across and worldH is
// the world-space height that span covers (§4.D "Textured wall column").
// tex == nil draws fallback instead.
func drawTexturedColumn(fb *Framebuffer, x, yStart, yEnd int, tex *texture.Image, iz1, iz2, uz1, uz2, tScreen, worldH, yTopF, yBotF float32, fallback uint32) {
	if yStart > yEnd {
		return
	}
	if tex == nil {
		fb.VertLine(x, yStart, yEnd, fallback)
		return
	}

	iz := iz1 + (iz2-iz1)*tScreen
	uz := uz1 + (uz2-uz1)*tScreen
	texX := int(uz / iz)

	pixelH := yBotF - yTopF
	if pixelH == 0 {
		return
	}
	vScale := worldH * texelsPerUnit
	vStep := vScale / pixelH
	v := (float32(yStart) - yTopF) * vStep

	for y := yStart; y <= yEnd; y++ {
		texY := int(math.Floor(float64(v)))
		color := tex.At(texX, texY)
		fb.Set(x, y, color)
		v += vStep
	}
}

// drawFlat casts one column of a floor or ceiling span (§4.D "Flat
// caster"). heightDiff is the signed distance between the flat's world
// height and the camera's, matching the convention used by the two call
// sites above (ceiling uses ceil-cam.Z, floor uses cam.Z-floor).
func (p *Portal) drawFlat(fb *Framebuffer, x, y1, y2 int, heightDiff float32, cam world.Camera, scale float32, tex *texture.Image) {
	if y1 > y2 {
		return
	}
	if tex == nil {
		fb.VertLine(x, y1, y2, colorFallbackFlat)
		return
	}

	centerX := float32(fb.Width) / 2
	centerY := float32(fb.Height) / 2
	viewX := (float32(x) - centerX) / scale
	cs, sn := float32(math.Cos(float64(cam.Yaw))), float32(math.Sin(float64(cam.Yaw)))
	rdx := cs + viewX*sn
	rdy := sn - viewX*cs

	for y := y1; y <= y2; y++ {
		// Skip the horizon row unconditionally to avoid the projection
		// singularity at y == H/2 (§9 open question, resolved here).
		if y == int(centerY) {
			continue
		}
		z := heightDiff * scale / float32(y-int(centerY))
		if z < 0 {
			z = -z
		}
		wx := cam.X + rdx*z
		wy := cam.Y + rdy*z

		texX := int(math.Floor(float64(wx * texelsPerUnit)))
		texY := int(math.Floor(float64(wy * texelsPerUnit)))
		fb.Set(x, y, tex.At(texX, texY))
	}
}
