package editor

import (
	"math"

	"github.com/qbradq/boomer/geom"
	"github.com/qbradq/boomer/world"
)

// worldToScreen mirrors render.View.WorldToScreen without importing
// render, so editor's hit-testing stays independent of the renderer's
// viewport type.
func (e *Editor) worldToScreen(wx, wy float32, screenW, screenH int) (float32, float32) {
	cx, cy := float32(screenW)/2, float32(screenH)/2
	sx := cx + (wx-e.ViewCenterX)*e.Zoom
	sy := cy - (wy-e.ViewCenterY)*e.Zoom
	return sx, sy
}

func distPxSq(ax, ay, bx, by float32) float32 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// UpdateHover recomputes e.Hovered from the cursor's screen position,
// following the priority hierarchy of §4.F: entity, then point, then
// wall (portal walls only hoverable from their owning sector's inside),
// then sector. Each lower tier only runs if the ones above found nothing.
func (e *Editor) UpdateHover(mouseX, mouseY, screenW, screenH int) {
	e.Hovered = Selection{Kind: SelectNone}
	wx, wy := e.ScreenToWorld(mouseX, mouseY, screenW, screenH)

	if e.hoverEntity(wx, wy) {
		return
	}
	if e.hoverPoint(float32(mouseX), float32(mouseY), screenW, screenH) {
		return
	}
	if e.hoverWall(float32(mouseX), float32(mouseY), wx, wy, screenW, screenH) {
		return
	}
	e.hoverSector(wx, wy)
}

func (e *Editor) hoverEntity(wx, wy float32) bool {
	if e.Entities == nil {
		return false
	}
	for _, id := range e.Entities.Active() {
		ex, ey, _, _, ok := e.Entities.Position(id)
		if !ok {
			continue
		}
		if wx >= ex-entityHoverHalfAABB && wx <= ex+entityHoverHalfAABB &&
			wy >= ey-entityHoverHalfAABB && wy <= ey+entityHoverHalfAABB {
			e.Hovered = Selection{Kind: SelectEntity, Index: id}
			return true
		}
	}
	return false
}

func (e *Editor) hoverPoint(mouseX float32, mouseY float32, screenW, screenH int) bool {
	radiusSq := float32(hoverPointRadiusPx * hoverPointRadiusPx)
	for i, p := range e.Map.Points {
		sx, sy := e.worldToScreen(p.X, p.Y, screenW, screenH)
		if distPxSq(sx, sy, mouseX, mouseY) <= radiusSq {
			e.Hovered = Selection{Kind: SelectPoint, Index: i}
			return true
		}
	}
	return false
}

func (e *Editor) hoverWall(mouseX, mouseY float32, worldX, worldY float32, screenW, screenH int) bool {
	radiusPx := float32(hoverWallRadiusPx)
	for i := range e.Map.Walls {
		w := &e.Map.Walls[i]
		if int(w.P1) >= len(e.Map.Points) || int(w.P2) >= len(e.Map.Points) {
			continue
		}
		p1, p2 := e.Map.Points[w.P1], e.Map.Points[w.P2]
		x1, y1 := e.worldToScreen(p1.X, p1.Y, screenW, screenH)
		x2, y2 := e.worldToScreen(p2.X, p2.Y, screenW, screenH)
		if distToSegmentPx(mouseX, mouseY, x1, y1, x2, y2) > radiusPx {
			continue
		}
		if w.IsPortal() {
			owner := geom.SectorOfWall(e.Map, i)
			inside := geom.SectorOfPoint(e.Map, world.Point{X: worldX, Y: worldY})
			if owner == world.NoSector || inside != owner {
				continue // portal walls are only hoverable from their owning sector's inside
			}
		}
		e.Hovered = Selection{Kind: SelectWall, Index: i}
		return true
	}
	return false
}

func distToSegmentPx(px, py, x1, y1, x2, y2 float32) float32 {
	dx, dy := x2-x1, y2-y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return float32(math.Hypot(float64(px-x1), float64(py-y1)))
	}
	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	cx, cy := x1+t*dx, y1+t*dy
	return float32(math.Hypot(float64(px-cx), float64(py-cy)))
}

func (e *Editor) hoverSector(wx, wy float32) {
	s := geom.SectorOfPoint(e.Map, world.Point{X: wx, Y: wy})
	if s == world.NoSector {
		return
	}
	e.Hovered = Selection{Kind: SelectSector, Index: s}
}
