package editor

import "github.com/qbradq/boomer/geom"
import "github.com/qbradq/boomer/world"

// dragSession tracks an in-flight drag of whatever was selected when the
// left mouse button went down (§4.F "Drag session lifecycle").
type dragSession struct {
	kind SelectionKind
	idx  int

	startWorldX, startWorldY float32 // mouse-down world position

	// original snapshots the drag may move, keyed by what kind it is.
	origPointIdx []int32 // point indices touched by this drag
	origPoints   []world.Point
	origEntityX, origEntityY, origEntityZ, origEntityYaw float32
}

func clampCoord(v float32) float32 {
	return clampF(v, coordMin, coordMax)
}

// snapToGrid snaps v to the editor's current grid size.
func (e *Editor) snapToGrid(v float32) float32 {
	if e.GridSize <= 0 {
		return v
	}
	return float32(roundToMultiple(v, e.GridSize))
}

func roundToMultiple(v, step float32) float32 {
	if step == 0 {
		return v
	}
	q := v / step
	r := q - float32(int(q))
	if r >= 0.5 {
		q = float32(int(q)) + 1
	} else if r <= -0.5 {
		q = float32(int(q)) - 1
	} else {
		q = float32(int(q))
	}
	return q * step
}

// StartDrag begins a drag session over whatever is currently Selected, if
// the active tool is Select (§4.F "Click handling"). Pushes an undo point
// and records original geometry.
func (e *Editor) StartDrag(tool Tool, worldX, worldY float32) {
	if tool != ToolSelect || e.Selected.Kind == SelectNone {
		return
	}
	e.pushUndo()

	d := &dragSession{kind: e.Selected.Kind, idx: e.Selected.Index, startWorldX: worldX, startWorldY: worldY}

	switch e.Selected.Kind {
	case SelectEntity:
		if e.Entities != nil {
			x, y, z, yaw, ok := e.Entities.Position(e.Selected.Index)
			if ok {
				d.origEntityX, d.origEntityY, d.origEntityZ, d.origEntityYaw = x, y, z, yaw
			}
		}
	case SelectPoint:
		d.origPointIdx = []int32{int32(e.Selected.Index)}
		d.origPoints = []world.Point{e.Map.Points[e.Selected.Index]}
	case SelectWall:
		w := e.Map.Walls[e.Selected.Index]
		d.origPointIdx = []int32{w.P1, w.P2}
		d.origPoints = []world.Point{e.Map.Points[w.P1], e.Map.Points[w.P2]}
	case SelectSector:
		s := e.Map.Sectors[e.Selected.Index]
		start, end := s.WallRange()
		for wi := start; wi < end; wi++ {
			p1 := e.Map.Walls[wi].P1
			d.origPointIdx = append(d.origPointIdx, p1)
			d.origPoints = append(d.origPoints, e.Map.Points[p1])
		}
	}

	e.drag = d
	e.DragInvalid = false
	e.InvalidSector = world.NoSector
}

// UpdateDrag applies the current mouse world position to the in-flight
// drag, snapping the anchor to the grid and translating every other
// touched point by the same delta, then validates the result (§4.F).
func (e *Editor) UpdateDrag(worldX, worldY float32) {
	d := e.drag
	if d == nil {
		return
	}

	switch d.kind {
	case SelectEntity:
		dx, dy := worldX-d.startWorldX, worldY-d.startWorldY
		targetX := clampCoord(e.snapToGrid(d.origEntityX + dx))
		targetY := clampCoord(e.snapToGrid(d.origEntityY + dy))
		if e.Entities != nil {
			e.Entities.SetPosition(d.idx, targetX, targetY, d.origEntityZ, d.origEntityYaw)
		}
		e.validateEntityDrag(targetX, targetY)

	default:
		if len(d.origPointIdx) == 0 {
			return
		}
		dx, dy := worldX-d.startWorldX, worldY-d.startWorldY
		anchor := d.origPoints[0]
		snappedX := clampCoord(e.snapToGrid(anchor.X + dx))
		snappedY := clampCoord(e.snapToGrid(anchor.Y + dy))
		actualDX, actualDY := snappedX-anchor.X, snappedY-anchor.Y

		for i, pi := range d.origPointIdx {
			e.Map.Points[pi] = world.Point{
				X: clampCoord(d.origPoints[i].X + actualDX),
				Y: clampCoord(d.origPoints[i].Y + actualDY),
			}
		}
		e.validateGeometryDrag(d)
	}
}

func (e *Editor) validateEntityDrag(x, y float32) {
	valid := geom.SectorOfPoint(e.Map, world.Point{X: x, Y: y}) != world.NoSector
	e.DragInvalid = !valid
	e.InvalidSector = world.NoSector
}

// validateGeometryDrag re-checks whichever crossing/foreign-point rules
// apply to d.kind (§4.F "After applying, validate").
func (e *Editor) validateGeometryDrag(d *dragSession) {
	touched := make(map[int32]bool, len(d.origPointIdx))
	for _, pi := range d.origPointIdx {
		touched[pi] = true
	}

	invalid := false
	var invalidSector int = world.NoSector

	// Any wall touching a moved point must not cross a non-neighbor wall.
	for wi := range e.Map.Walls {
		w := &e.Map.Walls[wi]
		if !touched[w.P1] && !touched[w.P2] {
			continue
		}
		if geom.WallCrossesAny(e.Map, wi) {
			invalid = true
		}
	}

	// Any sector using a moved point must not contain a foreign point.
	for si := range e.Map.Sectors {
		s := &e.Map.Sectors[si]
		start, end := s.WallRange()
		uses := false
		for wi := start; wi < end; wi++ {
			w := &e.Map.Walls[wi]
			if touched[w.P1] || touched[w.P2] {
				uses = true
				break
			}
		}
		if !uses {
			continue
		}
		if geom.SectorContainsForeignPoint(e.Map, si) {
			invalid = true
			invalidSector = si
		}
	}

	e.DragInvalid = invalid
	e.InvalidSector = invalidSector
}

// EndDrag finishes the in-flight drag: an invalid result reverts to the
// original geometry, a valid result simply commits the in-place
// mutations already applied (§4.F "Release").
func (e *Editor) EndDrag() {
	d := e.drag
	if d == nil {
		return
	}
	if e.DragInvalid {
		e.revertDrag(d)
	}
	e.drag = nil
	e.DragInvalid = false
	e.InvalidSector = world.NoSector
}

// cancelDrag aborts the in-flight drag and always reverts, regardless of
// validity (Escape, right-mouse-down, or an undo/redo shortcut, §5
// "Cancellation").
func (e *Editor) cancelDrag() {
	d := e.drag
	if d == nil {
		return
	}
	e.revertDrag(d)
	e.drag = nil
	e.DragInvalid = false
	e.InvalidSector = world.NoSector
}

func (e *Editor) revertDrag(d *dragSession) {
	switch d.kind {
	case SelectEntity:
		if e.Entities != nil {
			e.Entities.SetPosition(d.idx, d.origEntityX, d.origEntityY, d.origEntityZ, d.origEntityYaw)
		}
	default:
		for i, pi := range d.origPointIdx {
			e.Map.Points[pi] = d.origPoints[i]
		}
	}
}

// Dragging reports whether a drag session is currently in flight.
func (e *Editor) Dragging() bool {
	return e.drag != nil
}
