// Package editor implements the 2D top-down editor state machine (§4.F):
// hover detection, selection, drag sessions with grid snap and validity
// checking, and the handful of always-on shortcuts (undo/redo, pan,
// camera teleport, delete).
//
// The original engine's editor/editor.c is an empty stub, so this
// package's logic is a ground-up implementation of the specification in
// the idiom of the rest of this engine (index-based geometry, explicit
// context structs, no global state) rather than a transliteration.
package editor

import (
	"github.com/qbradq/boomer/entity"
	"github.com/qbradq/boomer/geom"
	"github.com/qbradq/boomer/input"
	"github.com/qbradq/boomer/undo"
	"github.com/qbradq/boomer/world"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// teleportDuration is how long the editor's 2D view eases toward a
// middle-click teleport target (§4.F item 3), rather than snapping the
// view instantly the way the game camera itself does.
const teleportDuration float32 = 0.25

// viewTween holds the in-flight ease for a teleport of the 2D view
// center, mirroring the teacher's scrollAnim pair-of-tweens idiom.
type viewTween struct {
	tweenX, tweenY     *gween.Tween
	doneX, doneY       bool
}

// Tool selects what a left-click starts. Only Select is implemented here;
// Sector and Entity are creation tools the host application may extend.
type Tool int

const (
	ToolSelect Tool = iota
	ToolSector
	ToolEntity
)

// SelectionKind identifies what kind of element is selected or hovered.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectEntity
	SelectPoint
	SelectWall
	SelectSector
)

const (
	minZoom           = 1.0 / 32
	maxZoom           = 32
	minGridSize       = 1
	maxGridSize       = 1024
	hoverPointRadiusPx = 10
	hoverWallRadiusPx  = 10
	entityHoverHalfAABB = 16 // half of the 32-world-unit AABB (§4.F hover hierarchy)
	coordMin          = -32768
	coordMax          = 32767
)

// Selection names one selected or hovered element. Index is a point/wall/
// sector index, or an entity id, depending on Kind.
type Selection struct {
	Kind  SelectionKind
	Index int
}

// Editor owns the per-frame editor state described in §4.F: view camera,
// hover/selection, drag session, and the undo manager.
type Editor struct {
	Map      *world.Map
	Entities entity.Runtime
	Game     *world.Camera // the game camera the editor can teleport (§4.F item 3)
	Bindings *input.Bindings
	Undo     undo.Manager

	ViewCenterX, ViewCenterY float32
	Zoom                     float32
	GridSize                 float32

	Hovered  Selection
	Selected Selection

	drag *dragSession

	viewTween *viewTween

	panning           bool
	panLastX, panLastY int

	// DragInvalid is true while a drag's current target geometry fails
	// validation; the 2D view paints the affected sector red while this
	// is set (§4.F "Drag session lifecycle").
	DragInvalid bool
	// InvalidSector names the sector the invalid-drag overlay should
	// paint, or world.NoSector if none applies.
	InvalidSector int
}

// New returns an Editor over m with sane default view state.
func New(m *world.Map, ents entity.Runtime, game *world.Camera, bindings *input.Bindings) *Editor {
	return &Editor{
		Map:           m,
		Entities:      ents,
		Game:          game,
		Bindings:      bindings,
		Zoom:          16,
		GridSize:      1,
		InvalidSector: world.NoSector,
	}
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScreenToWorld maps a screen-space cursor position to world space using
// the current view (§4.F "Screen→world mapping").
func (e *Editor) ScreenToWorld(mouseX, mouseY, screenW, screenH int) (float32, float32) {
	cx, cy := float32(screenW)/2, float32(screenH)/2
	wx := (float32(mouseX)-cx)/e.Zoom + e.ViewCenterX
	wy := e.ViewCenterY - (float32(mouseY)-cy)/e.Zoom
	return wx, wy
}

func snapshotEntities(rt entity.Runtime) []undo.EntitySnapshot {
	if rt == nil {
		return nil
	}
	caps := entity.Capture(rt)
	out := make([]undo.EntitySnapshot, len(caps))
	for i, c := range caps {
		out[i] = undo.EntitySnapshot{ID: c.ID, X: c.X, Y: c.Y, Z: c.Z, Yaw: c.Yaw, ScriptPath: c.ScriptPath}
	}
	return out
}

func restoreEntities(rt entity.Runtime, snaps []undo.EntitySnapshot) {
	if rt == nil {
		return
	}
	caps := make([]entity.Snapshot, len(snaps))
	for i, s := range snaps {
		caps[i] = entity.Snapshot{ID: s.ID, X: s.X, Y: s.Y, Z: s.Z, Yaw: s.Yaw, ScriptPath: s.ScriptPath}
	}
	entity.Restore(rt, caps)
}

// pushUndo records the current state as an undo point (§4.G).
func (e *Editor) pushUndo() {
	e.Undo.PushState(e.Map, snapshotEntities(e.Entities))
}

// PerformUndo pops the top of the undo stack into the live map/entities.
// A no-op on an empty stack (§7).
func (e *Editor) PerformUndo() {
	e.cancelDrag()
	popped, ok := e.Undo.ApplyUndo(e.Map, snapshotEntities(e.Entities))
	if !ok {
		return
	}
	e.Map.Restore(popped.Map)
	restoreEntities(e.Entities, popped.Entities)
}

// PerformRedo is the symmetric inverse of PerformUndo.
func (e *Editor) PerformRedo() {
	e.cancelDrag()
	popped, ok := e.Undo.ApplyRedo(e.Map, snapshotEntities(e.Entities))
	if !ok {
		return
	}
	e.Map.Restore(popped.Map)
	restoreEntities(e.Entities, popped.Entities)
}

// SectorOfPoint is a thin forward to geom.SectorOfPoint for the Map this
// editor owns.
func (e *Editor) SectorOfPoint(x, y float32) int {
	return geom.SectorOfPoint(e.Map, world.Point{X: x, Y: y})
}

// TeleportViewTo eases the 2D view center toward (x, y) over
// teleportDuration seconds instead of snapping it, the same idiom the
// teacher's Camera.ScrollTo uses for a pair of independent gween.Tweens.
func (e *Editor) TeleportViewTo(x, y float32) {
	e.viewTween = &viewTween{
		tweenX: gween.New(e.ViewCenterX, x, teleportDuration, ease.OutCubic),
		tweenY: gween.New(e.ViewCenterY, y, teleportDuration, ease.OutCubic),
	}
}

// UpdateTweens advances any in-flight view teleport by dt seconds
// (§4.F item 3). Call once per frame before reading ViewCenterX/Y.
func (e *Editor) UpdateTweens(dt float32) {
	t := e.viewTween
	if t == nil {
		return
	}
	if !t.doneX {
		v, done := t.tweenX.Update(dt)
		e.ViewCenterX = v
		t.doneX = done
	}
	if !t.doneY {
		v, done := t.tweenY.Update(dt)
		e.ViewCenterY = v
		t.doneY = done
	}
	if t.doneX && t.doneY {
		e.viewTween = nil
	}
}
