package editor

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/qbradq/boomer/input"
	"github.com/qbradq/boomer/world"
)

// Frame runs one frame of editor input handling (§4.F "Input handling per
// frame"), in the order the spec lists: wheel zoom, right-drag pan/
// cancel, middle-click teleport, Escape cancel, undo/redo, delete,
// hover, then left-click/drag.
func (e *Editor) Frame(p input.Platform, tool Tool) {
	screenW, screenH := p.ScreenSize()
	mouseX, mouseY := p.MousePosition()

	// 1. Mouse wheel zoom, doubling/halving per notch.
	if wheel := p.MouseWheelDelta(); wheel != 0 {
		if wheel > 0 {
			e.Zoom *= 2
		} else {
			e.Zoom /= 2
		}
		e.Zoom = clampF(e.Zoom, minZoom, maxZoom)
	}
	e.GridSize = clampF(e.GridSize, minGridSize, maxGridSize)

	// 2. Right-mouse drag pans, or cancels an in-flight drag instead.
	rightDown := p.IsMouseButtonDown(ebiten.MouseButtonRight)
	if rightDown {
		if e.Dragging() {
			e.cancelDrag()
		} else if e.panning {
			dx := float32(mouseX - e.panLastX)
			dy := float32(mouseY - e.panLastY)
			e.ViewCenterX -= dx / e.Zoom
			e.ViewCenterY += dy / e.Zoom
			e.panLastX, e.panLastY = mouseX, mouseY
		} else {
			e.panning = true
			e.panLastX, e.panLastY = mouseX, mouseY
		}
	} else {
		e.panning = false
	}

	// 3. Middle-mouse click teleports the game camera; the 2D view eases
	// toward the same point rather than snapping (§4.F item 3).
	if p.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		wx, wy := e.ScreenToWorld(mouseX, mouseY, screenW, screenH)
		e.TeleportViewTo(wx, wy)
		if e.Game != nil {
			e.Game.X, e.Game.Y = wx, wy
			if sector := e.SectorOfPoint(wx, wy); sector != world.NoSector {
				e.Game.Z = e.Map.Sectors[sector].FloorHeight + 50
			}
		}
	}
	e.UpdateTweens(p.FrameDeltaSeconds())

	// 4. Escape cancels an in-flight drag.
	if p.IsKeyPressed(ebiten.KeyEscape) {
		e.cancelDrag()
	}

	// 5. Ctrl+Z / Ctrl+Y undo/redo, canceling any in-flight drag first.
	ctrl := p.IsKeyDown(ebiten.KeyControlLeft) || p.IsKeyDown(ebiten.KeyControlRight)
	if ctrl && p.IsKeyPressed(ebiten.KeyZ) {
		e.PerformUndo()
	}
	if ctrl && p.IsKeyPressed(ebiten.KeyY) {
		e.PerformRedo()
	}

	// 6. Delete with an entity selected.
	if p.IsKeyPressed(ebiten.KeyDelete) && e.Selected.Kind == SelectEntity {
		e.pushUndo()
		if e.Entities != nil {
			e.Entities.Destroy(e.Selected.Index)
		}
		e.Selected = Selection{Kind: SelectNone}
	}

	e.UpdateHover(mouseX, mouseY, screenW, screenH)

	if p.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		e.click(tool, mouseX, mouseY, screenW, screenH)
	} else if p.IsMouseButtonDown(ebiten.MouseButtonLeft) && e.Dragging() {
		wx, wy := e.ScreenToWorld(mouseX, mouseY, screenW, screenH)
		e.UpdateDrag(wx, wy)
	} else if e.Dragging() {
		e.EndDrag()
	}
}

// click implements §4.F "Click handling": select the current hover (or
// clear selection if nothing is hovered), then start a drag if the tool
// is Select.
func (e *Editor) click(tool Tool, mouseX, mouseY, screenW, screenH int) {
	e.Selected = e.Hovered
	if e.Selected.Kind == SelectNone {
		return
	}
	wx, wy := e.ScreenToWorld(mouseX, mouseY, screenW, screenH)
	e.StartDrag(tool, wx, wy)
}
