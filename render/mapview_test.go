package render

import (
	"testing"

	"github.com/qbradq/boomer/world"
)

func TestWorldToScreenRoundTrip(t *testing.T) {
	v := View{CenterX: 5, CenterY: -3, Zoom: 10, Width: 200, Height: 150}
	wx, wy := float32(7.5), float32(-1.25)
	sx, sy := v.WorldToScreen(wx, wy)
	gotX, gotY := v.ScreenToWorld(sx, sy)
	if diff(gotX, wx) > 0.2 || diff(gotY, wy) > 0.2 {
		t.Fatalf("round trip mismatch: got (%v,%v) want close to (%v,%v)", gotX, gotY, wx, wy)
	}
}

func diff(a, b float32) float32 {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d
}

func TestWorldToScreenYAxisInverted(t *testing.T) {
	v := View{Zoom: 1, Width: 100, Height: 100}
	_, sy1 := v.WorldToScreen(0, 1)
	_, sy2 := v.WorldToScreen(0, -1)
	if sy1 >= sy2 {
		t.Fatalf("world +Y must map to a smaller screen Y than world -Y, got %d vs %d", sy1, sy2)
	}
}

func TestMapViewRenderDoesNotPanic(t *testing.T) {
	m := singleRoom()
	fb := NewFramebuffer(64, 48)
	v := View{CenterX: 2, CenterY: 2, Zoom: 8, Width: 64, Height: 48}
	mv := &MapView{GridSize: 1}
	cam := world.Camera{X: 2, Y: 2, Yaw: 0}
	entities := []world.Entity{{ID: 1, X: 1, Y: 1}}
	mv.Render(fb, m, v, cam, entities, Highlight{Kind: HoverWall, Index: 0})
}

func TestOverlayColorPriority(t *testing.T) {
	selected := Highlight{Kind: HoverWall, Index: 0, Selected: true}
	hovered := Highlight{Kind: HoverWall, Index: 0, Selected: false}
	none := Highlight{}

	if got := overlayColor(selected, ColorSolidWall); got != ColorSelected {
		t.Fatalf("selected element must use the selected color, got %#x", got)
	}
	if got := overlayColor(hovered, ColorSolidWall); got != ColorHover {
		t.Fatalf("hovered element must use the hover color, got %#x", got)
	}
	if got := overlayColor(none, ColorSolidWall); got != ColorSolidWall {
		t.Fatalf("unhighlighted element must use its normal color, got %#x", got)
	}
}
