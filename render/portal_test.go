package render

import (
	"testing"

	"github.com/qbradq/boomer/world"
)

// singleRoom mirrors spec.md scenario S1: a 4x4 square sector, viewed from
// its center.
func singleRoom() *world.Map {
	return &world.Map{
		Points: []world.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		Walls: []world.Wall{
			{P1: 0, P2: 1, NextSector: world.NoSector, Texture: world.NoTexture},
			{P1: 1, P2: 2, NextSector: world.NoSector, Texture: world.NoTexture},
			{P1: 2, P2: 3, NextSector: world.NoSector, Texture: world.NoTexture},
			{P1: 3, P2: 0, NextSector: world.NoSector, Texture: world.NoTexture},
		},
		Sectors: []world.Sector{
			{FirstWall: 0, NumWalls: 4, CeilHeight: 2, FloorTexture: world.NoTexture, CeilTexture: world.NoTexture},
		},
	}
}

// twoSectorPortal mirrors spec.md scenario S2: two square sectors joined
// by a portal wall on sector 0's east edge.
func twoSectorPortal() *world.Map {
	m := singleRoom()
	m.Points = append(m.Points, world.Point{4, 1}, world.Point{4, 3}, world.Point{6, 1}, world.Point{6, 3})
	m.Walls[1].NextSector = 1
	m.Walls = append(m.Walls,
		world.Wall{P1: 5, P2: 4, NextSector: 0, Texture: world.NoTexture},
		world.Wall{P1: 6, P2: 7, NextSector: world.NoSector, Texture: world.NoTexture},
		world.Wall{P1: 7, P2: 5, NextSector: world.NoSector, Texture: world.NoTexture},
		world.Wall{P1: 4, P2: 6, NextSector: world.NoSector, Texture: world.NoTexture},
	)
	m.Sectors = append(m.Sectors, world.Sector{FirstWall: 4, NumWalls: 4, CeilHeight: 2, FloorTexture: world.NoTexture, CeilTexture: world.NoTexture})
	return m
}

func TestRenderSingleRoomDoesNotPanic(t *testing.T) {
	m := singleRoom()
	fb := NewFramebuffer(64, 48)
	cam := world.Camera{X: 2, Y: 2, Z: 1, Yaw: 0}
	p := &Portal{}
	p.Render(fb, m, cam)
}

func TestRenderTwoSectorPortalDoesNotPanic(t *testing.T) {
	m := twoSectorPortal()
	fb := NewFramebuffer(64, 48)
	cam := world.Camera{X: 2, Y: 2, Z: 1, Yaw: 0}
	p := &Portal{}
	p.Render(fb, m, cam)
}

func TestRenderEmptyMapClearsOnly(t *testing.T) {
	m := world.New()
	fb := NewFramebuffer(16, 16)
	cam := world.Camera{}
	p := &Portal{}
	p.Render(fb, m, cam)
	for _, px := range fb.Pixels {
		if px != colorClear {
			t.Fatalf("expected only the clear color with no sectors, got %#x", px)
		}
	}
}

func TestRenderCameraOutsideAnySectorFallsBackToZero(t *testing.T) {
	m := singleRoom()
	fb := NewFramebuffer(64, 48)
	cam := world.Camera{X: 1000, Y: 1000, Z: 1} // far outside the only sector
	p := &Portal{}
	p.Render(fb, m, cam) // must not panic; falls back to sector 0 per §4.D
}

func TestRenderNearPlaneStraddleDoesNotPanic(t *testing.T) {
	// spec scenario S3: the camera sits very close to a wall so that one
	// endpoint is behind the near plane and the other is in front of it.
	m := singleRoom()
	fb := NewFramebuffer(64, 48)
	cam := world.Camera{X: 0.05, Y: 2, Z: 1, Yaw: 0}
	p := &Portal{}
	p.Render(fb, m, cam)
}

func TestSectorOfPointMatchesGeomConvention(t *testing.T) {
	m := singleRoom()
	if got := sectorOfPoint(m, 2, 2); got != 0 {
		t.Fatalf("sectorOfPoint((2,2)) = %d, want 0", got)
	}
	if got := sectorOfPoint(m, 100, 100); got != world.NoSector {
		t.Fatalf("sectorOfPoint(outside) = %d, want NoSector", got)
	}
}

func TestClipNearBothBehindRejects(t *testing.T) {
	a := camPoint{X: -1}
	b := camPoint{X: -2}
	_, _, _, _, ok := clipNear(a, b, nearZSolid)
	if ok {
		t.Fatalf("expected both-behind segment to be rejected")
	}
}

func TestClipNearBothAheadPassesThrough(t *testing.T) {
	a := camPoint{X: 1}
	b := camPoint{X: 2}
	o1, o2, t1, t2, ok := clipNear(a, b, nearZSolid)
	if !ok || o1 != a || o2 != b || t1 != 0 || t2 != 1 {
		t.Fatalf("expected both-ahead segment to pass through unchanged, got %+v %+v %v %v %v", o1, o2, t1, t2, ok)
	}
}

func TestClipNearStraddleInterpolates(t *testing.T) {
	a := camPoint{X: -1, Y: 0}
	b := camPoint{X: 1, Y: 2}
	o1, _, t1, _, ok := clipNear(a, b, nearZSolid)
	if !ok {
		t.Fatalf("straddling segment must not be rejected")
	}
	if o1.X != nearZSolid {
		t.Fatalf("clipped endpoint must sit exactly on the near plane, got X=%v", o1.X)
	}
	if t1 <= 0 || t1 >= 1 {
		t.Fatalf("interpolation parameter must lie strictly between 0 and 1, got %v", t1)
	}
}
