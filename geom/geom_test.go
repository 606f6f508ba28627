package geom

import (
	"testing"

	"github.com/qbradq/boomer/world"
)

// singleRoom mirrors spec.md scenario S1: a 4x4 square sector.
func singleRoom() *world.Map {
	return &world.Map{
		Points: []world.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		Walls: []world.Wall{
			{P1: 0, P2: 1, NextSector: world.NoSector},
			{P1: 1, P2: 2, NextSector: world.NoSector},
			{P1: 2, P2: 3, NextSector: world.NoSector},
			{P1: 3, P2: 0, NextSector: world.NoSector},
		},
		Sectors: []world.Sector{
			{FirstWall: 0, NumWalls: 4, CeilHeight: 2},
		},
	}
}

// twoSectorPortal mirrors spec.md scenario S2.
func twoSectorPortal() *world.Map {
	m := singleRoom()
	m.Points = append(m.Points, world.Point{4, 1}, world.Point{4, 3}, world.Point{6, 1}, world.Point{6, 3})
	// Sector 0's east wall (1->2) becomes a portal to sector 1.
	m.Walls[1].NextSector = 1
	m.Walls = append(m.Walls,
		world.Wall{P1: 5, P2: 4, NextSector: 0}, // sector 1's west wall, mirrors 4->5
		world.Wall{P1: 6, P2: 7, NextSector: world.NoSector},
		world.Wall{P1: 7, P2: 5, NextSector: world.NoSector},
		world.Wall{P1: 4, P2: 6, NextSector: world.NoSector},
	)
	m.Sectors = append(m.Sectors, world.Sector{FirstWall: 4, NumWalls: 4, CeilHeight: 2})
	return m
}

func TestSectorOfPointS1(t *testing.T) {
	m := singleRoom()
	got := SectorOfPoint(m, world.Point{2, 2})
	if got != 0 {
		t.Fatalf("SectorOfPoint((2,2)) = %d, want 0", got)
	}
}

func TestSectorOfPointOutside(t *testing.T) {
	m := singleRoom()
	got := SectorOfPoint(m, world.Point{100, 100})
	if got != world.NoSector {
		t.Fatalf("SectorOfPoint(outside) = %d, want NoSector", got)
	}
}

func TestSectorOfPointLowestIndexWinsOnOverlap(t *testing.T) {
	m := singleRoom()
	m.Sectors = append(m.Sectors, m.Sectors[0]) // degenerate: duplicate sector over the same walls
	got := SectorOfPoint(m, world.Point{2, 2})
	if got != 0 {
		t.Fatalf("degenerate overlap should resolve to lowest index, got %d", got)
	}
}

func TestSectorOfWall(t *testing.T) {
	m := twoSectorPortal()
	if got := SectorOfWall(m, 0); got != 0 {
		t.Fatalf("SectorOfWall(0) = %d, want 0", got)
	}
	if got := SectorOfWall(m, 4); got != 1 {
		t.Fatalf("SectorOfWall(4) = %d, want 1", got)
	}
	if got := SectorOfWall(m, 999); got != world.NoSector {
		t.Fatalf("SectorOfWall(out of range) = %d, want NoSector", got)
	}
}

func TestSegmentsCrossSymmetric(t *testing.T) {
	a1, a2 := world.Point{0, 0}, world.Point{4, 4}
	b1, b2 := world.Point{0, 4}, world.Point{4, 0}
	if !SegmentsCross(a1, a2, b1, b2) {
		t.Fatalf("expected diagonals to cross")
	}
	if SegmentsCross(a1, a2, b1, b2) != SegmentsCross(b1, b2, a1, a2) {
		t.Fatalf("SegmentsCross is not symmetric")
	}
}

func TestSegmentsCrossCollinearTouchIsNotCrossing(t *testing.T) {
	a1, a2 := world.Point{0, 0}, world.Point{4, 0}
	b1, b2 := world.Point{4, 0}, world.Point{8, 0}
	if SegmentsCross(a1, a2, b1, b2) {
		t.Fatalf("collinear touching segments must not count as crossing")
	}
}

func TestSegmentsCrossDegenerateNeverCrosses(t *testing.T) {
	a1, a2 := world.Point{2, 2}, world.Point{2, 2}
	b1, b2 := world.Point{0, 0}, world.Point{4, 4}
	if SegmentsCross(a1, a2, b1, b2) {
		t.Fatalf("zero-length segment must never cross")
	}
}

func TestSegmentsCrossNonCrossing(t *testing.T) {
	a1, a2 := world.Point{0, 0}, world.Point{1, 0}
	b1, b2 := world.Point{0, 5}, world.Point{1, 5}
	if SegmentsCross(a1, a2, b1, b2) {
		t.Fatalf("parallel disjoint segments must not cross")
	}
}

func TestWallCrossesAnySkipsNeighbors(t *testing.T) {
	m := singleRoom()
	// Adjacent walls share a point and must never "cross" each other.
	if WallCrossesAny(m, 0) {
		t.Fatalf("wall 0 should not cross any of its neighbors in a valid square")
	}
}

func TestWallCrossesAnyDetectsCrossing(t *testing.T) {
	m := singleRoom()
	// A vertical wall through x=1 crosses the square's top and bottom edges
	// at interior points, not at shared corners.
	m.Points = append(m.Points, world.Point{1, -1}, world.Point{1, 5})
	crossIdx := len(m.Walls)
	m.Walls = append(m.Walls, world.Wall{P1: 4, P2: 5, NextSector: world.NoSector})
	if !WallCrossesAny(m, crossIdx) {
		t.Fatalf("expected new wall to cross an existing square edge")
	}
}

func TestSectorContainsForeignPoint(t *testing.T) {
	m := singleRoom()
	if SectorContainsForeignPoint(m, 0) {
		t.Fatalf("square sector with no interior points should report false")
	}

	m.Points = append(m.Points, world.Point{2, 2})
	if !SectorContainsForeignPoint(m, 0) {
		t.Fatalf("expected interior foreign point to be detected")
	}
}

func TestSectorContainsForeignPointIgnoresBoundaryPoints(t *testing.T) {
	m := singleRoom()
	// All of m's own points sit on the boundary and must not count as foreign.
	if SectorContainsForeignPoint(m, 0) {
		t.Fatalf("boundary points must not be treated as foreign")
	}
}
