// Package geom implements the geometric services shared by the renderer
// and the editor: point-in-sector, segment crossing, wall-sector lookup,
// and the editor's "does this sector swallow a foreign point" validity
// test (§4.B).
package geom

import "github.com/qbradq/boomer/world"

// SectorOfPoint returns the index of the first sector containing p, using a
// ray-cast point-in-polygon test against each sector's boundary walls.
// Ties are impossible under the engine's partition invariant (§3 invariant
// 6); on a degenerate map where more than one sector claims p, the lowest
// index wins because sectors are scanned in order. Returns world.NoSector
// if no sector contains p.
func SectorOfPoint(m *world.Map, p world.Point) int {
	for i := range m.Sectors {
		if pointInSector(m, &m.Sectors[i], p) {
			return i
		}
	}
	return world.NoSector
}

// pointInSector is the classic ray-casting parity test: cast a ray from p
// to +X infinity and count boundary crossings.
func pointInSector(m *world.Map, s *world.Sector, p world.Point) bool {
	inside := false
	start, end := s.WallRange()
	for wi := start; wi < end; wi++ {
		w := &m.Walls[wi]
		p1 := m.Points[w.P1]
		p2 := m.Points[w.P2]
		if (p1.Y > p.Y) != (p2.Y > p.Y) {
			xCross := (p2.X-p1.X)*(p.Y-p1.Y)/(p2.Y-p1.Y) + p1.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// SectorOfWall returns the index of the sector whose wall range covers
// wallIndex, or world.NoSector if the index is unused or out of range.
func SectorOfWall(m *world.Map, wallIndex int) int {
	if wallIndex < 0 || wallIndex >= len(m.Walls) {
		return world.NoSector
	}
	for i := range m.Sectors {
		start, end := m.Sectors[i].WallRange()
		if int32(wallIndex) >= start && int32(wallIndex) < end {
			return i
		}
	}
	return world.NoSector
}

// SegmentsCross reports whether segment a1-a2 strictly crosses segment
// b1-b2, using the CCW sign test on the four endpoints. Collinear touches
// (including shared endpoints) do not count as crossing, and degenerate
// zero-length segments never cross anything.
func SegmentsCross(a1, a2, b1, b2 world.Point) bool {
	if (a1 == a2) || (b1 == b2) {
		return false
	}
	d1 := ccw(b1, b2, a1)
	d2 := ccw(b1, b2, a2)
	d3 := ccw(a1, a2, b1)
	d4 := ccw(a1, a2, b2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return false
}

// ccw returns the signed area of the triangle (a, b, c): positive if c is
// left of a->b, negative if right, zero if collinear.
func ccw(a, b, c world.Point) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// WallCrossesAny reports whether the wall at wallIndex strictly crosses any
// other wall in the map that does not share an endpoint with it (shared
// walls are neighbors and are never checked against each other — see
// Wall.SharesPoint).
func WallCrossesAny(m *world.Map, wallIndex int) bool {
	if wallIndex < 0 || wallIndex >= len(m.Walls) {
		return false
	}
	w := &m.Walls[wallIndex]
	a1, a2 := m.Points[w.P1], m.Points[w.P2]

	for i := range m.Walls {
		if i == wallIndex {
			continue
		}
		other := &m.Walls[i]
		if w.SharesPoint(other) {
			continue
		}
		b1, b2 := m.Points[other.P1], m.Points[other.P2]
		if SegmentsCross(a1, a2, b1, b2) {
			return true
		}
	}
	return false
}

// SectorContainsForeignPoint reports whether any map point not on the
// boundary of the sector at sectorIndex lies inside that sector's polygon.
// The editor uses this as its "consuming points" validity test (§3
// invariant 5 corollary): a sector whose edges have been dragged across an
// unrelated point is invalid.
func SectorContainsForeignPoint(m *world.Map, sectorIndex int) bool {
	if sectorIndex < 0 || sectorIndex >= len(m.Sectors) {
		return false
	}
	s := &m.Sectors[sectorIndex]
	start, end := s.WallRange()

	boundary := make(map[int32]bool, end-start)
	for wi := start; wi < end; wi++ {
		boundary[m.Walls[wi].P1] = true
		boundary[m.Walls[wi].P2] = true
	}

	for pi := range m.Points {
		if boundary[int32(pi)] {
			continue
		}
		if pointInSector(m, s, m.Points[pi]) {
			return true
		}
	}
	return false
}
