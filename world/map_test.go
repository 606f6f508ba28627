package world

import "testing"

func singleRoom() *Map {
	return &Map{
		Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		Walls: []Wall{
			{P1: 0, P2: 1, NextSector: NoSector, Texture: NoTexture},
			{P1: 1, P2: 2, NextSector: NoSector, Texture: NoTexture},
			{P1: 2, P2: 3, NextSector: NoSector, Texture: NoTexture},
			{P1: 3, P2: 0, NextSector: NoSector, Texture: NoTexture},
		},
		Sectors: []Sector{
			{FloorHeight: 0, CeilHeight: 2, FirstWall: 0, NumWalls: 4, FloorTexture: NoTexture, CeilTexture: NoTexture},
		},
	}
}

func TestCloneIndependence(t *testing.T) {
	m := singleRoom()
	c := m.Clone()

	c.Points[0].X = 999
	if m.Points[0].X == 999 {
		t.Fatalf("mutating clone affected source")
	}
	if !m.Equal(m) {
		t.Fatalf("map not equal to itself")
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	m := singleRoom()
	snapshot := m.Clone()

	// Mutate m.
	m.Points[1].X = 123
	m.Walls = append(m.Walls, Wall{P1: 0, P2: 2, NextSector: NoSector, Texture: NoTexture})

	m.Restore(snapshot)
	if !m.Equal(snapshot) {
		t.Fatalf("restore did not reproduce the snapshot byte-for-byte")
	}
}

func TestResetClearsMap(t *testing.T) {
	m := singleRoom()
	m.Reset()
	if len(m.Points) != 0 || len(m.Walls) != 0 || len(m.Sectors) != 0 {
		t.Fatalf("Reset left non-empty tables: %+v", m)
	}
}

func TestWallRange(t *testing.T) {
	m := singleRoom()
	start, end := m.Sectors[0].WallRange()
	if start != 0 || end != 4 {
		t.Fatalf("WallRange() = (%d, %d), want (0, 4)", start, end)
	}
}

func TestSharesPoint(t *testing.T) {
	a := Wall{P1: 0, P2: 1}
	b := Wall{P1: 1, P2: 2}
	c := Wall{P1: 2, P2: 3}
	if !a.SharesPoint(&b) {
		t.Fatalf("expected walls sharing point 1 to report SharesPoint")
	}
	if a.SharesPoint(&c) {
		t.Fatalf("expected disjoint walls to report !SharesPoint")
	}
}
