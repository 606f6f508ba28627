// Package world holds the geometry model shared by the renderer and the
// editor: points, walls, sectors, the Map container, the game/editor
// Camera, and the Entity view the 2D map view draws.
package world

// NoSector is the sentinel value for "no sector" (a solid wall's
// next-sector, or a point/position that resolves to no sector).
const NoSector = -1

// NoTexture is the sentinel value for "no texture handle assigned".
const NoTexture = -1

// Point is a 2D coordinate in world units. Points are referenced by a dense
// index into Map.Points.
type Point struct {
	X, Y float32
}

// Wall is one directed edge of a sector's boundary polygon, from point P1 to
// point P2. A wall is solid when NextSector is NoSector; otherwise it is a
// portal into the sector at NextSector.
type Wall struct {
	P1, P2 int32

	// NextSector is NoSector for a solid wall, or the index of the sector on
	// the other side of this wall for a portal.
	NextSector int32

	// Texture is the full-height face texture for a solid wall. Ignored for
	// the open middle of a portal.
	Texture int32

	// TopTexture fills the step above a portal opening when this sector's
	// ceiling is higher than the neighbor's.
	TopTexture int32

	// BottomTexture fills the step below a portal opening when the
	// neighbor's floor is higher than this sector's.
	BottomTexture int32
}

// IsPortal reports whether w connects to another sector.
func (w *Wall) IsPortal() bool {
	return w.NextSector != NoSector
}

// SharesPoint reports whether a and b have at least one endpoint index in
// common. Walls that share a point are neighbors and are exempted from
// crossing checks against each other.
func (a *Wall) SharesPoint(b *Wall) bool {
	return a.P1 == b.P1 || a.P1 == b.P2 || a.P2 == b.P1 || a.P2 == b.P2
}

// Sector is a closed polygon described by a contiguous run of walls in the
// Map's wall table, plus the floor/ceiling planes of the prism between them.
type Sector struct {
	FloorHeight, CeilHeight float32
	FloorTexture            int32
	CeilTexture             int32

	// FirstWall and NumWalls describe the contiguous range
	// [FirstWall, FirstWall+NumWalls) of this sector's boundary walls.
	FirstWall int32
	NumWalls  int32
}

// WallRange returns the [start, end) wall index range owned by s.
func (s *Sector) WallRange() (start, end int32) {
	return s.FirstWall, s.FirstWall + s.NumWalls
}

// Map owns the three parallel tables (points, walls, sectors) that make up
// a level, plus the texture path table resolved by the Map JSON loader.
type Map struct {
	Points  []Point
	Walls   []Wall
	Sectors []Sector

	// Textures is the path table referenced by Wall.Texture/TopTexture/
	// BottomTexture and Sector.FloorTexture/CeilTexture. A texture index of
	// NoTexture means "no texture"; otherwise it indexes this slice.
	Textures []string
}

// New returns an empty Map.
func New() *Map {
	return &Map{}
}

// Camera is shared by the game renderer and the editor: a world-space
// position and a horizontal look angle. There is no pitch.
type Camera struct {
	X, Y, Z float32
	Yaw     float32 // radians
}

// Entity is the core's view of a live script-driven entity: id, pose, and
// script path, as drawn by the 2D map view. Undo/redo keeps its own
// snapshot type (undo.EntitySnapshot). The scripted behavior itself lives
// behind the EntityRuntime collaborator.
type Entity struct {
	ID         int
	X, Y, Z    float32
	Yaw        float32
	ScriptPath string
}
