package world

// Clone returns a deep copy of m. Mutating the result never affects m and
// vice versa.
func (m *Map) Clone() *Map {
	c := &Map{}
	c.CloneFrom(m)
	return c
}

// CloneFrom replaces m's contents with a deep copy of src. m need not be
// empty; any existing slices are discarded (left to the garbage collector —
// there is no manual allocator to release here, unlike the C original's
// Map_Free).
func (m *Map) CloneFrom(src *Map) {
	m.Points = append([]Point(nil), src.Points...)
	m.Walls = append([]Wall(nil), src.Walls...)
	m.Sectors = append([]Sector(nil), src.Sectors...)
	m.Textures = append([]string(nil), src.Textures...)
}

// Reset clears m back to the empty Map, releasing its backing arrays.
func (m *Map) Reset() {
	m.Points = nil
	m.Walls = nil
	m.Sectors = nil
	m.Textures = nil
}

// Restore replaces m's contents with a deep copy of src. Equivalent to
// m.Reset() followed by m.CloneFrom(src).
func (m *Map) Restore(src *Map) {
	m.Reset()
	m.CloneFrom(src)
}

// Equal reports whether m and other hold byte-for-byte identical point,
// wall, and sector tables and identical texture path tables. Used by round-trip tests (clone/restore) rather
// than by any runtime path.
func (m *Map) Equal(other *Map) bool {
	if len(m.Points) != len(other.Points) ||
		len(m.Walls) != len(other.Walls) ||
		len(m.Sectors) != len(other.Sectors) ||
		len(m.Textures) != len(other.Textures) {
		return false
	}
	for i := range m.Points {
		if m.Points[i] != other.Points[i] {
			return false
		}
	}
	for i := range m.Walls {
		if m.Walls[i] != other.Walls[i] {
			return false
		}
	}
	for i := range m.Sectors {
		if m.Sectors[i] != other.Sectors[i] {
			return false
		}
	}
	for i := range m.Textures {
		if m.Textures[i] != other.Textures[i] {
			return false
		}
	}
	return true
}
