// Package entity defines the EntityRuntime collaborator (§4.H) and the
// snapshot type undo/redo uses to capture and restore scripted entity
// state (§4.G). The core never inspects scripted behavior; it only asks
// the runtime to enumerate, spawn, move, and destroy by id.
package entity

import "github.com/qbradq/boomer/world"

// Runtime is the external collaborator that owns live scripted entities.
// Grounded on the original engine's ecs-ish entity table (game/entity.c:
// a flat slot array keyed by id, scripted via a factory script).
type Runtime interface {
	// Active returns the ids of every currently active entity.
	Active() []int

	// Spawn creates an entity running scriptPath at pos, returning its new
	// id. Implementations choose the id; restore callers may later rewrite
	// it via Reassign.
	Spawn(scriptPath string, pos world.Point, z, yaw float32) int

	// Position returns the current position and yaw of id, or false if id
	// is not active.
	Position(id int) (x, y, z, yaw float32, ok bool)

	// SetPosition moves an already-active entity.
	SetPosition(id int, x, y, z, yaw float32)

	// Destroy deactivates id. A no-op if id is not active.
	Destroy(id int)

	// ScriptPath returns the script path id was spawned with, or "" if id
	// is not active.
	ScriptPath(id int) string

	// MaxSlots returns the runtime's fixed entity slot capacity.
	MaxSlots() int

	// Tick advances all active entities by dt seconds. The core calls this
	// once per frame and does not otherwise inspect scripted behavior.
	Tick(dt float32)
}

// Snapshot is the undo/redo-visible state of one entity (§4.G): enough to
// recreate or re-target a live entity without knowing its script.
type Snapshot struct {
	ID         int
	X, Y, Z    float32
	Yaw        float32
	ScriptPath string
}

// Capture returns a Snapshot of every entity currently active in rt.
func Capture(rt Runtime) []Snapshot {
	ids := rt.Active()
	out := make([]Snapshot, 0, len(ids))
	for _, id := range ids {
		x, y, z, yaw, ok := rt.Position(id)
		if !ok {
			continue
		}
		out = append(out, Snapshot{
			ID:         id,
			X:          x,
			Y:          y,
			Z:          z,
			Yaw:        yaw,
			ScriptPath: rt.ScriptPath(id),
		})
	}
	return out
}

// Restore makes rt's live entity set match snaps exactly (§4.G): entities
// named in snaps are moved into place (spawning them if missing, then
// reassigning the id to match), and any entity active in rt but absent
// from snaps is destroyed.
func Restore(rt Runtime, snaps []Snapshot) {
	want := make(map[int]Snapshot, len(snaps))
	for _, s := range snaps {
		want[s.ID] = s
	}

	for _, id := range rt.Active() {
		if _, ok := want[id]; !ok {
			rt.Destroy(id)
		}
	}

	maxID := -1
	for _, s := range snaps {
		if s.ID > maxID {
			maxID = s.ID
		}
		if _, _, _, _, ok := rt.Position(s.ID); ok {
			rt.SetPosition(s.ID, s.X, s.Y, s.Z, s.Yaw)
			continue
		}
		spawned := rt.Spawn(s.ScriptPath, world.Point{X: s.X, Y: s.Y}, s.Z, s.Yaw)
		if reassigner, ok := rt.(Reassigner); ok && spawned != s.ID {
			reassigner.Reassign(spawned, s.ID)
		}
	}
	if reseter, ok := rt.(NextIDReseter); ok {
		reseter.ResetNextID(maxID + 1)
	}
}

// Reassigner is implemented by runtimes whose Spawn-assigned id needs to
// be overridden to match a restored snapshot's id (§4.G: "spawns missing
// ones with the script path (and then overrides their id)").
type Reassigner interface {
	Reassign(from, to int)
}

// NextIDReseter is implemented by runtimes that track a monotonic
// next-id counter, which restore resets to max(id)+1 (§4.G).
type NextIDReseter interface {
	ResetNextID(next int)
}
