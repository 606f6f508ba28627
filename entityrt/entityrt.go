// Package entityrt implements entity.Runtime on top of a donburi ECS
// world: every live entity is a donburi Entry carrying a position
// component and a script-path component. The core only ever sees entity
// ids; donburi.Entity values are kept behind this package's id table.
//
// Adapted from the teacher's ecs package, which wraps a donburi.World for
// its own event-publishing EntityStore; here the same "wrap a
// donburi.World behind a small adapter" idiom is repurposed to implement
// this engine's EntityRuntime instead.
package entityrt

import (
	"github.com/qbradq/boomer/world"
	"github.com/yohamta/donburi"
)

// Position is the donburi component holding an entity's world transform.
type Position struct {
	X, Y, Z, Yaw float32
}

// Script is the donburi component holding the script path an entity was
// spawned with (§4.H "opaque script-path key").
type Script struct {
	Path string
}

var positionComponent = donburi.NewComponentType[Position]()
var scriptComponent = donburi.NewComponentType[Script]()

// Runtime adapts a donburi.World into entity.Runtime (§4.H). The core's
// integer entity ids are assigned by Runtime itself and map to donburi
// entities internally; nothing outside this package ever sees a
// donburi.Entity.
type Runtime struct {
	world  donburi.World
	nextID int
	byID   map[int]donburi.Entity
}

// New wraps w as an entity.Runtime with an empty id table.
func New(w donburi.World) *Runtime {
	return &Runtime{world: w, nextID: 1, byID: make(map[int]donburi.Entity)}
}

// Active returns every currently active entity id.
func (r *Runtime) Active() []int {
	ids := make([]int, 0, len(r.byID))
	for id, e := range r.byID {
		if r.world.Valid(e) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Spawn implements entity.Runtime.
func (r *Runtime) Spawn(scriptPath string, pos world.Point, z, yaw float32) int {
	e := r.world.Create(positionComponent, scriptComponent)
	entry := r.world.Entry(e)
	donburi.SetValue(entry, positionComponent, Position{X: pos.X, Y: pos.Y, Z: z, Yaw: yaw})
	donburi.SetValue(entry, scriptComponent, Script{Path: scriptPath})

	id := r.nextID
	r.nextID++
	r.byID[id] = e
	return id
}

// Position implements entity.Runtime.
func (r *Runtime) Position(id int) (x, y, z, yaw float32, ok bool) {
	e, found := r.byID[id]
	if !found || !r.world.Valid(e) {
		return 0, 0, 0, 0, false
	}
	p := donburi.Get[Position](r.world.Entry(e), positionComponent)
	return p.X, p.Y, p.Z, p.Yaw, true
}

// SetPosition implements entity.Runtime.
func (r *Runtime) SetPosition(id int, x, y, z, yaw float32) {
	e, found := r.byID[id]
	if !found || !r.world.Valid(e) {
		return
	}
	donburi.SetValue(r.world.Entry(e), positionComponent, Position{X: x, Y: y, Z: z, Yaw: yaw})
}

// Destroy implements entity.Runtime.
func (r *Runtime) Destroy(id int) {
	e, found := r.byID[id]
	if !found {
		return
	}
	if r.world.Valid(e) {
		r.world.Remove(e)
	}
	delete(r.byID, id)
}

// ScriptPath implements entity.Runtime.
func (r *Runtime) ScriptPath(id int) string {
	e, found := r.byID[id]
	if !found || !r.world.Valid(e) {
		return ""
	}
	return donburi.Get[Script](r.world.Entry(e), scriptComponent).Path
}

// MaxSlots implements entity.Runtime. This runtime has no fixed slot
// limit, unlike the original engine's static entity table; report the
// current live count as its own ceiling has no meaning here.
func (r *Runtime) MaxSlots() int {
	return len(r.byID)
}

// Tick implements entity.Runtime. Scripted behavior is out of scope for
// the core (§4.H); a host application wires its own donburi systems
// against positionComponent/scriptComponent to actually move entities.
func (r *Runtime) Tick(dt float32) {}

// Reassign implements entity.Reassigner (§4.G restore semantics:
// "spawns missing ones with the script path (and then overrides their
// id)").
func (r *Runtime) Reassign(from, to int) {
	e, found := r.byID[from]
	if !found {
		return
	}
	delete(r.byID, from)
	r.byID[to] = e
}

// ResetNextID implements entity.NextIDReseter. It raises the id counter to
// next when next is larger; a next at or below the current counter leaves
// it unchanged, so the counter is never lowered and an id this runtime has
// already issued is not issued again.
func (r *Runtime) ResetNextID(next int) {
	if next > r.nextID {
		r.nextID = next
	}
}

