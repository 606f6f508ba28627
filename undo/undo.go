// Package undo implements the bounded undo/redo stacks described in §4.G:
// two capacity-100 LIFO stacks of (Map clone, entity snapshot) pairs.
// Grounded on the original engine's editor/undo_sys.c, which keeps the
// same two-stack, push/undo/redo shape over raw array snapshots.
package undo

import "github.com/qbradq/boomer/world"

// Capacity is the maximum number of entries either stack holds before the
// oldest entry is dropped on push (§4.G).
const Capacity = 100

// EntitySnapshot is the minimal entity state undo/redo needs to restore;
// it mirrors entity.Snapshot without importing the entity package, so undo
// stays usable by callers that only need the Map half of a snapshot.
type EntitySnapshot struct {
	ID         int
	X, Y, Z    float32
	Yaw        float32
	ScriptPath string
}

// State is one stack entry: a full Map clone plus every active entity's
// snapshot at that moment.
type State struct {
	Map      *world.Map
	Entities []EntitySnapshot
}

// Stack is a bounded LIFO of States, used for both the undo and redo side
// (§4.G).
type Stack struct {
	entries []State
}

// Push appends state, dropping the oldest entry first if the stack is
// already at Capacity (§4.G "if undo is full, drops the oldest").
func (s *Stack) Push(state State) {
	if len(s.entries) >= Capacity {
		s.entries = s.entries[1:]
	}
	s.entries = append(s.entries, state)
}

// Pop removes and returns the most recently pushed state. ok is false on
// an empty stack (§7 "undo on empty stack: no-op").
func (s *Stack) Pop() (state State, ok bool) {
	if len(s.entries) == 0 {
		return State{}, false
	}
	last := len(s.entries) - 1
	state = s.entries[last]
	s.entries = s.entries[:last]
	return state, true
}

// Clear empties the stack, discarding every entry.
func (s *Stack) Clear() {
	s.entries = nil
}

// Len reports how many entries the stack currently holds.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Manager owns the undo and redo stacks and implements the three
// operations of §4.G.
type Manager struct {
	Undo Stack
	Redo Stack
}

// PushState records the current map/entity state as an undo point and
// clears the redo stack (§4.G "push_state").
func (m *Manager) PushState(current *world.Map, entities []EntitySnapshot) {
	m.Redo.Clear()
	m.Undo.Push(State{Map: current.Clone(), Entities: append([]EntitySnapshot(nil), entities...)})
}

// ApplyUndo captures (into redo) the caller-supplied current state, pops
// the top of undo, and returns it for the caller to restore into the live
// Map/runtime. ok is false if undo was empty, in which case the call is a
// no-op and nothing is pushed onto redo.
func (m *Manager) ApplyUndo(current *world.Map, entities []EntitySnapshot) (popped State, ok bool) {
	popped, ok = m.Undo.Pop()
	if !ok {
		return State{}, false
	}
	m.Redo.Push(State{Map: current.Clone(), Entities: append([]EntitySnapshot(nil), entities...)})
	return popped, true
}

// ApplyRedo is the symmetric inverse of ApplyUndo.
func (m *Manager) ApplyRedo(current *world.Map, entities []EntitySnapshot) (popped State, ok bool) {
	popped, ok = m.Redo.Pop()
	if !ok {
		return State{}, false
	}
	m.Undo.Push(State{Map: current.Clone(), Entities: append([]EntitySnapshot(nil), entities...)})
	return popped, true
}
