package undo

import (
	"testing"

	"github.com/qbradq/boomer/world"
)

func sampleMap(marker float32) *world.Map {
	return &world.Map{
		Points:  []world.Point{{marker, 0}},
		Sectors: []world.Sector{{}},
	}
}

func TestPushClearsRedo(t *testing.T) {
	var m Manager
	m.Redo.Push(State{Map: sampleMap(1)})
	m.PushState(sampleMap(2), nil)
	if m.Redo.Len() != 0 {
		t.Fatalf("PushState must clear the redo stack, got len %d", m.Redo.Len())
	}
	if m.Undo.Len() != 1 {
		t.Fatalf("expected one undo entry, got %d", m.Undo.Len())
	}
}

func TestPushDropsOldestWhenFull(t *testing.T) {
	var s Stack
	for i := 0; i < Capacity+5; i++ {
		s.Push(State{Map: sampleMap(float32(i))})
	}
	if s.Len() != Capacity {
		t.Fatalf("stack should clamp at capacity %d, got %d", Capacity, s.Len())
	}
	first, ok := s.Pop()
	for ok && s.Len() > 0 {
		first, ok = s.Pop()
	}
	if first.Map.Points[0].X != 5 {
		t.Fatalf("oldest surviving entry should be push #5, got marker %v", first.Map.Points[0].X)
	}
}

func TestUndoOnEmptyStackIsNoop(t *testing.T) {
	var m Manager
	_, ok := m.ApplyUndo(sampleMap(1), nil)
	if ok {
		t.Fatalf("undo on an empty stack must report ok=false")
	}
}

func TestUndoThenRedoRoundTrip(t *testing.T) {
	var m Manager
	original := sampleMap(1)
	m.PushState(original, []EntitySnapshot{{ID: 1, X: 1}})

	modified := sampleMap(2)
	popped, ok := m.ApplyUndo(modified, []EntitySnapshot{{ID: 1, X: 2}})
	if !ok {
		t.Fatalf("expected undo to succeed")
	}
	if !popped.Map.Equal(original) {
		t.Fatalf("undo should restore the originally pushed map")
	}

	redone, ok := m.ApplyRedo(original, popped.Entities)
	if !ok {
		t.Fatalf("expected redo to succeed")
	}
	if !redone.Map.Equal(modified) {
		t.Fatalf("redo should restore the state captured at undo time")
	}
}
