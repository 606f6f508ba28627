// Package input implements named-action key bindings (§4.I): a
// configuration maps action names to sets of key identifiers, and
// is_action_down/is_action_pressed OR the states of the bound keys. Also
// defines the Platform collaborator interface the core polls each frame
// (§6).
//
// Grounded on the original engine's core/config.c key-name table (string
// name <-> key code) and its action-binding arrays, adapted from raylib
// key codes to ebiten's.
package input

import "github.com/hajimehoshi/ebiten/v2"

// Key is a platform-independent key identifier. It is defined as the
// ebiten key type directly, since the Platform collaborator is always
// ebiten-backed in this engine and a second indirection buys nothing.
type Key = ebiten.Key

// MouseButton is a platform-independent mouse button identifier, aliased
// the same way Key is.
type MouseButton = ebiten.MouseButton

// Platform is the collaborator the core polls once per frame for input
// and presents the finished framebuffer to (§6).
type Platform interface {
	PollInput()
	IsKeyDown(k Key) bool
	IsKeyPressed(k Key) bool
	IsMouseButtonDown(b MouseButton) bool
	IsMouseButtonPressed(b MouseButton) bool
	MousePosition() (x, y int)
	MouseWheelDelta() float64
	FrameDeltaSeconds() float32
	ScreenSize() (w, h int)
	PresentFramebuffer(pixels []uint32, w, h int)
}

// Bindings maps action names to the set of keys that can trigger them.
type Bindings struct {
	actions map[string][]Key
}

// NewBindings returns a Bindings seeded with the builtin defaults (§4.I
// "a builtin default set seeds common actions when absent").
func NewBindings() *Bindings {
	b := &Bindings{actions: make(map[string][]Key, len(defaultBindings))}
	for action, keys := range defaultBindings {
		b.actions[action] = append([]Key(nil), keys...)
	}
	return b
}

// Set replaces the key set bound to action.
func (b *Bindings) Set(action string, keys []Key) {
	if b.actions == nil {
		b.actions = make(map[string][]Key)
	}
	b.actions[action] = append([]Key(nil), keys...)
}

// Keys returns the keys bound to action, or nil if unbound.
func (b *Bindings) Keys(action string) []Key {
	return b.actions[action]
}

// IsActionDown reports whether any key bound to action is currently held
// down.
func (b *Bindings) IsActionDown(p Platform, action string) bool {
	for _, k := range b.actions[action] {
		if p.IsKeyDown(k) {
			return true
		}
	}
	return false
}

// IsActionPressed reports whether any key bound to action was pressed
// this frame.
func (b *Bindings) IsActionPressed(p Platform, action string) bool {
	for _, k := range b.actions[action] {
		if p.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

var defaultBindings = map[string][]Key{
	"move_forward":   {ebiten.KeyW, ebiten.KeyUp},
	"move_back":      {ebiten.KeyS, ebiten.KeyDown},
	"strafe_left":    {ebiten.KeyA, ebiten.KeyLeft},
	"strafe_right":   {ebiten.KeyD, ebiten.KeyRight},
	"toggle_console": {ebiten.KeyGraveAccent},
	"toggle_editor":  {ebiten.KeyTab},
	"undo":           {ebiten.KeyZ},
	"redo":           {ebiten.KeyY},
	"delete":         {ebiten.KeyDelete, ebiten.KeyBackspace},
	"cancel":         {ebiten.KeyEscape},
}
