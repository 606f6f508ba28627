package input

import "github.com/hajimehoshi/ebiten/v2"

// keyNames is the string <-> Key table used by the JSON binding format
// (§6 "input": { action: key-name | [key-names] }). Grounded on the
// original engine's core/config.c key_names table, renamed from raylib's
// KEY_* identifiers to ebiten's.
var keyNames = map[string]Key{
	"SPACE":         ebiten.KeySpace,
	"ESCAPE":        ebiten.KeyEscape,
	"ENTER":         ebiten.KeyEnter,
	"TAB":           ebiten.KeyTab,
	"BACKSPACE":     ebiten.KeyBackspace,
	"INSERT":        ebiten.KeyInsert,
	"DELETE":        ebiten.KeyDelete,
	"RIGHT":         ebiten.KeyArrowRight,
	"LEFT":          ebiten.KeyArrowLeft,
	"DOWN":          ebiten.KeyArrowDown,
	"UP":            ebiten.KeyArrowUp,
	"PAGE_UP":       ebiten.KeyPageUp,
	"PAGE_DOWN":     ebiten.KeyPageDown,
	"HOME":          ebiten.KeyHome,
	"END":           ebiten.KeyEnd,
	"CAPS_LOCK":     ebiten.KeyCapsLock,
	"SCROLL_LOCK":   ebiten.KeyScrollLock,
	"NUM_LOCK":      ebiten.KeyNumLock,
	"PRINT_SCREEN":  ebiten.KeyPrintScreen,
	"PAUSE":         ebiten.KeyPause,
	"F1":            ebiten.KeyF1,
	"F2":            ebiten.KeyF2,
	"F3":            ebiten.KeyF3,
	"F4":            ebiten.KeyF4,
	"F5":            ebiten.KeyF5,
	"F6":            ebiten.KeyF6,
	"F7":            ebiten.KeyF7,
	"F8":            ebiten.KeyF8,
	"F9":            ebiten.KeyF9,
	"F10":           ebiten.KeyF10,
	"F11":           ebiten.KeyF11,
	"F12":           ebiten.KeyF12,
	"LEFT_SHIFT":    ebiten.KeyShiftLeft,
	"LEFT_CONTROL":  ebiten.KeyControlLeft,
	"LEFT_ALT":      ebiten.KeyAltLeft,
	"LEFT_SUPER":    ebiten.KeyMetaLeft,
	"RIGHT_SHIFT":   ebiten.KeyShiftRight,
	"RIGHT_CONTROL": ebiten.KeyControlRight,
	"RIGHT_ALT":     ebiten.KeyAltRight,
	"RIGHT_SUPER":   ebiten.KeyMetaRight,
	"LEFT_BRACKET":  ebiten.KeyBracketLeft,
	"BACKSLASH":     ebiten.KeyBackslash,
	"RIGHT_BRACKET": ebiten.KeyBracketRight,
	"GRAVE":         ebiten.KeyGraveAccent,
	"KP_0":          ebiten.KeyKP0,
	"KP_1":          ebiten.KeyKP1,
	"KP_2":          ebiten.KeyKP2,
	"KP_3":          ebiten.KeyKP3,
	"KP_4":          ebiten.KeyKP4,
	"KP_5":          ebiten.KeyKP5,
	"KP_6":          ebiten.KeyKP6,
	"KP_7":          ebiten.KeyKP7,
	"KP_8":          ebiten.KeyKP8,
	"KP_9":          ebiten.KeyKP9,
	"KP_DECIMAL":    ebiten.KeyKPDecimal,
	"KP_DIVIDE":     ebiten.KeyKPDivide,
	"KP_MULTIPLY":   ebiten.KeyKPMultiply,
	"KP_SUBTRACT":   ebiten.KeyKPSubtract,
	"KP_ADD":        ebiten.KeyKPAdd,
	"KP_ENTER":      ebiten.KeyKPEnter,
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,
}

var keyNamesInverse = invertKeyNames()

func invertKeyNames() map[Key]string {
	out := make(map[Key]string, len(keyNames))
	for name, k := range keyNames {
		if _, exists := out[k]; exists {
			continue // if two names share a key code, which one is kept follows map iteration order and is not defined
		}
		out[k] = name
	}
	return out
}

// KeyByName resolves a key-name string to a Key. ok is false for an
// unknown name (§7 asset-missing-style policy: callers should skip the
// entry rather than fail the whole file).
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// NameOfKey returns the canonical name for k, or "" if none is known.
func NameOfKey(k Key) string {
	return keyNamesInverse[k]
}
