// Package input defines window-system independent keyboard and mouse input
// and fans events out to registered handlers.
package input

import "strings"

// KeyCode identifies a keyboard key. Values match GLFW key tokens.
type KeyCode int

const (
	KeySpace KeyCode = 32
	Key0     KeyCode = 48
	Key1     KeyCode = 49
	Key2     KeyCode = 50
	Key3     KeyCode = 51
	Key4     KeyCode = 52
	Key5     KeyCode = 53
	Key6     KeyCode = 54
	Key7     KeyCode = 55
	Key8     KeyCode = 56
	Key9     KeyCode = 57
	KeyA     KeyCode = 65
	KeyB     KeyCode = 66
	KeyC     KeyCode = 67
	KeyD     KeyCode = 68
	KeyE     KeyCode = 69
	KeyF     KeyCode = 70
	KeyG     KeyCode = 71
	KeyH     KeyCode = 72
	KeyI     KeyCode = 73
	KeyJ     KeyCode = 74
	KeyK     KeyCode = 75
	KeyL     KeyCode = 76
	KeyM     KeyCode = 77
	KeyN     KeyCode = 78
	KeyO     KeyCode = 79
	KeyP     KeyCode = 80
	KeyQ     KeyCode = 81
	KeyR     KeyCode = 82
	KeyS     KeyCode = 83
	KeyT     KeyCode = 84
	KeyU     KeyCode = 85
	KeyV     KeyCode = 86
	KeyW     KeyCode = 87
	KeyX     KeyCode = 88
	KeyY     KeyCode = 89
	KeyZ     KeyCode = 90
	KeyEsc   KeyCode = 256
	KeyTab   KeyCode = 258

	KeyLShift KeyCode = 340
	KeyLCtrl  KeyCode = 341
	KeyLAlt   KeyCode = 342
	KeyLSuper KeyCode = 343
	KeyRShift KeyCode = 344
	KeyRCtrl  KeyCode = 345
	KeyRAlt   KeyCode = 346
	KeyRSuper KeyCode = 347
)

// KeyState is the state of a key or the action of a key event.
type KeyState int

const (
	Released KeyState = 0
	Pressed  KeyState = 1
	Repeated KeyState = 2
)

func (s KeyState) String() string {
	switch s {
	case Released:
		return "released"
	case Pressed:
		return "pressed"
	case Repeated:
		return "repeated"
	}
	return "unknown"
}

// Down reports whether the key is held.
func (s KeyState) Down() bool {
	return s == Pressed || s == Repeated
}

// Modifier is a set of modifier keys held during a key event.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
	ModCapsLock
	ModNumLock
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModShift, "shift"},
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
	{ModCapsLock, "capslock"},
	{ModNumLock, "numlock"},
}

// Has reports whether every modifier in m is set.
func (s Modifier) Has(m Modifier) bool {
	return s&m == m
}

// With returns s with m set.
func (s Modifier) With(m Modifier) Modifier {
	return s | m
}

// Without returns s with m cleared.
func (s Modifier) Without(m Modifier) Modifier {
	return s &^ m
}

func (s Modifier) String() string {
	var names []string
	for _, n := range modifierNames {
		if s.Has(n.mod) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}
