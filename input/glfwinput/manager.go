// Package glfwinput feeds GLFW window events into the input package.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"glsb/input"
)

// Manager is an input.Manager for a GLFW window.
type Manager struct {
	input.Dispatcher
	win *glfw.Window
}

var _ input.Manager = (*Manager)(nil)

// New installs key and scroll callbacks on win. Any callbacks set before
// are replaced.
func New(win *glfw.Window) *Manager {
	m := &Manager{win: win}
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		m.DispatchKey(input.KeyCode(key), input.KeyState(action), input.Modifier(mods))
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		m.DispatchScroll(xoff, yoff)
	})
	return m
}

// KeyState implements input.Manager.
func (m *Manager) KeyState(key input.KeyCode) input.KeyState {
	return input.KeyState(m.win.GetKey(glfw.Key(key)))
}
