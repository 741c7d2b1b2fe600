package input

// KeyHandler receives key events.
type KeyHandler func(key KeyCode, state KeyState, mods Modifier)

// ScrollHandler receives mouse wheel and touchpad scroll offsets.
type ScrollHandler func(xoff, yoff float64)

// Manager is the input source of a window.
type Manager interface {
	// KeyState polls the last reported state of key.
	KeyState(key KeyCode) KeyState
	OnKey(h KeyHandler)
	OnScroll(h ScrollHandler)
}

// Dispatcher fans events out to handlers in registration order. Window
// system adapters embed it and feed it events from their callbacks.
//
// Handlers run on the goroutine that dispatches, normally the one polling
// window events.
type Dispatcher struct {
	keys   []KeyHandler
	scroll []ScrollHandler
}

// OnKey registers a key handler.
func (d *Dispatcher) OnKey(h KeyHandler) {
	d.keys = append(d.keys, h)
}

// OnScroll registers a scroll handler.
func (d *Dispatcher) OnScroll(h ScrollHandler) {
	d.scroll = append(d.scroll, h)
}

// DispatchKey delivers a key event to every key handler.
func (d *Dispatcher) DispatchKey(key KeyCode, state KeyState, mods Modifier) {
	for _, h := range d.keys {
		h(key, state, mods)
	}
}

// DispatchScroll delivers a scroll event to every scroll handler.
func (d *Dispatcher) DispatchScroll(xoff, yoff float64) {
	for _, h := range d.scroll {
		h(xoff, yoff)
	}
}

// State is a Manager driven purely by dispatched events. It suits
// headless runs and tests.
type State struct {
	Dispatcher
	down map[KeyCode]KeyState
}

// NewState returns a State with every key released.
func NewState() *State {
	return &State{down: make(map[KeyCode]KeyState)}
}

// KeyState implements Manager.
func (s *State) KeyState(key KeyCode) KeyState {
	return s.down[key]
}

// Press records a key event and dispatches it.
func (s *State) Press(key KeyCode, state KeyState, mods Modifier) {
	if state == Released {
		delete(s.down, key)
	} else {
		s.down[key] = state
	}
	s.DispatchKey(key, state, mods)
}
