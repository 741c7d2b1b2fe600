package app

// Layer is one slice of an application's per-frame work, e.g. a scene or an
// overlay.
type Layer interface {
	// Init acquires the layer's resources. It runs once, on the thread that
	// owns the graphics context.
	Init() error
	// Cleanup releases what Init acquired.
	Cleanup()
	OnUpdate()
	OnDraw()
}

// LayerStack orders layers. Layers at the front update and draw first.
type LayerStack struct {
	layers []Layer
}

// Push adds l at the back of the stack.
func (s *LayerStack) Push(l Layer) {
	s.layers = append(s.layers, l)
}

// PushFront adds l at the front of the stack.
func (s *LayerStack) PushFront(l Layer) {
	s.layers = append([]Layer{l}, s.layers...)
}

// Len returns the number of layers.
func (s *LayerStack) Len() int {
	return len(s.layers)
}

// All returns the layers front to back.
func (s *LayerStack) All() []Layer {
	return append([]Layer(nil), s.layers...)
}
