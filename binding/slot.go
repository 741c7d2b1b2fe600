// Package binding tracks what is bound to the implicit, global binding points
// of a graphics context and elides redundant bind calls.
//
// A Slot mirrors one native binding point (e.g. GL_ARRAY_BUFFER). Every
// wrapper targeting that binding point shares the same Slot, so the cached
// value always reflects what was last handed to the native bind primitive.
//
// Slots are not synchronized. All native calls must happen on the thread that
// owns the graphics context, and that thread is the only binder.
package binding

// BindFunc is the native bind primitive of a binding point. It is called with
// the zero ID to unbind.
type BindFunc[T, ID comparable] func(target T, id ID)

// Slot is the tracked state of a single native binding point.
type Slot[T, ID comparable] struct {
	target  T
	bind    BindFunc[T, ID]
	current ID
}

// NewSlot returns a slot for target that binds through fn.
func NewSlot[T, ID comparable](target T, fn BindFunc[T, ID]) *Slot[T, ID] {
	if fn == nil {
		panic("binding: nil bind function")
	}
	return &Slot[T, ID]{target: target, bind: fn}
}

// Target returns the binding point this slot tracks.
func (s *Slot[T, ID]) Target() T {
	return s.target
}

// Current returns the identifier last bound through this slot.
func (s *Slot[T, ID]) Current() ID {
	return s.current
}

// IsBound reports whether id is the currently bound identifier.
func (s *Slot[T, ID]) IsBound(id ID) bool {
	return s.current == id
}

// Bind makes id the bound identifier. It returns false without calling the
// native primitive when id is already bound.
func (s *Slot[T, ID]) Bind(id ID) bool {
	if s.current == id {
		return false
	}
	s.bind(s.target, id)
	s.current = id
	return true
}

// Unbind binds the zero identifier, unless nothing is bound.
func (s *Slot[T, ID]) Unbind() {
	var zero ID
	if s.current == zero {
		return
	}
	s.bind(s.target, zero)
	s.current = zero
}

// Forget clears the cached identifier without a native call if id is the one
// currently bound. Deleting a bound object unbinds it natively.
func (s *Slot[T, ID]) Forget(id ID) {
	if s.current == id {
		var zero ID
		s.current = zero
	}
}

// Invalidate drops the cached identifier without a native call. Use it when
// the native binding was changed behind the slot's back.
func (s *Slot[T, ID]) Invalidate() {
	var zero ID
	s.current = zero
}
