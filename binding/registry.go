package binding

import "fmt"

// Registry maps binding-point targets to their shared slots. It is the
// explicit replacement for per-target global state: whoever owns the
// registry owns the binding state of one graphics context.
type Registry[T, ID comparable] struct {
	slots map[T]*Slot[T, ID]
	order []T
}

// NewRegistry returns an empty registry.
func NewRegistry[T, ID comparable]() *Registry[T, ID] {
	return &Registry[T, ID]{slots: make(map[T]*Slot[T, ID])}
}

// Register creates the slot for target. Registering the same target twice is
// a programming error and panics.
func (r *Registry[T, ID]) Register(target T, fn BindFunc[T, ID]) *Slot[T, ID] {
	if _, ok := r.slots[target]; ok {
		panic(fmt.Sprintf("binding: target %v registered twice", target))
	}
	slot := NewSlot(target, fn)
	r.slots[target] = slot
	r.order = append(r.order, target)
	return slot
}

// Lookup returns the slot registered for target.
func (r *Registry[T, ID]) Lookup(target T) (*Slot[T, ID], bool) {
	slot, ok := r.slots[target]
	return slot, ok
}

// Slot returns the slot registered for target and panics if there is none.
func (r *Registry[T, ID]) Slot(target T) *Slot[T, ID] {
	slot, ok := r.slots[target]
	if !ok {
		panic(fmt.Sprintf("binding: unknown target %v", target))
	}
	return slot
}

// Targets returns the registered targets in registration order.
func (r *Registry[T, ID]) Targets() []T {
	targets := make([]T, len(r.order))
	copy(targets, r.order)
	return targets
}

// Invalidate drops the cached state of every slot.
func (r *Registry[T, ID]) Invalidate() {
	for _, slot := range r.slots {
		slot.Invalidate()
	}
}
