package binding

// Scope is a binding acquired for the duration of a block. It remembers
// whether it caused the transition to the bound state, and Release only
// unbinds in that case. A scope nested inside an explicit Bind of the same
// identifier therefore leaves the caller's binding untouched.
type Scope[T, ID comparable] struct {
	slot  *Slot[T, ID]
	owned bool
}

// Acquire binds id on slot for the lifetime of the returned Scope.
func Acquire[T, ID comparable](slot *Slot[T, ID], id ID) Scope[T, ID] {
	return Scope[T, ID]{slot: slot, owned: slot.Bind(id)}
}

// Scoped is Acquire as a method.
//
//	defer slot.Scoped(id).Release()
func (s *Slot[T, ID]) Scoped(id ID) Scope[T, ID] {
	return Acquire(s, id)
}

// Owned reports whether this scope performed the bind.
func (sc Scope[T, ID]) Owned() bool {
	return sc.owned
}

// Release unbinds the slot if the scope performed the bind.
func (sc Scope[T, ID]) Release() {
	if sc.owned {
		sc.slot.Unbind()
	}
}

// With binds id, runs fn and releases the scope on every exit path: normal
// return, returned error and panic.
func (s *Slot[T, ID]) With(id ID, fn func() error) error {
	sc := s.Scoped(id)
	defer sc.Release()

	return fn()
}
