// Package handle provides exclusive ownership of opaque native resource
// identifiers such as OpenGL object names or Vulkan handles.
package handle

// Unique owns exactly one native resource identifier together with the
// function that releases it.
//
// The zero value of the identifier means "no object". A Unique must not be
// copied after first use; ownership is transferred with Move or Take instead.
//
// Go has no destructors and finalizers run on arbitrary goroutines, which is
// not allowed for graphics contexts bound to a single OS thread. Owners call
// Release explicitly, usually with defer.
type Unique[T comparable] struct {
	noCopy noCopy

	id      T
	release func(T)
}

// New returns a Unique owning id. A nil release function never releases
// anything.
func New[T comparable](id T, release func(T)) *Unique[T] {
	return &Unique[T]{id: id, release: release}
}

// Get returns the owned identifier without transferring ownership.
func (u *Unique[T]) Get() T {
	return u.id
}

// Valid reports whether the handle owns a non-zero identifier.
func (u *Unique[T]) Valid() bool {
	var zero T
	return u.id != zero
}

// Reset replaces the owned identifier with id. When id differs from the
// current value, the old value is released unless it is the zero value.
// Resetting to the value already held is a no-op.
func (u *Unique[T]) Reset(id T) {
	if id == u.id {
		return
	}
	old := u.id
	u.id = id

	var zero T
	if old != zero && u.release != nil {
		u.release(old)
	}
}

// Release frees the owned resource, if any, and leaves the handle empty.
// Calling Release more than once is safe.
func (u *Unique[T]) Release() {
	var zero T
	u.Reset(zero)
}

// Move transfers ownership into a new Unique. The receiver is left empty and
// its Release becomes a no-op.
func (u *Unique[T]) Move() *Unique[T] {
	moved := &Unique[T]{id: u.id, release: u.release}

	var zero T
	u.id = zero
	return moved
}

// Take releases whatever u currently owns and then adopts the identifier and
// release function of src. src is left empty.
func (u *Unique[T]) Take(src *Unique[T]) {
	if src == u {
		return
	}
	u.Release()

	var zero T
	u.id, src.id = src.id, zero
	u.release = src.release
}

// noCopy may be embedded into structs which must not be copied after the
// first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

// Lock is a no-op used by the -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
