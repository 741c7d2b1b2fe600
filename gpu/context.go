// Package gpu wraps OpenGL buffers, textures, vertex arrays and programs in
// owning types that bind themselves through shared, tracked binding points.
//
// All binding state of one native context lives in a Context. Wrappers
// created from the same Context share its binding slots, so a bind issued by
// one wrapper is seen by every other wrapper targeting the same binding
// point and redundant native bind calls are skipped.
package gpu

import (
	"math"

	"glsb/binding"
)

// BufferSlot is the tracked binding point of a buffer target.
type BufferSlot = binding.Slot[BufferTarget, uint32]

// TextureSlot is the tracked binding point of a texture target.
type TextureSlot = binding.Slot[TextureTarget, uint32]

// Context holds the native functions and the binding state of one OpenGL
// context. It is not safe for concurrent use.
type Context struct {
	funcs       Functions
	maxTransfer uint64

	buffers      *binding.Registry[BufferTarget, uint32]
	textures     *binding.Registry[TextureTarget, uint32]
	vertexArrays *binding.Slot[vertexArrayTarget, uint32]
	programs     *binding.Slot[programTarget, uint32]
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithMaxTransferSize overrides the largest byte count a single upload may
// carry.
func WithMaxTransferSize(n uint64) ContextOption {
	return func(c *Context) {
		c.maxTransfer = n
	}
}

// NewContext returns the binding state for a context driven through f.
func NewContext(f Functions, opts ...ContextOption) *Context {
	c := &Context{
		funcs:       f,
		maxTransfer: math.MaxInt,
		buffers:     binding.NewRegistry[BufferTarget, uint32](),
		textures:    binding.NewRegistry[TextureTarget, uint32](),
	}
	for _, opt := range opts {
		opt(c)
	}

	bindBuffer := func(target BufferTarget, id uint32) {
		f.BindBuffer(Enum(target), id)
	}
	c.buffers.Register(ArrayBuffer, bindBuffer)
	c.buffers.Register(ElementArrayBuffer, bindBuffer)
	c.buffers.Register(UniformBuffer, bindBuffer)

	c.textures.Register(Texture2D, func(target TextureTarget, id uint32) {
		f.BindTexture(Enum(target), id)
	})

	// The element array binding is vertex array state: switching vertex
	// arrays changes it behind the buffer slot.
	elements := c.buffers.Slot(ElementArrayBuffer)
	c.vertexArrays = binding.NewSlot(vertexArrayTarget{}, func(_ vertexArrayTarget, id uint32) {
		f.BindVertexArray(id)
		elements.Invalidate()
	})

	c.programs = binding.NewSlot(programTarget{}, func(_ programTarget, id uint32) {
		f.UseProgram(id)
	})

	return c
}

// Functions returns the native functions of the context.
func (c *Context) Functions() Functions {
	return c.funcs
}

// MaxTransferSize returns the largest byte count a single upload may carry.
func (c *Context) MaxTransferSize() uint64 {
	return c.maxTransfer
}

// BufferSlot returns the shared binding slot of a buffer target. Unknown
// targets panic.
func (c *Context) BufferSlot(target BufferTarget) *BufferSlot {
	return c.buffers.Slot(target)
}

// TextureSlot returns the shared binding slot of a texture target. Unknown
// targets panic.
func (c *Context) TextureSlot(target TextureTarget) *TextureSlot {
	return c.textures.Slot(target)
}

// Invalidate forgets all cached binding state. Call it after code outside
// this package changed bindings on the native context.
func (c *Context) Invalidate() {
	c.buffers.Invalidate()
	c.textures.Invalidate()
	c.vertexArrays.Invalidate()
	c.programs.Invalidate()
}

// CheckError returns the pending native error, if any, as an *Error.
func (c *Context) CheckError(op string) error {
	if code := c.funcs.GetError(); code != NO_ERROR {
		return &Error{Op: op, Code: code}
	}
	return nil
}
