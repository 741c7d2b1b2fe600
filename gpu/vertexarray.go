package gpu

import (
	"fmt"

	"glsb/handle"
)

// Attribute describes one vertex attribute inside a vertex buffer.
type Attribute struct {
	Index      uint32
	Size       int
	Type       Enum
	Normalized bool
	Stride     int
	Offset     int
}

// VertexArray owns one native vertex array object.
type VertexArray struct {
	ctx *Context
	obj *handle.Unique[uint32]
}

// NewVertexArray allocates a native vertex array object.
func NewVertexArray(ctx *Context) (*VertexArray, error) {
	f := ctx.Functions()
	slot := ctx.vertexArrays
	elements := ctx.BufferSlot(ElementArrayBuffer)

	id := f.GenVertexArray()
	if id == 0 {
		return nil, fmt.Errorf("creating vertex array: %w", ErrResourceCreation)
	}
	return &VertexArray{
		ctx: ctx,
		obj: handle.New(id, func(id uint32) {
			// Deleting the bound vertex array reverts to vertex array 0
			// and its own index buffer binding.
			if slot.IsBound(id) {
				elements.Invalidate()
			}
			slot.Forget(id)
			f.DeleteVertexArray(id)
		}),
	}, nil
}

// ID returns the native vertex array name.
func (va *VertexArray) ID() uint32 {
	return va.obj.Get()
}

// Bind binds the vertex array until Unbind.
func (va *VertexArray) Bind() {
	mustLive(va.obj, "binding vertex array")
	va.ctx.vertexArrays.Bind(va.ID())
}

// Unbind unbinds the vertex array if it is the bound one.
func (va *VertexArray) Unbind() {
	if va.ctx.vertexArrays.IsBound(va.ID()) {
		va.ctx.vertexArrays.Unbind()
	}
}

// SetAttributes records where attrs are sourced from in buf and enables
// them.
func (va *VertexArray) SetAttributes(buf *Buffer[Vertices], attrs ...Attribute) {
	mustLive(va.obj, "setting vertex attributes")
	mustLive(buf.obj, "setting vertex attributes")
	vsc := va.ctx.vertexArrays.Scoped(va.ID())
	defer vsc.Release()

	bsc := buf.slot.Scoped(buf.ID())
	defer bsc.Release()

	f := va.ctx.Functions()
	for _, a := range attrs {
		f.VertexAttribPointer(a.Index, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
		f.EnableVertexAttribArray(a.Index)
	}
}

// SetIndices attaches buf as the index buffer of the vertex array. The
// element array binding is part of the vertex array, so buf stays bound to
// it.
func (va *VertexArray) SetIndices(buf *Buffer[Indices]) {
	mustLive(va.obj, "setting indices")
	sc := va.ctx.vertexArrays.Scoped(va.ID())
	defer sc.Release()

	buf.Bind()
}

// Release deletes the native vertex array. It is safe to call more than
// once.
func (va *VertexArray) Release() {
	va.obj.Release()
}
