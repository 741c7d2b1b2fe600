package gpu

import (
	"fmt"

	"go.uber.org/zap"

	"glsb/handle"
	"glsb/unsafer"
)

// Usage is the compile-time usage class of a Buffer. It selects the binding
// point the buffer is bound to.
type Usage interface {
	Target() BufferTarget
}

// Vertices is the usage class of vertex attribute buffers.
type Vertices struct{}

// Target implements Usage.
func (Vertices) Target() BufferTarget { return ArrayBuffer }

// Indices is the usage class of index buffers.
type Indices struct{}

// Target implements Usage.
func (Indices) Target() BufferTarget { return ElementArrayBuffer }

// Uniforms is the usage class of uniform block buffers.
type Uniforms struct{}

// Target implements Usage.
func (Uniforms) Target() BufferTarget { return UniformBuffer }

// Buffer owns one native buffer object of usage class U.
type Buffer[U Usage] struct {
	ctx  *Context
	slot *BufferSlot
	obj  *handle.Unique[uint32]
	size int
}

// NewBuffer allocates a native buffer object.
func NewBuffer[U Usage](ctx *Context) (*Buffer[U], error) {
	var usage U
	target := usage.Target()
	slot := ctx.BufferSlot(target)
	f := ctx.Functions()

	id := f.GenBuffer()
	if id == 0 {
		return nil, fmt.Errorf("creating %s buffer: %w", target, ErrResourceCreation)
	}
	Logger().Debug("buffer created", zap.Stringer("target", target), zap.Uint32("id", id))

	return &Buffer[U]{
		ctx:  ctx,
		slot: slot,
		obj: handle.New(id, func(id uint32) {
			slot.Forget(id)
			f.DeleteBuffer(id)
			Logger().Debug("buffer deleted", zap.Stringer("target", target), zap.Uint32("id", id))
		}),
	}, nil
}

// ID returns the native buffer name.
func (b *Buffer[U]) ID() uint32 {
	return b.obj.Get()
}

// Target returns the binding point of the buffer.
func (b *Buffer[U]) Target() BufferTarget {
	return b.slot.Target()
}

// Size returns the byte size of the storage set by the last upload.
func (b *Buffer[U]) Size() int {
	return b.size
}

// Bind binds the buffer until Unbind. Uploads made meanwhile reuse the
// binding instead of binding again.
func (b *Buffer[U]) Bind() {
	mustLive(b.obj, "binding buffer")
	b.slot.Bind(b.ID())
}

// Unbind unbinds the buffer if it is the one bound to its target.
func (b *Buffer[U]) Unbind() {
	if b.slot.IsBound(b.ID()) {
		b.slot.Unbind()
	}
}

// SetData replaces the whole storage of the buffer with data.
func (b *Buffer[U]) SetData(data []byte, hint UsageHint) error {
	return b.upload(uint64(len(data)), data, hint)
}

// Reserve replaces the storage of the buffer with size bytes of undefined
// content.
func (b *Buffer[U]) Reserve(size uint64, hint UsageHint) error {
	return b.upload(size, nil, hint)
}

func (b *Buffer[U]) upload(size uint64, data []byte, hint UsageHint) error {
	if !b.obj.Valid() {
		return fmt.Errorf("uploading to %s buffer: %w", b.Target(), ErrReleased)
	}
	if size > b.ctx.MaxTransferSize() {
		return fmt.Errorf("uploading %d bytes to %s buffer %d: %w",
			size, b.Target(), b.ID(), ErrSizeOutOfRange)
	}

	sc := b.slot.Scoped(b.ID())
	defer sc.Release()

	b.ctx.Functions().BufferData(Enum(b.Target()), int(size), data, Enum(hint))
	b.size = int(size)
	return nil
}

// Release deletes the native buffer. It is safe to call more than once.
func (b *Buffer[U]) Release() {
	b.obj.Release()
	b.size = 0
}

// SetSlice uploads the memory of data into buf, replacing its storage.
func SetSlice[T any, U Usage](buf *Buffer[U], data []T, hint UsageHint) error {
	return buf.SetData(unsafer.SliceToBytes(data), hint)
}
