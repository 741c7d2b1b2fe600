package gpu_test

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"glsb/gpu"
)

func TestCheckError(t *testing.T) {
	g := NewWithT(t)
	ctx, rec := newContext()

	g.Expect(ctx.CheckError("draw")).To(Succeed())

	rec.Errors = []gpu.Enum{gpu.INVALID_OPERATION}
	err := ctx.CheckError("draw")

	var glErr *gpu.Error
	g.Expect(errors.As(err, &glErr)).To(BeTrue())
	g.Expect(glErr.Code).To(Equal(gpu.Enum(gpu.INVALID_OPERATION)))
	g.Expect(err.Error()).To(Equal("gpu: draw: GL_INVALID_OPERATION"))
}

func TestContextSharesSlotsPerTarget(t *testing.T) {
	g := NewWithT(t)
	ctx, _ := newContext()

	g.Expect(ctx.BufferSlot(gpu.ArrayBuffer)).To(BeIdenticalTo(ctx.BufferSlot(gpu.ArrayBuffer)))
	g.Expect(ctx.BufferSlot(gpu.ArrayBuffer)).NotTo(BeIdenticalTo(ctx.BufferSlot(gpu.ElementArrayBuffer)))
	g.Expect(func() { ctx.BufferSlot(gpu.BufferTarget(0x1234)) }).To(Panic())
}

func TestContextsAreIndependent(t *testing.T) {
	g := NewWithT(t)
	first, _ := newContext()
	second, _ := newContext()

	a, _ := gpu.NewBuffer[gpu.Vertices](first)
	a.Bind()

	g.Expect(second.BufferSlot(gpu.ArrayBuffer).Current()).To(BeZero())
}

func TestInvalidateForcesRebind(t *testing.T) {
	g := NewWithT(t)
	ctx, rec := newContext()

	buf, _ := gpu.NewBuffer[gpu.Vertices](ctx)
	buf.Bind()
	ctx.Invalidate()
	rec.Reset()

	buf.Bind()
	g.Expect(rec.Count("BindBuffer")).To(Equal(1))
}

func TestDefaultMaxTransferSize(t *testing.T) {
	g := NewWithT(t)
	ctx, _ := newContext()
	g.Expect(ctx.MaxTransferSize()).To(Equal(uint64(math.MaxInt)))
}
