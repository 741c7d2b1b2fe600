package binding_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"glsb/binding"
)

type target uint32

const (
	arrayTarget   target = 0x8892
	elementTarget target = 0x8893
)

type bindCall struct {
	target target
	id     uint32
}

type nativeBinder struct {
	calls []bindCall
}

func (n *nativeBinder) bind(t target, id uint32) {
	n.calls = append(n.calls, bindCall{target: t, id: id})
}

var _ = Describe("Slot", func() {
	var (
		native *nativeBinder
		slot   *binding.Slot[target, uint32]
	)

	BeforeEach(func() {
		native = &nativeBinder{}
		slot = binding.NewSlot(arrayTarget, native.bind)
	})

	It("starts unbound", func() {
		Expect(slot.Current()).To(BeZero())
		Expect(slot.Target()).To(Equal(arrayTarget))
	})

	It("elides consecutive binds of the same identifier", func() {
		Expect(slot.Bind(4)).To(BeTrue())
		Expect(slot.Bind(4)).To(BeFalse())
		Expect(slot.Bind(4)).To(BeFalse())
		Expect(native.calls).To(Equal([]bindCall{{arrayTarget, 4}}))
	})

	It("issues a native call for every transition", func() {
		slot.Bind(1)
		slot.Bind(2)
		slot.Bind(2)
		slot.Bind(1)
		Expect(native.calls).To(HaveLen(3))
		Expect(slot.Current()).To(Equal(uint32(1)))
	})

	It("caches exactly what was last passed to the native call", func() {
		for _, id := range []uint32{3, 3, 5, 0, 7, 7} {
			slot.Bind(id)
			last := native.calls[len(native.calls)-1]
			Expect(slot.Current()).To(Equal(last.id))
		}
	})

	It("unbinds with the zero identifier only when something is bound", func() {
		slot.Unbind()
		Expect(native.calls).To(BeEmpty())

		slot.Bind(9)
		slot.Unbind()
		Expect(native.calls).To(Equal([]bindCall{{arrayTarget, 9}, {arrayTarget, 0}}))
		Expect(slot.Current()).To(BeZero())
	})

	It("forgets a deleted identifier without a native call", func() {
		slot.Bind(9)
		slot.Forget(8)
		Expect(slot.Current()).To(Equal(uint32(9)))

		slot.Forget(9)
		Expect(slot.Current()).To(BeZero())
		Expect(native.calls).To(HaveLen(1))
	})

	It("rebinds after invalidation", func() {
		slot.Bind(2)
		slot.Invalidate()
		Expect(slot.Bind(2)).To(BeTrue())
		Expect(native.calls).To(HaveLen(2))
	})

	It("rejects a nil bind function", func() {
		Expect(func() { binding.NewSlot[target, uint32](arrayTarget, nil) }).To(Panic())
	})
})

var _ = Describe("Scope", func() {
	var (
		native *nativeBinder
		slot   *binding.Slot[target, uint32]
	)

	BeforeEach(func() {
		native = &nativeBinder{}
		slot = binding.NewSlot(arrayTarget, native.bind)
	})

	It("binds and unbinds when it performed the transition", func() {
		sc := binding.Acquire(slot, 3)
		Expect(sc.Owned()).To(BeTrue())
		Expect(slot.Current()).To(Equal(uint32(3)))

		sc.Release()
		Expect(slot.Current()).To(BeZero())
		Expect(native.calls).To(Equal([]bindCall{{arrayTarget, 3}, {arrayTarget, 0}}))
	})

	It("leaves an outer explicit bind untouched", func() {
		slot.Bind(3)

		sc := slot.Scoped(3)
		Expect(sc.Owned()).To(BeFalse())
		sc.Release()

		Expect(slot.Current()).To(Equal(uint32(3)))
		Expect(native.calls).To(HaveLen(1))
	})

	It("nests without clobbering the outer scope", func() {
		outer := slot.Scoped(5)
		inner := slot.Scoped(5)
		inner.Release()
		Expect(slot.Current()).To(Equal(uint32(5)))

		outer.Release()
		Expect(slot.Current()).To(BeZero())
	})

	It("restores the unbound state when switching from another identifier", func() {
		slot.Bind(1)

		sc := slot.Scoped(2)
		Expect(sc.Owned()).To(BeTrue())
		sc.Release()

		Expect(slot.Current()).To(BeZero())
	})

	Context("With", func() {
		It("unbinds after a normal return", func() {
			err := slot.With(6, func() error {
				Expect(slot.Current()).To(Equal(uint32(6)))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(slot.Current()).To(BeZero())
		})

		It("unbinds and propagates a returned error", func() {
			boom := errors.New("boom")
			err := slot.With(6, func() error { return boom })
			Expect(err).To(MatchError(boom))
			Expect(slot.Current()).To(BeZero())
		})

		It("unbinds while a panic unwinds", func() {
			Expect(func() {
				_ = slot.With(6, func() error { panic("boom") })
			}).To(PanicWith("boom"))
			Expect(slot.Current()).To(BeZero())
			Expect(native.calls).To(Equal([]bindCall{{arrayTarget, 6}, {arrayTarget, 0}}))
		})

		It("does not unbind a caller's binding on error", func() {
			slot.Bind(6)
			err := slot.With(6, func() error { return errors.New("boom") })
			Expect(err).To(HaveOccurred())
			Expect(slot.Current()).To(Equal(uint32(6)))
		})
	})
})

var _ = Describe("Registry", func() {
	var (
		native   *nativeBinder
		registry *binding.Registry[target, uint32]
	)

	BeforeEach(func() {
		native = &nativeBinder{}
		registry = binding.NewRegistry[target, uint32]()
		registry.Register(arrayTarget, native.bind)
		registry.Register(elementTarget, native.bind)
	})

	It("shares one slot per target", func() {
		Expect(registry.Slot(arrayTarget)).To(BeIdenticalTo(registry.Slot(arrayTarget)))
		Expect(registry.Slot(arrayTarget)).NotTo(BeIdenticalTo(registry.Slot(elementTarget)))
	})

	It("keeps the state of different targets apart", func() {
		registry.Slot(arrayTarget).Bind(1)
		registry.Slot(elementTarget).Bind(1)
		Expect(native.calls).To(Equal([]bindCall{{arrayTarget, 1}, {elementTarget, 1}}))
	})

	It("lists targets in registration order", func() {
		Expect(registry.Targets()).To(Equal([]target{arrayTarget, elementTarget}))
	})

	It("fails loudly on unknown or duplicate targets", func() {
		Expect(func() { registry.Slot(target(1)) }).To(Panic())
		Expect(func() { registry.Register(arrayTarget, native.bind) }).To(Panic())

		_, ok := registry.Lookup(target(1))
		Expect(ok).To(BeFalse())
	})

	It("invalidates every slot", func() {
		registry.Slot(arrayTarget).Bind(1)
		registry.Slot(elementTarget).Bind(2)
		registry.Invalidate()
		Expect(registry.Slot(arrayTarget).Current()).To(BeZero())
		Expect(registry.Slot(elementTarget).Current()).To(BeZero())
	})
})
