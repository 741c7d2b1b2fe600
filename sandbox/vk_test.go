package sandbox

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"glsb/vkcore"
)

func TestVKLayerConfig(t *testing.T) {
	g := NewWithT(t)

	l := NewVKLayer([]string{"VK_KHR_surface"}, true, nil)
	g.Expect(l.cfg.Extensions).To(Equal([]string{"VK_KHR_surface"}))
	g.Expect(l.cfg.Layers).To(Equal([]string{vkcore.ValidationLayer}))

	l = NewVKLayer(nil, false, nil)
	g.Expect(l.cfg.Layers).To(BeEmpty())
}

func TestVKLayerInitFailure(t *testing.T) {
	g := NewWithT(t)

	l := NewVKLayer(nil, true, nil)
	l.create = func(vkcore.InstanceConfig) (*vkcore.Instance, error) {
		return nil, vkcore.ErrLayersUnavailable
	}

	err := l.Init()
	g.Expect(errors.Is(err, vkcore.ErrLayersUnavailable)).To(BeTrue())
	g.Expect(l.Instance()).To(BeNil())

	l.Cleanup()
}
