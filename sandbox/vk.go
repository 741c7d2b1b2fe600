package sandbox

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
	"go.uber.org/zap"

	"glsb/vkcore"
)

// VKLayer owns the Vulkan instance of the Vulkan sandbox. It draws
// nothing.
type VKLayer struct {
	cfg    vkcore.InstanceConfig
	create func(vkcore.InstanceConfig) (*vkcore.Instance, error)
	log    *zap.Logger

	instance *vkcore.Instance
}

// NewVKLayer returns a layer creating an instance with the given
// extensions, enabling the validation layer if validation is set.
func NewVKLayer(extensions []string, validation bool, log *zap.Logger) *VKLayer {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := vkcore.InstanceConfig{
		AppName:    "Vulkan Sandbox",
		AppVersion: vk.MakeVersion(0, 1, 0),
		Extensions: extensions,
	}
	if validation {
		cfg.Layers = []string{vkcore.ValidationLayer}
	}
	return &VKLayer{cfg: cfg, create: vkcore.CreateInstance, log: log}
}

// Instance returns the instance once Init succeeded.
func (l *VKLayer) Instance() *vkcore.Instance {
	return l.instance
}

func (l *VKLayer) Init() error {
	for _, ext := range l.cfg.Extensions {
		l.log.Info("required extension", zap.String("name", ext))
	}

	inst, err := l.create(l.cfg)
	if err != nil {
		return fmt.Errorf("creating vulkan instance: %w", err)
	}
	l.instance = inst
	return nil
}

func (l *VKLayer) Cleanup() {
	if l.instance != nil {
		l.instance.Release()
		l.instance = nil
	}
}

func (l *VKLayer) OnUpdate() {}
func (l *VKLayer) OnDraw()   {}
