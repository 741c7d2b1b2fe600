// Package vkcore creates the Vulkan instance of the Vulkan sandbox.
package vkcore

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"glsb/handle"
)

// ValidationLayer is the Khronos validation layer enabled in debug runs.
const ValidationLayer = "VK_LAYER_KHRONOS_validation"

// ErrLayersUnavailable is returned when requested instance layers are not
// installed.
var ErrLayersUnavailable = errors.New("vkcore: instance layers unavailable")

// Error is a failed Vulkan call.
type Error struct {
	Op     string
	Result vk.Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("vkcore: %s: %v", e.Op, vk.Error(e.Result))
}

// Unwrap returns the vulkan-go error of the result.
func (e *Error) Unwrap() error {
	return vk.Error(e.Result)
}

func check(op string, res vk.Result) error {
	if res != vk.Success {
		return &Error{Op: op, Result: res}
	}
	return nil
}

// Init loads the Vulkan loader through procAddr, the loader entry point
// returned by glfw.GetVulkanGetInstanceProcAddress.
func Init(procAddr unsafe.Pointer) error {
	vk.SetGetInstanceProcAddr(procAddr)
	if err := vk.Init(); err != nil {
		return fmt.Errorf("initializing vulkan: %w", err)
	}
	return nil
}

// InstanceConfig describes the instance to create.
type InstanceConfig struct {
	AppName    string
	AppVersion uint32
	// Extensions are the required instance extensions, e.g. the ones GLFW
	// needs for surfaces.
	Extensions []string
	// Layers are instance layers to enable. All of them must be available.
	Layers []string
}

// Instance owns a Vulkan instance.
type Instance struct {
	obj *handle.Unique[vk.Instance]
}

// CreateInstance creates a Vulkan 1.1 instance.
func CreateInstance(cfg InstanceConfig) (*Instance, error) {
	if len(cfg.Layers) > 0 {
		if err := CheckValidationSupport(cfg.Layers); err != nil {
			return nil, err
		}
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   cstring(cfg.AppName),
		ApplicationVersion: cfg.AppVersion,
		PEngineName:        cstring("glsb"),
		EngineVersion:      vk.MakeVersion(0, 1, 0),
		ApiVersion:         vk.MakeVersion(1, 1, 0),
	}

	extensions := cstrings(cfg.Extensions)
	layers := cstrings(cfg.Layers)
	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
	}

	var instance vk.Instance
	if err := check("creating instance", vk.CreateInstance(&createInfo, nil, &instance)); err != nil {
		return nil, err
	}

	return &Instance{
		obj: handle.New(instance, func(i vk.Instance) {
			vk.DestroyInstance(i, nil)
		}),
	}, nil
}

// Handle returns the native instance.
func (i *Instance) Handle() vk.Instance {
	return i.obj.Get()
}

// Release destroys the instance. It is safe to call more than once.
func (i *Instance) Release() {
	i.obj.Release()
}

// AvailableLayers lists the installed instance layers.
func AvailableLayers() ([]string, error) {
	var count uint32
	if err := check("enumerating layers", vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, err
	}
	props := make([]vk.LayerProperties, count)
	if err := check("enumerating layers", vk.EnumerateInstanceLayerProperties(&count, props)); err != nil {
		return nil, err
	}

	names := make([]string, 0, count)
	for _, p := range props[:count] {
		p.Deref()
		names = append(names, vk.ToString(p.LayerName[:]))
	}
	return names, nil
}

// CheckValidationSupport returns an error wrapping ErrLayersUnavailable
// unless every layer in required is installed.
func CheckValidationSupport(required []string) error {
	available, err := AvailableLayers()
	if err != nil {
		return err
	}
	if missing := missingNames(required, available); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrLayersUnavailable, strings.Join(missing, ", "))
	}
	return nil
}

func missingNames(required, available []string) []string {
	have := make(map[string]bool, len(available))
	for _, name := range available {
		have[strings.TrimRight(name, "\x00")] = true
	}

	var missing []string
	for _, name := range required {
		name = strings.TrimRight(name, "\x00")
		if !have[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

func cstring(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func cstrings(ss []string) []string {
	if len(ss) == 0 {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = cstring(s)
	}
	return out
}
