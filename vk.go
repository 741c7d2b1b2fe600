package main

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"glsb/app"
	"glsb/config"
	"glsb/sandbox"
	"glsb/vkcore"
)

// vkWindow is a window without a client API. It has nothing to swap.
type vkWindow struct {
	*glfw.Window
}

func (vkWindow) SwapBuffers() {}

func runVK(cfg *config.Config, log *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init: %w", err)
	}
	defer glfw.Terminate()

	if !glfw.VulkanSupported() {
		return errors.New("glfw: no Vulkan support found")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, "Vulkan sandbox", nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()

	if err := vkcore.Init(glfw.GetVulkanGetInstanceProcAddress()); err != nil {
		return err
	}

	a := app.New(vkWindow{window}, app.WithPoller(glfw.PollEvents))
	a.Layers().Push(sandbox.NewVKLayer(
		window.GetRequiredInstanceExtensions(),
		cfg.Vulkan.Validation,
		log.Named("sandbox"),
	))

	if err := a.Init(); err != nil {
		return err
	}
	defer a.Cleanup()

	a.Run()
	return nil
}
