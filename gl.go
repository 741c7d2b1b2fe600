package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"glsb/app"
	"glsb/config"
	"glsb/gpu"
	"glsb/gpu/glnative"
	"glsb/input"
	"glsb/input/glfwinput"
	"glsb/renderer"
	"glsb/sandbox"
)

var anisotropyExtensions = []string{
	"GL_ARB_texture_filter_anisotropic",
	"GL_EXT_texture_filter_anisotropic",
}

func runGL(cfg *config.Config, log *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GL.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GL.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.GL.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer window.Destroy()

	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	funcs, err := glnative.New()
	if err != nil {
		return err
	}
	ctx := gpu.NewContext(funcs, cfg.GL.ContextOptions()...)

	log.Info("using OpenGL",
		zap.String("version", funcs.GetString(gpu.VERSION)),
		zap.String("glsl", funcs.GetString(gpu.SHADING_LANGUAGE_VERSION)),
		zap.String("renderer", funcs.GetString(gpu.RENDERER)),
	)

	var maxAnisotropy float32
	for _, ext := range anisotropyExtensions {
		if glfw.ExtensionSupported(ext) {
			maxAnisotropy = funcs.GetFloat(gpu.MAX_TEXTURE_MAX_ANISOTROPY)
			log.Info("anisotropic filtering supported", zap.Float32("max", maxAnisotropy))
			break
		}
	}

	in := glfwinput.New(window)
	in.OnKey(func(key input.KeyCode, state input.KeyState, _ input.Modifier) {
		if key == input.KeyEsc && state == input.Pressed {
			window.SetShouldClose(true)
		}
	})

	r := renderer.New(ctx)
	r.Init()
	defer r.Release()

	a := app.New(window,
		app.WithPoller(glfw.PollEvents),
		app.WithClear(r.ClearScreen),
	)
	a.Layers().Push(sandbox.NewGLLayer(ctx, r, in, window.GetFramebufferSize, sandbox.GLOptions{
		Texture:       cfg.Texture,
		MaxAnisotropy: maxAnisotropy,
		Logger:        log.Named("sandbox"),
	}))

	if err := a.Init(); err != nil {
		return err
	}
	defer a.Cleanup()

	a.Run()

	if err := ctx.CheckError("frame loop"); err != nil {
		log.Warn("pending OpenGL error", zap.Error(err))
	}
	return nil
}
