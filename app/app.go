// Package app runs layers in a window's frame loop.
package app

import (
	"fmt"

	"go.uber.org/zap"
)

// Window is the part of a native window the frame loop drives. A
// *glfw.Window satisfies it.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	GetFramebufferSize() (width, height int)
}

// Option configures an Application.
type Option func(*Application)

// WithPoller sets the function that processes pending window events at the
// start of every frame, e.g. glfw.PollEvents.
func WithPoller(poll func()) Option {
	return func(a *Application) {
		a.poll = poll
	}
}

// WithClear sets the function that prepares the framebuffer before layers
// draw. It receives the framebuffer size.
func WithClear(clear func(width, height int)) Option {
	return func(a *Application) {
		a.clear = clear
	}
}

// Application owns a window's frame loop and the layers drawn into it.
type Application struct {
	win    Window
	poll   func()
	clear  func(width, height int)
	layers LayerStack

	initialized []Layer
	running     bool
	frames      uint64
}

// New returns an application drawing into win.
func New(win Window, opts ...Option) *Application {
	a := &Application{
		win:   win,
		poll:  func() {},
		clear: func(int, int) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Layers returns the layer stack. Layers must be added before Init.
func (a *Application) Layers() *LayerStack {
	return &a.layers
}

// Init initializes every layer front to back. If a layer fails, the layers
// initialized before it are cleaned up and the error is returned.
func (a *Application) Init() error {
	for _, l := range a.layers.All() {
		if err := l.Init(); err != nil {
			a.Cleanup()
			return fmt.Errorf("initializing layer %T: %w", l, err)
		}
		a.initialized = append(a.initialized, l)
		Logger().Debug("layer initialized", zap.String("layer", fmt.Sprintf("%T", l)))
	}
	a.running = true
	return nil
}

// Run updates and draws frames until the window is closed or Stop is
// called.
func (a *Application) Run() {
	for a.running {
		a.Update()
		if !a.running {
			break
		}
		a.Draw()
	}
	Logger().Info("frame loop finished", zap.Uint64("frames", a.frames))
}

// Update processes events and lets every layer update. It stops the
// application once the window was asked to close.
func (a *Application) Update() {
	if a.win.ShouldClose() {
		a.running = false
		return
	}

	a.poll()
	for _, l := range a.layers.layers {
		l.OnUpdate()
	}
	a.clear(a.win.GetFramebufferSize())
}

// Draw lets every layer draw and presents the frame.
func (a *Application) Draw() {
	for _, l := range a.layers.layers {
		l.OnDraw()
	}
	a.win.SwapBuffers()
	a.frames++
}

// Stop ends Run after the current frame and asks the window to close.
func (a *Application) Stop() {
	a.running = false
	a.win.SetShouldClose(true)
}

// Running reports whether the frame loop runs.
func (a *Application) Running() bool {
	return a.running
}

// Frames returns the number of frames presented.
func (a *Application) Frames() uint64 {
	return a.frames
}

// Cleanup cleans up initialized layers back to front. It is safe to call
// more than once.
func (a *Application) Cleanup() {
	for i := len(a.initialized) - 1; i >= 0; i-- {
		a.initialized[i].Cleanup()
	}
	a.initialized = nil
	a.running = false
}
