package app_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"

	"glsb/app"
)

type fakeWindow struct {
	closeAfter int
	swaps      int
	closed     bool
}

func (w *fakeWindow) ShouldClose() bool {
	return w.closed || (w.closeAfter >= 0 && w.swaps >= w.closeAfter)
}

func (w *fakeWindow) SetShouldClose(v bool)                   { w.closed = v }
func (w *fakeWindow) SwapBuffers()                            { w.swaps++ }
func (w *fakeWindow) GetFramebufferSize() (width, height int) { return 800, 600 }

type recordingLayer struct {
	name    string
	log     *[]string
	initErr error
	onDraw  func()
}

func (l *recordingLayer) record(event string) {
	*l.log = append(*l.log, fmt.Sprintf("%s %s", l.name, event))
}

func (l *recordingLayer) Init() error {
	l.record("init")
	return l.initErr
}

func (l *recordingLayer) Cleanup()  { l.record("cleanup") }
func (l *recordingLayer) OnUpdate() { l.record("update") }
func (l *recordingLayer) OnDraw() {
	l.record("draw")
	if l.onDraw != nil {
		l.onDraw()
	}
}

func TestRunUntilWindowCloses(t *testing.T) {
	g := NewWithT(t)

	var log []string
	win := &fakeWindow{closeAfter: 2}
	polls := 0
	var clears [][2]int

	a := app.New(win,
		app.WithPoller(func() { polls++ }),
		app.WithClear(func(w, h int) { clears = append(clears, [2]int{w, h}) }),
	)
	a.Layers().Push(&recordingLayer{name: "overlay", log: &log})
	a.Layers().PushFront(&recordingLayer{name: "scene", log: &log})

	g.Expect(a.Init()).To(Succeed())
	g.Expect(a.Running()).To(BeTrue())
	a.Run()
	a.Cleanup()

	g.Expect(a.Frames()).To(Equal(uint64(2)))
	g.Expect(polls).To(Equal(2))
	g.Expect(clears).To(Equal([][2]int{{800, 600}, {800, 600}}))
	g.Expect(log).To(Equal([]string{
		"scene init", "overlay init",
		"scene update", "overlay update", "scene draw", "overlay draw",
		"scene update", "overlay update", "scene draw", "overlay draw",
		"overlay cleanup", "scene cleanup",
	}))
}

func TestStopFromLayer(t *testing.T) {
	g := NewWithT(t)

	var log []string
	win := &fakeWindow{closeAfter: -1}
	a := app.New(win)
	a.Layers().Push(&recordingLayer{name: "l", log: &log, onDraw: a.Stop})

	g.Expect(a.Init()).To(Succeed())
	a.Run()

	g.Expect(a.Frames()).To(Equal(uint64(1)))
	g.Expect(win.closed).To(BeTrue())
	g.Expect(a.Running()).To(BeFalse())
}

func TestInitFailureCleansUpInitializedLayers(t *testing.T) {
	g := NewWithT(t)

	var log []string
	boom := errors.New("boom")
	a := app.New(&fakeWindow{})
	a.Layers().Push(&recordingLayer{name: "a", log: &log})
	a.Layers().Push(&recordingLayer{name: "b", log: &log, initErr: boom})
	a.Layers().Push(&recordingLayer{name: "c", log: &log})

	err := a.Init()
	g.Expect(errors.Is(err, boom)).To(BeTrue())
	g.Expect(log).To(Equal([]string{"a init", "b init", "a cleanup"}))
	g.Expect(a.Running()).To(BeFalse())

	a.Cleanup()
	g.Expect(log).To(HaveLen(3))
}

func TestLayerStackOrder(t *testing.T) {
	g := NewWithT(t)

	var s app.LayerStack
	var log []string
	first := &recordingLayer{name: "first", log: &log}
	second := &recordingLayer{name: "second", log: &log}
	s.Push(second)
	s.PushFront(first)

	g.Expect(s.Len()).To(Equal(2))
	g.Expect(s.All()).To(Equal([]app.Layer{first, second}))
}
