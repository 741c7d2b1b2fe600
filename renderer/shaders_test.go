package renderer_test

import (
	"errors"
	"testing"
	"testing/fstest"

	. "github.com/onsi/gomega"

	"glsb/gpu"
	"glsb/gpu/gputest"
	"glsb/renderer"
	"glsb/shaders"
)

func TestShaderManagerAddReplaces(t *testing.T) {
	g := NewWithT(t)
	rec := gputest.NewRecorder()
	m := renderer.NewShaderManager(gpu.NewContext(rec))

	g.Expect(m.AddSource("default", "vs", "fs")).To(Succeed())
	first, err := m.Get("default")
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(m.AddSource("default", "vs2", "fs2")).To(Succeed())
	second, _ := m.Get("default")

	g.Expect(second).NotTo(BeIdenticalTo(first))
	g.Expect(first.ID()).To(BeZero())
	g.Expect(rec.Count("DeleteProgram")).To(Equal(1))
	// Shader objects are dropped once linked.
	g.Expect(rec.Count("DeleteShader")).To(Equal(4))
}

func TestShaderManagerErrors(t *testing.T) {
	g := NewWithT(t)
	rec := gputest.NewRecorder()
	m := renderer.NewShaderManager(gpu.NewContext(rec))

	_, err := m.Get("missing")
	g.Expect(errors.Is(err, renderer.ErrUnknownShader)).To(BeTrue())

	rec.CompileLog = "syntax error"
	err = m.AddSource("broken", "vs", "fs")
	var shaderErr *gpu.ShaderError
	g.Expect(errors.As(err, &shaderErr)).To(BeTrue())
	g.Expect(m.Names()).To(BeEmpty())
}

func TestShaderManagerLoad(t *testing.T) {
	g := NewWithT(t)
	rec := gputest.NewRecorder()
	m := renderer.NewShaderManager(gpu.NewContext(rec))

	fsys := fstest.MapFS{
		"a.vert": &fstest.MapFile{Data: []byte("vertex source")},
		"a.frag": &fstest.MapFile{Data: []byte("fragment source")},
	}
	g.Expect(m.Load(fsys, "a", "a.vert", "a.frag")).To(Succeed())
	g.Expect(m.Load(fsys, "b", "b.vert", "a.frag")).NotTo(Succeed())

	sources := rec.Named("ShaderSource")
	g.Expect(sources).To(HaveLen(2))
	g.Expect(sources[0].Args[1]).To(Equal("vertex source"))
	g.Expect(m.Names()).To(Equal([]string{"a"}))
}

func TestEmbeddedMaterialsLoad(t *testing.T) {
	g := NewWithT(t)
	m := renderer.NewShaderManager(gpu.NewContext(gputest.NewRecorder()))

	for name, files := range shaders.Materials {
		g.Expect(m.Load(shaders.FS, name, files.Vertex, files.Fragment)).To(Succeed())
	}
	g.Expect(m.Names()).To(Equal([]string{"default", "flat"}))
}
