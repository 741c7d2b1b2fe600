package sandbox

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/xlab/linmath"

	"glsb/config"
	"glsb/gpu"
	"glsb/gpu/gputest"
	"glsb/input"
	"glsb/renderer"
)

type glFixture struct {
	rec   *gputest.Recorder
	r     *renderer.Renderer
	keys  *input.State
	layer *GLLayer
}

func newGLFixture(maxAnisotropy float32) *glFixture {
	rec := gputest.NewRecorder()
	ctx := gpu.NewContext(rec)
	r := renderer.New(ctx)
	keys := input.NewState()
	layer := NewGLLayer(ctx, r, keys, func() (int, int) { return 800, 400 }, GLOptions{
		Texture:       config.DefaultConfig().Texture,
		MaxAnisotropy: maxAnisotropy,
	})
	return &glFixture{rec: rec, r: r, keys: keys, layer: layer}
}

func distance(a, b linmath.Vec3) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
}

func TestGLLayerInit(t *testing.T) {
	g := NewWithT(t)
	f := newGLFixture(16)

	g.Expect(f.layer.Init()).To(Succeed())

	g.Expect(f.r.Meshes()).To(Equal(2))
	g.Expect(f.r.Shaders().Names()).To(Equal([]string{"default", "flat"}))
	g.Expect(f.rec.Count("TexImage2D")).To(Equal(1))
	g.Expect(f.rec.Count("GenerateMipmap")).To(Equal(1))
	g.Expect(f.rec.Named("TexParameterf")[0].Args[2]).To(Equal(float32(16)))
}

func TestGLLayerSkipsAnisotropyWithoutExtension(t *testing.T) {
	g := NewWithT(t)
	f := newGLFixture(0)

	g.Expect(f.layer.Init()).To(Succeed())
	g.Expect(f.rec.Count("TexParameterf")).To(BeZero())
}

func TestGLLayerInitFailsOnBrokenShader(t *testing.T) {
	g := NewWithT(t)
	f := newGLFixture(0)
	f.rec.CompileLog = "error"

	g.Expect(f.layer.Init()).NotTo(Succeed())
}

func TestGLLayerMovesCamera(t *testing.T) {
	g := NewWithT(t)
	f := newGLFixture(0)
	g.Expect(f.layer.Init()).To(Succeed())

	cam := &f.layer.Scene().Camera
	before := distance(cam.Pos, cam.Target)

	f.keys.Press(input.KeyW, input.Pressed, 0)
	f.layer.OnUpdate()
	g.Expect(distance(cam.Pos, cam.Target)).To(BeNumerically("~", before-moveStep, 1e-5))

	f.keys.Press(input.KeyW, input.Released, 0)
	f.keys.Press(input.KeyS, input.Repeated, 0)
	f.layer.OnUpdate()
	g.Expect(distance(cam.Pos, cam.Target)).To(BeNumerically("~", before, 1e-5))
}

func TestGLLayerZoomsOnScroll(t *testing.T) {
	g := NewWithT(t)
	f := newGLFixture(0)
	g.Expect(f.layer.Init()).To(Succeed())

	f.keys.DispatchScroll(0, 1)
	g.Expect(f.layer.Scene().Camera.FOV).To(Equal(float32(45)))
}

func TestGLLayerDraw(t *testing.T) {
	g := NewWithT(t)
	f := newGLFixture(0)
	g.Expect(f.layer.Init()).To(Succeed())
	f.rec.Reset()

	f.layer.OnDraw()

	g.Expect(f.rec.Count("DrawElements")).To(Equal(2))
	g.Expect(f.rec.Count("BindTexture")).To(Equal(2))
	g.Expect(f.layer.Scene().Camera.Aspect).To(Equal(float32(2)))
}

func TestGLLayerCleanup(t *testing.T) {
	g := NewWithT(t)
	f := newGLFixture(0)
	g.Expect(f.layer.Init()).To(Succeed())

	f.layer.Cleanup()
	g.Expect(f.r.Meshes()).To(BeZero())
	g.Expect(f.rec.Count("DeleteTexture")).To(Equal(1))
	g.Expect(f.rec.Count("DeleteVertexArray")).To(Equal(2))

	f.layer.Cleanup()
	g.Expect(f.rec.Count("DeleteTexture")).To(Equal(1))
}
