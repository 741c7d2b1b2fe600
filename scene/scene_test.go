package scene_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"glsb/gpu"
	"glsb/gpu/gputest"
	"glsb/scene"
)

func TestApplySkipsUndeclaredUniforms(t *testing.T) {
	g := NewWithT(t)
	rec := gputest.NewRecorder()
	rec.Uniforms["u_view"] = 0
	rec.Uniforms["u_proj"] = 1
	rec.Uniforms["camera.pos"] = 2
	ctx := gpu.NewContext(rec)

	prog, err := gpu.NewProgram(ctx)
	g.Expect(err).NotTo(HaveOccurred())

	prog.Use()
	n := scene.Default().Apply(prog)

	g.Expect(n).To(Equal(3))
	g.Expect(rec.Count("UniformMatrix4fv")).To(Equal(2))
	g.Expect(rec.Count("Uniform3f")).To(Equal(1))
	g.Expect(rec.Count("Uniform1f")).To(BeZero())
}
