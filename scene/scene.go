package scene

import (
	"github.com/xlab/linmath"

	"glsb/gpu"
)

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     linmath.Vec3
	Intensity float32
}

// DiffuseLight is a point light at Pos.
type DiffuseLight struct {
	Pos       linmath.Vec3
	Color     linmath.Vec3
	Intensity float32
}

// Specular controls highlights.
type Specular struct {
	Roughness float32
	Intensity float32
}

// Scene is the camera and lighting shared by everything drawn in a frame.
type Scene struct {
	Camera   Camera
	Ambient  AmbientLight
	Diffuse  DiffuseLight
	Specular Specular
}

// Default returns the scene the sandbox starts with.
func Default() *Scene {
	return &Scene{
		Camera: Camera{
			Pos:    linmath.Vec3{2, 2, 2},
			Target: linmath.Vec3{0, 0, 0},
			Near:   0.1,
			Far:    10,
			FOV:    40,
			Aspect: 16.0 / 9.0,
		},
		Ambient:  AmbientLight{Color: linmath.Vec3{0.8, 0.8, 1}, Intensity: 0.5},
		Diffuse:  DiffuseLight{Pos: linmath.Vec3{3, 3, 3}, Color: linmath.Vec3{1, 1, 1}, Intensity: 1},
		Specular: Specular{Roughness: 1, Intensity: 1},
	}
}

// Apply uploads the scene uniforms to p. Uniforms the program does not
// declare are skipped; the number of uniforms set is returned.
func (s *Scene) Apply(p *gpu.Program) int {
	view := s.Camera.ViewMatrix()
	proj := s.Camera.ProjMatrix()

	set := []bool{
		p.SetMat4("u_view", &view),
		p.SetMat4("u_proj", &proj),
		p.SetVec3("ambient.color", s.Ambient.Color),
		p.SetFloat("ambient.intensity", s.Ambient.Intensity),
		p.SetVec3("diffuse.pos", s.Diffuse.Pos),
		p.SetVec3("diffuse.color", s.Diffuse.Color),
		p.SetFloat("diffuse.intensity", s.Diffuse.Intensity),
		p.SetFloat("spec.roughness", s.Specular.Roughness),
		p.SetFloat("spec.intensity", s.Specular.Intensity),
		p.SetVec3("camera.pos", s.Camera.Pos),
	}

	n := 0
	for _, ok := range set {
		if ok {
			n++
		}
	}
	return n
}
