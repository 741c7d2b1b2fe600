// Package sandbox holds the layers the sandbox binaries run.
package sandbox

import (
	"fmt"

	"github.com/xlab/linmath"
	"go.uber.org/zap"

	"glsb/config"
	"glsb/gpu"
	"glsb/input"
	"glsb/mesh"
	"glsb/models"
	"glsb/renderer"
	"glsb/scene"
	"glsb/shaders"
	"glsb/textures"
)

const (
	moveStep  = 0.1
	zoomSpeed = 5
)

// GLOptions configures a GLLayer.
type GLOptions struct {
	Texture config.TextureConfig
	// MaxAnisotropy is the driver limit for anisotropic filtering, or zero
	// when the extension is missing.
	MaxAnisotropy float32
	Logger        *zap.Logger
}

// GLLayer draws a textured, lit cube on a floor quad and moves the camera
// with the keyboard: W/S along the view axis, A/D sideways, Q/Z up and
// down. Scrolling zooms.
type GLLayer struct {
	ctx         *gpu.Context
	r           *renderer.Renderer
	in          input.Manager
	framebuffer func() (width, height int)
	opts        GLOptions
	log         *zap.Logger

	scene  *scene.Scene
	tex    *gpu.Texture
	meshes []renderer.MeshHandle
}

// NewGLLayer returns the OpenGL sandbox layer. framebuffer reports the
// current framebuffer size.
func NewGLLayer(ctx *gpu.Context, r *renderer.Renderer, in input.Manager, framebuffer func() (int, int), opts GLOptions) *GLLayer {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &GLLayer{
		ctx:         ctx,
		r:           r,
		in:          in,
		framebuffer: framebuffer,
		opts:        opts,
		log:         log,
		scene:       scene.Default(),
	}
}

// Scene returns the scene the layer draws.
func (l *GLLayer) Scene() *scene.Scene {
	return l.scene
}

func (l *GLLayer) Init() error {
	l.in.OnScroll(func(_, yoff float64) {
		l.scene.Camera.Zoom(float32(yoff) * zoomSpeed)
	})

	for name, files := range shaders.Materials {
		if err := l.r.Shaders().Load(shaders.FS, name, files.Vertex, files.Fragment); err != nil {
			return fmt.Errorf("loading material: %w", err)
		}
	}

	if err := l.uploadMeshes(); err != nil {
		return err
	}
	if err := l.loadTexture(); err != nil {
		return err
	}
	return nil
}

func (l *GLLayer) uploadMeshes() error {
	cube, err := mesh.LoadOBJFile(models.FS, "cube.obj")
	if err != nil {
		return fmt.Errorf("loading cube: %w", err)
	}
	var lift linmath.Mat4x4
	lift.Identity()
	lift[3][2] = 1
	cube.Transform(&lift)

	for _, m := range []*mesh.Mesh{cube, mesh.GenerateQuad(5, 5)} {
		h, err := l.r.UploadMesh(m, "default")
		if err != nil {
			return err
		}
		l.meshes = append(l.meshes, h)
	}
	return nil
}

func (l *GLLayer) loadTexture() error {
	bm, err := textures.Load(textures.FS, "cube.png")
	if err != nil {
		return err
	}
	bm = bm.Fit(l.opts.Texture.MaxSize)

	tex, err := gpu.NewTexture(l.ctx, gpu.Texture2D)
	if err != nil {
		return err
	}
	tex.SetFiltering(l.opts.Texture.FilterMode(), l.opts.Texture.Mipmaps)
	tex.SetWrapping(l.opts.Texture.WrapMode())
	if l.opts.Texture.Anisotropy && l.opts.MaxAnisotropy > 0 {
		tex.SetAnisotropy(l.opts.MaxAnisotropy)
	}
	if err := bm.Upload(tex); err != nil {
		tex.Release()
		return fmt.Errorf("uploading texture: %w", err)
	}

	l.tex = tex
	l.log.Debug("texture loaded", zap.Int("width", bm.Width), zap.Int("height", bm.Height))
	return nil
}

func (l *GLLayer) Cleanup() {
	for _, h := range l.meshes {
		if err := l.r.ReleaseMesh(h); err != nil {
			l.log.Warn("releasing mesh", zap.Error(err))
		}
	}
	l.meshes = nil
	if l.tex != nil {
		l.tex.Release()
		l.tex = nil
	}
}

func (l *GLLayer) OnUpdate() {
	cam := &l.scene.Camera
	ccs := cam.LocalCCS()

	moves := []struct {
		key  input.KeyCode
		axis linmath.Vec3
		step float32
	}{
		{input.KeyW, ccs.Z, moveStep},
		{input.KeyS, ccs.Z, -moveStep},
		{input.KeyD, ccs.Y, moveStep},
		{input.KeyA, ccs.Y, -moveStep},
		{input.KeyQ, ccs.X, moveStep},
		{input.KeyZ, ccs.X, -moveStep},
	}
	for _, m := range moves {
		if l.in.KeyState(m.key).Down() {
			cam.Move(m.axis, m.step)
		}
	}
}

func (l *GLLayer) OnDraw() {
	l.scene.Camera.SetViewport(l.framebuffer())

	for _, name := range l.r.Shaders().Names() {
		prog, err := l.r.Shaders().Get(name)
		if err != nil {
			continue
		}
		prog.Use()
		l.scene.Apply(prog)
	}

	l.tex.Bind()
	for _, h := range l.meshes {
		if err := l.r.Render(h); err != nil {
			l.log.Error("rendering mesh", zap.Int("mesh", int(h)), zap.Error(err))
		}
	}
	l.tex.Unbind()
}
