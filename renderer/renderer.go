// Package renderer uploads meshes to the GPU and draws them.
//
// All methods that reach the GPU must be called on the thread that owns the
// OpenGL context. The mesh table itself is safe for concurrent use, so
// handles can be looked up and counted from any goroutine.
package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/xlab/linmath"
	"go.uber.org/zap"

	"glsb/gpu"
	"glsb/mesh"
)

var (
	// ErrEmptyMesh is returned when uploading a mesh without indices.
	ErrEmptyMesh = errors.New("renderer: empty mesh")
	// ErrUnknownMesh is returned for handles the renderer did not hand out
	// or has released.
	ErrUnknownMesh = errors.New("renderer: unknown mesh")
)

// MeshHandle identifies an uploaded mesh.
type MeshHandle int

type gpuMesh struct {
	vao      *gpu.VertexArray
	vbo      *gpu.Buffer[gpu.Vertices]
	ibo      *gpu.Buffer[gpu.Indices]
	count    int
	material string
}

func (m *gpuMesh) release() {
	if m.vao != nil {
		m.vao.Release()
	}
	if m.vbo != nil {
		m.vbo.Release()
	}
	if m.ibo != nil {
		m.ibo.Release()
	}
}

// Renderer owns the GPU copies of uploaded meshes and the shader programs
// they are drawn with.
type Renderer struct {
	ctx     *gpu.Context
	shaders *ShaderManager

	ClearColor linmath.Vec4

	mu     sync.Mutex
	meshes []*gpuMesh
}

// New returns a renderer drawing through ctx.
func New(ctx *gpu.Context) *Renderer {
	return &Renderer{
		ctx:        ctx,
		shaders:    NewShaderManager(ctx),
		ClearColor: linmath.Vec4{0, 0, 0.3, 1},
	}
}

// Init sets the fixed pipeline state: alpha blending, depth testing and
// back face culling.
func (r *Renderer) Init() {
	f := r.ctx.Functions()
	c := r.ClearColor
	f.ClearColor(c[0], c[1], c[2], c[3])
	f.Clear(gpu.COLOR_BUFFER_BIT)
	f.Enable(gpu.BLEND)
	f.BlendFunc(gpu.SRC_ALPHA, gpu.ONE_MINUS_SRC_ALPHA)
	f.Enable(gpu.DEPTH_TEST)
	f.CullFace(gpu.BACK)
	f.Enable(gpu.CULL_FACE)
}

// Shaders returns the programs meshes are drawn with.
func (r *Renderer) Shaders() *ShaderManager {
	return r.shaders
}

// UploadMesh copies m to the GPU. material names the program of the
// ShaderManager the mesh is drawn with; it does not have to exist yet.
func (r *Renderer) UploadMesh(m *mesh.Mesh, material string) (MeshHandle, error) {
	if len(m.Indices) == 0 {
		return 0, ErrEmptyMesh
	}

	gm, err := r.upload(m)
	if err != nil {
		return 0, fmt.Errorf("uploading mesh: %w", err)
	}
	gm.material = material

	r.mu.Lock()
	r.meshes = append(r.meshes, gm)
	h := MeshHandle(len(r.meshes) - 1)
	r.mu.Unlock()

	Logger().Debug("mesh uploaded",
		zap.Int("handle", int(h)),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
		zap.String("material", material),
	)
	return h, nil
}

func (r *Renderer) upload(m *mesh.Mesh) (_ *gpuMesh, err error) {
	gm := &gpuMesh{count: len(m.Indices)}
	defer func() {
		if err != nil {
			gm.release()
		}
	}()

	if gm.vao, err = gpu.NewVertexArray(r.ctx); err != nil {
		return nil, err
	}
	if gm.vbo, err = gpu.NewBuffer[gpu.Vertices](r.ctx); err != nil {
		return nil, err
	}
	if gm.ibo, err = gpu.NewBuffer[gpu.Indices](r.ctx); err != nil {
		return nil, err
	}

	if err = gpu.SetSlice(gm.vbo, m.Vertices, gpu.StaticDraw); err != nil {
		return nil, err
	}
	if err = gpu.SetSlice(gm.ibo, m.Indices, gpu.StaticDraw); err != nil {
		return nil, err
	}

	layout := mesh.Layout()
	attrs := make([]gpu.Attribute, len(layout))
	for i, a := range layout {
		attrs[i] = gpu.Attribute{
			Index:      uint32(i),
			Size:       a.Components,
			Type:       gpu.FLOAT,
			Normalized: a.Normalized,
			Stride:     a.Stride,
			Offset:     a.Offset,
		}
	}
	gm.vao.SetAttributes(gm.vbo, attrs...)
	gm.vao.SetIndices(gm.ibo)

	return gm, nil
}

func (r *Renderer) lookup(h MeshHandle) (*gpuMesh, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h < 0 || int(h) >= len(r.meshes) || r.meshes[h] == nil {
		return nil, fmt.Errorf("mesh %d: %w", h, ErrUnknownMesh)
	}
	return r.meshes[h], nil
}

// Meshes returns the number of uploaded meshes.
func (r *Renderer) Meshes() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, m := range r.meshes {
		if m != nil {
			n++
		}
	}
	return n
}

// Material returns the material a mesh was uploaded with.
func (r *Renderer) Material(h MeshHandle) (string, error) {
	gm, err := r.lookup(h)
	if err != nil {
		return "", err
	}
	return gm.material, nil
}

// Render draws a mesh with its material's program, if that program is
// registered, or with whatever program is current otherwise.
func (r *Renderer) Render(h MeshHandle) error {
	gm, err := r.lookup(h)
	if err != nil {
		return err
	}

	if prog, err := r.shaders.Get(gm.material); err == nil {
		prog.Use()
	}

	gm.vao.Bind()
	r.ctx.Functions().DrawElements(gpu.TRIANGLES, gm.count, gpu.UNSIGNED_INT, 0)
	return nil
}

// ClearScreen resizes the viewport to the framebuffer and clears the color
// and depth buffers. Empty framebuffers are skipped.
func (r *Renderer) ClearScreen(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	f := r.ctx.Functions()
	f.Viewport(0, 0, width, height)
	f.Clear(gpu.COLOR_BUFFER_BIT | gpu.DEPTH_BUFFER_BIT)
}

// ReleaseMesh frees the GPU objects of one mesh. Its handle becomes
// unknown; other handles stay valid.
func (r *Renderer) ReleaseMesh(h MeshHandle) error {
	r.mu.Lock()
	if h < 0 || int(h) >= len(r.meshes) || r.meshes[h] == nil {
		r.mu.Unlock()
		return fmt.Errorf("mesh %d: %w", h, ErrUnknownMesh)
	}
	gm := r.meshes[h]
	r.meshes[h] = nil
	r.mu.Unlock()

	gm.release()
	return nil
}

// Release frees every mesh and program.
func (r *Renderer) Release() {
	r.mu.Lock()
	meshes := r.meshes
	r.meshes = nil
	r.mu.Unlock()

	for _, m := range meshes {
		if m != nil {
			m.release()
		}
	}
	r.shaders.Release()
}
