package renderer

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"go.uber.org/zap"

	"glsb/gpu"
)

// ErrUnknownShader is returned by ShaderManager.Get for unregistered names.
var ErrUnknownShader = errors.New("renderer: unknown shader")

// ShaderManager keeps linked programs by material name.
type ShaderManager struct {
	ctx      *gpu.Context
	programs map[string]*gpu.Program
}

// NewShaderManager returns an empty manager for programs of ctx.
func NewShaderManager(ctx *gpu.Context) *ShaderManager {
	return &ShaderManager{ctx: ctx, programs: make(map[string]*gpu.Program)}
}

// Add links shaders into the program of material name, replacing and
// releasing any previous program of that name.
func (m *ShaderManager) Add(name string, shaders ...*gpu.Shader) error {
	prog, err := gpu.NewProgram(m.ctx, shaders...)
	if err != nil {
		return fmt.Errorf("linking %q: %w", name, err)
	}

	if old, ok := m.programs[name]; ok {
		old.Release()
	}
	m.programs[name] = prog
	Logger().Debug("program added", zap.String("name", name), zap.Uint32("id", prog.ID()))
	return nil
}

// AddSource compiles a vertex and a fragment shader and links them as
// material name. The shader objects are released once linked.
func (m *ShaderManager) AddSource(name, vertex, fragment string) error {
	vs, err := gpu.NewShader(m.ctx, gpu.VertexShader, vertex)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", name, err)
	}
	defer vs.Release()

	fs, err := gpu.NewShader(m.ctx, gpu.FragmentShader, fragment)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", name, err)
	}
	defer fs.Release()

	return m.Add(name, vs, fs)
}

// Load reads the vertex and fragment shader sources of material name from
// fsys.
func (m *ShaderManager) Load(fsys fs.FS, name, vertexPath, fragmentPath string) error {
	vertex, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return fmt.Errorf("loading %q: %w", name, err)
	}
	fragment, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return fmt.Errorf("loading %q: %w", name, err)
	}
	return m.AddSource(name, string(vertex), string(fragment))
}

// Get returns the program of material name.
func (m *ShaderManager) Get(name string) (*gpu.Program, error) {
	prog, ok := m.programs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownShader)
	}
	return prog, nil
}

// Names returns the registered material names in sorted order.
func (m *ShaderManager) Names() []string {
	names := make([]string, 0, len(m.programs))
	for name := range m.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Release deletes every program.
func (m *ShaderManager) Release() {
	for name, prog := range m.programs {
		prog.Release()
		delete(m.programs, name)
	}
}
