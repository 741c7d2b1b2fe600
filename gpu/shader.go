package gpu

import (
	"fmt"

	"github.com/xlab/linmath"
	"go.uber.org/zap"

	"glsb/handle"
)

// Shader owns one compiled native shader object.
type Shader struct {
	typ ShaderType
	obj *handle.Unique[uint32]
}

// NewShader compiles src as a shader of the given type. A failed compile
// returns a *ShaderError with the driver's info log.
func NewShader(ctx *Context, typ ShaderType, src string) (*Shader, error) {
	f := ctx.Functions()

	id := f.CreateShader(Enum(typ))
	if id == 0 {
		return nil, fmt.Errorf("creating %s shader: %w", typ, ErrResourceCreation)
	}
	obj := handle.New(id, f.DeleteShader)

	f.ShaderSource(id, src)
	f.CompileShader(id)
	if f.GetShaderi(id, COMPILE_STATUS) == 0 {
		err := &ShaderError{Op: "compile", Type: typ, Log: f.GetShaderInfoLog(id)}
		obj.Release()
		Logger().Error("shader compilation failed", zap.Stringer("type", typ), zap.Error(err))
		return nil, err
	}

	return &Shader{typ: typ, obj: obj}, nil
}

// Type returns the pipeline stage of the shader.
func (s *Shader) Type() ShaderType {
	return s.typ
}

// ID returns the native shader name.
func (s *Shader) ID() uint32 {
	return s.obj.Get()
}

// Release deletes the native shader. Programs linked from it keep working.
func (s *Shader) Release() {
	s.obj.Release()
}

// Program owns one linked native program object.
//
// Attribute and uniform lookups that fail are logged and reported as false
// rather than as errors: a shader may legitimately optimize an input away.
type Program struct {
	ctx      *Context
	obj      *handle.Unique[uint32]
	uniforms map[string]int
}

// NewProgram links shaders into a program. A failed link returns a
// *ShaderError with the driver's info log.
func NewProgram(ctx *Context, shaders ...*Shader) (*Program, error) {
	f := ctx.Functions()
	slot := ctx.programs

	id := f.CreateProgram()
	if id == 0 {
		return nil, fmt.Errorf("creating program: %w", ErrResourceCreation)
	}
	obj := handle.New(id, func(id uint32) {
		slot.Forget(id)
		f.DeleteProgram(id)
	})

	for _, sh := range shaders {
		f.AttachShader(id, sh.ID())
	}
	f.LinkProgram(id)
	if f.GetProgrami(id, LINK_STATUS) == 0 {
		err := &ShaderError{Op: "link", Log: f.GetProgramInfoLog(id)}
		obj.Release()
		Logger().Error("program link failed", zap.Error(err))
		return nil, err
	}

	return &Program{ctx: ctx, obj: obj, uniforms: make(map[string]int)}, nil
}

// ID returns the native program name.
func (p *Program) ID() uint32 {
	return p.obj.Get()
}

// Use makes the program current until another program is used.
func (p *Program) Use() {
	mustLive(p.obj, "using program")
	p.ctx.programs.Bind(p.ID())
}

// AttribLocation returns the location of a vertex attribute.
func (p *Program) AttribLocation(name string) (int, bool) {
	loc := p.ctx.Functions().GetAttribLocation(p.ID(), name)
	if loc < 0 {
		Logger().Warn("unknown attribute", zap.String("name", name), zap.Uint32("program", p.ID()))
		return 0, false
	}
	return loc, true
}

// UniformLocation returns the location of a uniform. Locations are cached
// per program.
func (p *Program) UniformLocation(name string) (int, bool) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, loc >= 0
	}
	loc := p.ctx.Functions().GetUniformLocation(p.ID(), name)
	p.uniforms[name] = loc
	if loc < 0 {
		Logger().Warn("unknown uniform", zap.String("name", name), zap.Uint32("program", p.ID()))
		return 0, false
	}
	return loc, true
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) bool {
	return p.setUniform(name, func(f Functions, loc int) {
		f.Uniform1f(loc, v)
	})
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v linmath.Vec3) bool {
	return p.setUniform(name, func(f Functions, loc int) {
		f.Uniform3f(loc, v[0], v[1], v[2])
	})
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v linmath.Vec4) bool {
	return p.setUniform(name, func(f Functions, loc int) {
		f.Uniform4f(loc, v[0], v[1], v[2], v[3])
	})
}

// SetMat4 sets a mat4 uniform from a column-major matrix.
func (p *Program) SetMat4(name string, m *linmath.Mat4x4) bool {
	return p.setUniform(name, func(f Functions, loc int) {
		values := make([]float32, 0, 16)
		for _, col := range m {
			values = append(values, col[:]...)
		}
		f.UniformMatrix4fv(loc, values)
	})
}

func (p *Program) setUniform(name string, set func(Functions, int)) bool {
	mustLive(p.obj, "setting uniform "+name)
	loc, ok := p.UniformLocation(name)
	if !ok {
		return false
	}

	sc := p.ctx.programs.Scoped(p.ID())
	defer sc.Release()

	set(p.ctx.Functions(), loc)
	return true
}

// Release deletes the native program. It is safe to call more than once.
func (p *Program) Release() {
	p.obj.Release()
}
