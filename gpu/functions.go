package gpu

// Functions is the native OpenGL entry point surface used by the wrappers.
// Names mirror the GL functions without their gl prefix.
//
// Every method must be called on the thread that owns the current context.
type Functions interface {
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	// BufferData replaces the storage of the bound buffer. A nil data slice
	// allocates size bytes of undefined content.
	BufferData(target Enum, size int, data []byte, usage Enum)

	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target Enum, id uint32)
	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, typ Enum, pixels []byte)
	GenerateMipmap(target Enum)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int, typ Enum, normalized bool, stride, offset int)

	CreateShader(typ Enum) uint32
	ShaderSource(id uint32, src string)
	CompileShader(id uint32)
	GetShaderi(id uint32, pname Enum) int
	GetShaderInfoLog(id uint32) string
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	GetAttribLocation(program uint32, name string) int
	GetUniformLocation(program uint32, name string) int
	Uniform1f(location int, v float32)
	Uniform3f(location int, x, y, z float32)
	Uniform4f(location int, x, y, z, w float32)
	UniformMatrix4fv(location int, m []float32)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Enable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	CullFace(mode Enum)
	Viewport(x, y, width, height int)
	DrawElements(mode Enum, count int, typ Enum, offset int)

	GetError() Enum
	GetString(name Enum) string
	GetFloat(pname Enum) float32
}
