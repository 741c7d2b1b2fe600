// Package gputest provides a recording implementation of gpu.Functions for
// tests that exercise GPU wrappers without a native context.
package gputest

import (
	"glsb/gpu"
)

// Call is one recorded native call.
type Call struct {
	Name string
	Args []any
}

// Recorder implements gpu.Functions by recording every call. Object names
// are handed out sequentially starting at 1.
type Recorder struct {
	Calls []Call

	// FailCreate makes every Gen*/Create* call return 0.
	FailCreate bool
	// CompileLog, when set, makes shader compilation fail with this log.
	CompileLog string
	// LinkLog, when set, makes program linking fail with this log.
	LinkLog string
	// Attribs and Uniforms map names to locations. Unknown names resolve to
	// -1.
	Attribs  map[string]int
	Uniforms map[string]int
	// Errors is drained by GetError, one code per call.
	Errors []gpu.Enum
	// Strings and Floats answer GetString and GetFloat.
	Strings map[gpu.Enum]string
	Floats  map[gpu.Enum]float32

	nextID uint32
}

var _ gpu.Functions = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Attribs:  make(map[string]int),
		Uniforms: make(map[string]int),
		Strings:  make(map[gpu.Enum]string),
		Floats:   make(map[gpu.Enum]float32),
	}
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Named returns the recorded calls named name, in order.
func (r *Recorder) Named(name string) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// Names returns the names of all recorded calls, in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) gen(name string) uint32 {
	if r.FailCreate {
		r.record(name, uint32(0))
		return 0
	}
	r.nextID++
	r.record(name, r.nextID)
	return r.nextID
}

func (r *Recorder) GenBuffer() uint32       { return r.gen("GenBuffer") }
func (r *Recorder) DeleteBuffer(id uint32)  { r.record("DeleteBuffer", id) }
func (r *Recorder) GenTexture() uint32      { return r.gen("GenTexture") }
func (r *Recorder) DeleteTexture(id uint32) { r.record("DeleteTexture", id) }
func (r *Recorder) GenVertexArray() uint32  { return r.gen("GenVertexArray") }
func (r *Recorder) DeleteVertexArray(id uint32) {
	r.record("DeleteVertexArray", id)
}

func (r *Recorder) BindBuffer(target gpu.Enum, id uint32) {
	r.record("BindBuffer", target, id)
}

func (r *Recorder) BufferData(target gpu.Enum, size int, data []byte, usage gpu.Enum) {
	r.record("BufferData", target, size, data, usage)
}

func (r *Recorder) BindTexture(target gpu.Enum, id uint32) {
	r.record("BindTexture", target, id)
}

func (r *Recorder) TexParameteri(target, pname gpu.Enum, param int32) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) TexParameterf(target, pname gpu.Enum, param float32) {
	r.record("TexParameterf", target, pname, param)
}

func (r *Recorder) TexImage2D(target gpu.Enum, level int, internalFormat gpu.Enum, width, height int, format, typ gpu.Enum, pixels []byte) {
	r.record("TexImage2D", target, level, internalFormat, width, height, format, typ, pixels)
}

func (r *Recorder) GenerateMipmap(target gpu.Enum) {
	r.record("GenerateMipmap", target)
}

func (r *Recorder) BindVertexArray(id uint32) {
	r.record("BindVertexArray", id)
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.record("EnableVertexAttribArray", index)
}

func (r *Recorder) VertexAttribPointer(index uint32, size int, typ gpu.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
}

func (r *Recorder) CreateShader(typ gpu.Enum) uint32 { return r.gen("CreateShader") }

func (r *Recorder) ShaderSource(id uint32, src string) {
	r.record("ShaderSource", id, src)
}

func (r *Recorder) CompileShader(id uint32) { r.record("CompileShader", id) }

func (r *Recorder) GetShaderi(id uint32, pname gpu.Enum) int {
	r.record("GetShaderi", id, pname)
	if pname == gpu.COMPILE_STATUS && r.CompileLog != "" {
		return 0
	}
	return 1
}

func (r *Recorder) GetShaderInfoLog(id uint32) string {
	r.record("GetShaderInfoLog", id)
	return r.CompileLog
}

func (r *Recorder) DeleteShader(id uint32) { r.record("DeleteShader", id) }

func (r *Recorder) CreateProgram() uint32 { return r.gen("CreateProgram") }

func (r *Recorder) AttachShader(program, shader uint32) {
	r.record("AttachShader", program, shader)
}

func (r *Recorder) LinkProgram(program uint32) { r.record("LinkProgram", program) }

func (r *Recorder) GetProgrami(program uint32, pname gpu.Enum) int {
	r.record("GetProgrami", program, pname)
	if pname == gpu.LINK_STATUS && r.LinkLog != "" {
		return 0
	}
	return 1
}

func (r *Recorder) GetProgramInfoLog(program uint32) string {
	r.record("GetProgramInfoLog", program)
	return r.LinkLog
}

func (r *Recorder) DeleteProgram(program uint32) { r.record("DeleteProgram", program) }
func (r *Recorder) UseProgram(program uint32)    { r.record("UseProgram", program) }

func (r *Recorder) GetAttribLocation(program uint32, name string) int {
	r.record("GetAttribLocation", program, name)
	if loc, ok := r.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) GetUniformLocation(program uint32, name string) int {
	r.record("GetUniformLocation", program, name)
	if loc, ok := r.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (r *Recorder) Uniform1f(location int, v float32) {
	r.record("Uniform1f", location, v)
}

func (r *Recorder) Uniform3f(location int, x, y, z float32) {
	r.record("Uniform3f", location, x, y, z)
}

func (r *Recorder) Uniform4f(location int, x, y, z, w float32) {
	r.record("Uniform4f", location, x, y, z, w)
}

func (r *Recorder) UniformMatrix4fv(location int, m []float32) {
	r.record("UniformMatrix4fv", location, m)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask gpu.Enum)        { r.record("Clear", mask) }
func (r *Recorder) Enable(capability gpu.Enum) { r.record("Enable", capability) }
func (r *Recorder) CullFace(mode gpu.Enum)     { r.record("CullFace", mode) }
func (r *Recorder) BlendFunc(sfactor, dfactor gpu.Enum) {
	r.record("BlendFunc", sfactor, dfactor)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}

func (r *Recorder) GetError() gpu.Enum {
	r.record("GetError")
	if len(r.Errors) == 0 {
		return gpu.NO_ERROR
	}
	code := r.Errors[0]
	r.Errors = r.Errors[1:]
	return code
}

func (r *Recorder) GetString(name gpu.Enum) string {
	r.record("GetString", name)
	return r.Strings[name]
}

func (r *Recorder) GetFloat(pname gpu.Enum) float32 {
	r.record("GetFloat", pname)
	return r.Floats[pname]
}
