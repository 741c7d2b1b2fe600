// Package glnative implements gpu.Functions on top of the go-gl OpenGL 4.1
// core profile bindings.
package glnative

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"glsb/gpu"
)

// Functions forwards to the OpenGL entry points loaded by gl.Init.
type Functions struct{}

var _ gpu.Functions = Functions{}

// New loads the OpenGL entry points of the current context. The context must
// be current on the calling OS thread.
func New() (Functions, error) {
	if err := gl.Init(); err != nil {
		return Functions{}, fmt.Errorf("gl.Init: %w", err)
	}
	return Functions{}, nil
}

func (Functions) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (Functions) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (Functions) BindBuffer(target gpu.Enum, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (Functions) BufferData(target gpu.Enum, size int, data []byte, usage gpu.Enum) {
	gl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (Functions) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (Functions) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (Functions) BindTexture(target gpu.Enum, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (Functions) TexParameteri(target, pname gpu.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (Functions) TexParameterf(target, pname gpu.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (Functions) TexImage2D(target gpu.Enum, level int, internalFormat gpu.Enum, width, height int, format, typ gpu.Enum, pixels []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat),
		int32(width), int32(height), 0, uint32(format), uint32(typ), ptr(pixels))
}

func (Functions) GenerateMipmap(target gpu.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (Functions) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (Functions) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (Functions) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (Functions) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (Functions) VertexAttribPointer(index uint32, size int, typ gpu.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), uint32(typ), normalized, int32(stride), gl.PtrOffset(offset))
}

func (Functions) CreateShader(typ gpu.Enum) uint32 {
	return gl.CreateShader(uint32(typ))
}

func (Functions) ShaderSource(id uint32, src string) {
	csources, free := gl.Strs(terminate(src))
	defer free()
	gl.ShaderSource(id, 1, csources, nil)
}

func (Functions) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (Functions) GetShaderi(id uint32, pname gpu.Enum) int {
	var v int32
	gl.GetShaderiv(id, uint32(pname), &v)
	return int(v)
}

func (Functions) GetShaderInfoLog(id uint32) string {
	var n int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(id, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (Functions) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (Functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Functions) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Functions) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Functions) GetProgrami(program uint32, pname gpu.Enum) int {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return int(v)
}

func (Functions) GetProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (Functions) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Functions) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Functions) GetAttribLocation(program uint32, name string) int {
	return int(gl.GetAttribLocation(program, gl.Str(terminate(name))))
}

func (Functions) GetUniformLocation(program uint32, name string) int {
	return int(gl.GetUniformLocation(program, gl.Str(terminate(name))))
}

func (Functions) Uniform1f(location int, v float32) {
	gl.Uniform1f(int32(location), v)
}

func (Functions) Uniform3f(location int, x, y, z float32) {
	gl.Uniform3f(int32(location), x, y, z)
}

func (Functions) Uniform4f(location int, x, y, z, w float32) {
	gl.Uniform4f(int32(location), x, y, z, w)
}

func (Functions) UniformMatrix4fv(location int, m []float32) {
	gl.UniformMatrix4fv(int32(location), int32(len(m)/16), false, &m[0])
}

func (Functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Functions) Clear(mask gpu.Enum) {
	gl.Clear(uint32(mask))
}

func (Functions) Enable(capability gpu.Enum) {
	gl.Enable(uint32(capability))
}

func (Functions) BlendFunc(sfactor, dfactor gpu.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (Functions) CullFace(mode gpu.Enum) {
	gl.CullFace(uint32(mode))
}

func (Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Functions) DrawElements(mode gpu.Enum, count int, typ gpu.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(typ), gl.PtrOffset(offset))
}

func (Functions) GetError() gpu.Enum {
	return gpu.Enum(gl.GetError())
}

func (Functions) GetString(name gpu.Enum) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Functions) GetFloat(pname gpu.Enum) float32 {
	var v float32
	gl.GetFloatv(uint32(pname), &v)
	return v
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
