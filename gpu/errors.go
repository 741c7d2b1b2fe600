package gpu

import (
	"errors"
	"fmt"

	"glsb/handle"
)

var (
	// ErrResourceCreation is returned when the driver hands out no object
	// name for a new buffer, texture, vertex array, shader or program.
	ErrResourceCreation = errors.New("gpu: resource creation failed")

	// ErrSizeOutOfRange is returned when an upload exceeds the largest size
	// the native transfer call can represent.
	ErrSizeOutOfRange = errors.New("gpu: size out of range")

	// ErrPixelDataSize is returned when pixel data does not match the
	// dimensions of a texture allocation.
	ErrPixelDataSize = errors.New("gpu: pixel data size mismatch")

	// ErrInvalidDimensions is returned for non-positive texture dimensions.
	ErrInvalidDimensions = errors.New("gpu: invalid texture dimensions")

	// ErrReleased is returned when uploading into a released object.
	ErrReleased = errors.New("gpu: object released")
)

// mustLive panics when obj has been released. Binding the zero name would
// clobber whatever another object bound to the shared target.
func mustLive(obj *handle.Unique[uint32], op string) {
	if !obj.Valid() {
		panic(fmt.Sprintf("gpu: %s: %v", op, ErrReleased))
	}
}

// ShaderError describes a failed shader compilation or program link. Log
// holds the driver's info log.
type ShaderError struct {
	Op   string
	Type ShaderType
	Log  string
}

func (e *ShaderError) Error() string {
	if e.Op == "link" {
		return fmt.Sprintf("gpu: failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("gpu: failed to compile %s shader: %s", e.Type, e.Log)
}

// Error is a pending native error reported by GetError.
type Error struct {
	Op   string
	Code Enum
}

func (e *Error) Error() string {
	return fmt.Sprintf("gpu: %s: %s", e.Op, errorName(e.Code))
}

func errorName(code Enum) string {
	switch code {
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("error %#x", uint32(code))
}
