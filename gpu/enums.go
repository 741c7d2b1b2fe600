package gpu

// Enum is a native OpenGL enumerant.
type Enum uint32

// OpenGL enumerants used by the wrappers. The values match the GL headers so
// Functions implementations can pass them through unchanged.
const (
	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	UNIFORM_BUFFER       = 0x8A11

	STREAM_DRAW  = 0x88E0
	STATIC_DRAW  = 0x88E4
	DYNAMIC_DRAW = 0x88E8

	TEXTURE_2D                    = 0x0DE1
	TEXTURE_MAG_FILTER            = 0x2800
	TEXTURE_MIN_FILTER            = 0x2801
	TEXTURE_WRAP_S                = 0x2802
	TEXTURE_WRAP_T                = 0x2803
	TEXTURE_MAX_ANISOTROPY        = 0x84FE
	MAX_TEXTURE_MAX_ANISOTROPY    = 0x84FF
	NEAREST                       = 0x2600
	LINEAR                        = 0x2601
	NEAREST_MIPMAP_NEAREST        = 0x2700
	LINEAR_MIPMAP_NEAREST         = 0x2701
	NEAREST_MIPMAP_LINEAR         = 0x2702
	LINEAR_MIPMAP_LINEAR          = 0x2703
	REPEAT                        = 0x2901
	CLAMP_TO_BORDER               = 0x812D
	CLAMP_TO_EDGE                 = 0x812F
	MIRRORED_REPEAT               = 0x8370
	RGBA                          = 0x1908
	UNSIGNED_BYTE                 = 0x1401
	UNSIGNED_INT                  = 0x1405
	FLOAT                         = 0x1406
	TRIANGLES                     = 0x0004
	VERTEX_SHADER                 = 0x8B31
	FRAGMENT_SHADER               = 0x8B30
	COMPILE_STATUS                = 0x8B81
	LINK_STATUS                   = 0x8B82
	COLOR_BUFFER_BIT              = 0x4000
	DEPTH_BUFFER_BIT              = 0x0100
	BLEND                         = 0x0BE2
	DEPTH_TEST                    = 0x0B71
	CULL_FACE                     = 0x0B44
	BACK                          = 0x0405
	SRC_ALPHA                     = 0x0302
	ONE_MINUS_SRC_ALPHA           = 0x0303
	VENDOR                        = 0x1F00
	RENDERER                      = 0x1F01
	VERSION                       = 0x1F02
	SHADING_LANGUAGE_VERSION      = 0x8B8C
	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
)

// BufferTarget is a buffer binding point.
type BufferTarget Enum

const (
	ArrayBuffer        BufferTarget = ARRAY_BUFFER
	ElementArrayBuffer BufferTarget = ELEMENT_ARRAY_BUFFER
	UniformBuffer      BufferTarget = UNIFORM_BUFFER
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ArrayBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	case UniformBuffer:
		return "UniformBuffer"
	}
	return "BufferTarget(unknown)"
}

// UsageHint tells the driver how buffer storage will be accessed.
type UsageHint Enum

const (
	StreamDraw  UsageHint = STREAM_DRAW
	StaticDraw  UsageHint = STATIC_DRAW
	DynamicDraw UsageHint = DYNAMIC_DRAW
)

// TextureTarget is a texture binding point.
type TextureTarget Enum

const (
	Texture2D TextureTarget = TEXTURE_2D
)

func (t TextureTarget) String() string {
	if t == Texture2D {
		return "Texture2D"
	}
	return "TextureTarget(unknown)"
}

// Filter selects texture sampling.
type Filter int

const (
	Nearest Filter = iota
	Linear
	// Trilinear interpolates between mipmap levels and always uses mipmaps.
	Trilinear
)

// Wrapping selects how texture coordinates outside [0, 1] are resolved.
type Wrapping int32

const (
	ClampToBorder  Wrapping = CLAMP_TO_BORDER
	ClampToEdge    Wrapping = CLAMP_TO_EDGE
	Repeat         Wrapping = REPEAT
	MirroredRepeat Wrapping = MIRRORED_REPEAT
)

// ShaderType is the pipeline stage of a shader.
type ShaderType Enum

const (
	VertexShader   ShaderType = VERTEX_SHADER
	FragmentShader ShaderType = FRAGMENT_SHADER
)

func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// vertexArrayTarget and programTarget are the single binding points for
// vertex array objects and the current program.
type (
	vertexArrayTarget struct{}
	programTarget     struct{}
)
