// Package mesh holds CPU-side triangle meshes and loads them from Wavefront
// OBJ files.
package mesh

import (
	"unsafe"

	"github.com/xlab/linmath"
)

// Vertex is the vertex format shared by every mesh and shader in the
// sandbox.
type Vertex struct {
	Pos    linmath.Vec3
	Normal linmath.Vec3
	UV     linmath.Vec2
}

// VertexSize is the size of Vertex in bytes.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// Attribute describes one field of Vertex as a shader input.
type Attribute struct {
	Name       string
	Components int
	Stride     int
	Offset     int
	Normalized bool
}

// Layout returns the attributes of Vertex in shader location order.
func Layout() []Attribute {
	var v Vertex
	return []Attribute{
		{"pos", 3, VertexSize, int(unsafe.Offsetof(v.Pos)), true},
		{"normal", 3, VertexSize, int(unsafe.Offsetof(v.Normal)), true},
		{"vert_uv", 2, VertexSize, int(unsafe.Offsetof(v.UV)), true},
	}
}
