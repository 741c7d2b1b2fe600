package mesh

import (
	"github.com/xlab/linmath"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Transform applies m to every vertex position and normal. Normals are
// transformed as directions and renormalized.
func (m *Mesh) Transform(mat *linmath.Mat4x4) *Mesh {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Pos = transform(mat, v.Pos, 1)
		v.Normal = normalize(transform(mat, v.Normal, 0))
	}
	return m
}

func transform(mat *linmath.Mat4x4, v linmath.Vec3, w float32) linmath.Vec3 {
	var out linmath.Vec4
	out.Mat4x4MultVec4(mat, linmath.Vec4{v[0], v[1], v[2], w})
	return linmath.Vec3{out[0], out[1], out[2]}
}

// GenerateQuad returns an xscale by yscale quad centered on the origin in
// the XY plane, facing +Z.
func GenerateQuad(xscale, yscale float32) *Mesh {
	x, y := xscale/2, yscale/2
	up := linmath.Vec3{0, 0, 1}
	return &Mesh{
		Vertices: []Vertex{
			{Pos: linmath.Vec3{-x, -y, 0}, Normal: up, UV: linmath.Vec2{0, 0}},
			{Pos: linmath.Vec3{x, -y, 0}, Normal: up, UV: linmath.Vec2{1, 0}},
			{Pos: linmath.Vec3{x, y, 0}, Normal: up, UV: linmath.Vec2{1, 1}},
			{Pos: linmath.Vec3{-x, y, 0}, Normal: up, UV: linmath.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}
}

// normalize leaves zero normals, e.g. of faces without "vn", untouched.
func normalize(v linmath.Vec3) linmath.Vec3 {
	if v.Len() == 0 {
		return v
	}
	var n linmath.Vec3
	n.Norm(&v)
	return n
}
