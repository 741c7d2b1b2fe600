package mesh

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/mokiat/go-data-front/decoder/obj"
	"github.com/xlab/linmath"
)

// ErrInvalidModel is returned for OBJ data that references missing
// vertices, normals or texture coordinates.
var ErrInvalidModel = errors.New("mesh: invalid model")

// LoadOBJ decodes a Wavefront OBJ model into a single mesh. All objects of
// the model are merged. Polygons are triangulated as fans and every face
// corner becomes its own vertex. Texture V coordinates are flipped so that
// images load top row first.
func LoadOBJ(r io.Reader) (*Mesh, error) {
	model, err := obj.NewDecoder(obj.DefaultLimits()).Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding obj: %w", err)
	}

	m := &Mesh{}
	for _, object := range model.Objects {
		for _, om := range object.Meshes {
			for _, face := range om.Faces {
				refs := face.References
				for i := 1; i+1 < len(refs); i++ {
					for _, ref := range [3]obj.Reference{refs[0], refs[i], refs[i+1]} {
						v, err := vertexAt(model, ref)
						if err != nil {
							return nil, fmt.Errorf("object %q: %w", object.Name, err)
						}
						m.Indices = append(m.Indices, uint32(len(m.Vertices)))
						m.Vertices = append(m.Vertices, v)
					}
				}
			}
		}
	}
	return m, nil
}

// LoadOBJFile loads the OBJ file name from fsys.
func LoadOBJFile(fsys fs.FS, name string) (*Mesh, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening model: %w", err)
	}
	defer f.Close()

	m, err := LoadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return m, nil
}

func vertexAt(model *obj.Model, ref obj.Reference) (Vertex, error) {
	var v Vertex

	if ref.VertexIndex < 0 || ref.VertexIndex >= int64(len(model.Vertices)) {
		return v, fmt.Errorf("vertex %d out of range: %w", ref.VertexIndex, ErrInvalidModel)
	}
	p := model.Vertices[ref.VertexIndex]
	v.Pos = linmath.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}

	if ref.HasNormal() {
		if ref.NormalIndex < 0 || ref.NormalIndex >= int64(len(model.Normals)) {
			return v, fmt.Errorf("normal %d out of range: %w", ref.NormalIndex, ErrInvalidModel)
		}
		n := model.Normals[ref.NormalIndex]
		v.Normal = linmath.Vec3{float32(n.X), float32(n.Y), float32(n.Z)}
	}

	if ref.HasTexCoord() {
		if ref.TexCoordIndex < 0 || ref.TexCoordIndex >= int64(len(model.TexCoords)) {
			return v, fmt.Errorf("texture coordinate %d out of range: %w", ref.TexCoordIndex, ErrInvalidModel)
		}
		t := model.TexCoords[ref.TexCoordIndex]
		v.UV = linmath.Vec2{float32(t.U), 1 - float32(t.V)}
	}

	return v, nil
}
