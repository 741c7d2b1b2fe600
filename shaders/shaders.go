package shaders

import "embed"

// FS embeds the GLSL sources of the sandbox materials.
//
//go:embed *.glsl
var FS embed.FS

// Files names the sources of one material inside FS.
type Files struct {
	Vertex   string
	Fragment string
}

// Materials maps material names to their shader sources.
var Materials = map[string]Files{
	"default": {Vertex: "vert.glsl", Fragment: "frag.glsl"},
	"flat":    {Vertex: "flat.vert.glsl", Fragment: "flat.frag.glsl"},
}
