package textures

import "embed"

// FS contains the textures used by the sandboxes. It makes it possible to
// generate a binary and just copy it to another machine.
//
//go:embed cube.png
var FS embed.FS
