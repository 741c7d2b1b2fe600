package models

import "embed"

// FS contains the models loaded by the sandboxes. It makes it possible to
// generate a binary and just copy it to another machine.
//
//go:embed cube.obj
var FS embed.FS
