package detail

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded panel templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
