// Package assets embeds the artifact templates shipped with expresso.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templates embed.FS

// TemplateFS returns the embedded template filesystem rooted at the
// templates directory, so callers address files by bare name.
func TemplateFS() (fs.FS, error) {
	return fs.Sub(templates, "templates")
}
