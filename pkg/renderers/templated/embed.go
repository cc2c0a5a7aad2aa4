package templated

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplateName is the path of the default list template inside TemplatesFS.
const TemplateName = "templates/checkboxlist.tmpl"

// TemplatesFS exposes the embedded template bundle so callers can copy and
// customise it, or serve it to their own engine.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
