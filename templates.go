package checkboxlist

import (
	"io/fs"

	"github.com/goliatone/go-checkboxlist/pkg/renderers/templated"
)

// EmbeddedTemplates exposes the built-in templated renderer templates so
// callers can copy or extend them without importing the renderer package.
func EmbeddedTemplates() fs.FS {
	return templated.TemplatesFS()
}
