package render

import (
	"context"

	"github.com/goliatone/go-checkboxlist/pkg/model"
)

// Renderer turns a resolved checkbox list into a byte representation (HTML
// markup, a terminal selection payload, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, list model.List, options RenderOptions) ([]byte, error)
}
