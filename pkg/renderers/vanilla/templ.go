package vanilla

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

// Component exposes the rendered list as a templ.Component so it can be
// dropped into templ views with @vanilla.Component(list, opts).
func (r *Renderer) Component(list model.List, options render.RenderOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := io.WriteString(w, r.RenderString(list, options))
		return err
	})
}

// Component renders list with the default renderer.
func Component(list model.List) templ.Component {
	return defaultRenderer.Component(list, render.RenderOptions{})
}
