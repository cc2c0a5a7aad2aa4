package checkboxlist

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-checkboxlist/pkg/definitions"
	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/templated"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/tui"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/vanilla"
)

// List aliases model.List so callers can build lists from the root package.
type List = model.List

// Item aliases model.Item.
type Item = model.Item

// Attributes aliases model.Attributes.
type Attributes = model.Attributes

// Set aliases model.Set.
type Set = model.Set

// RenderOptions carries theme data through to the renderers.
type RenderOptions = render.RenderOptions

const (
	LayoutVertical   = model.LayoutVertical
	LayoutHorizontal = model.LayoutHorizontal
	LabelAfter       = model.LabelAfter
	LabelBefore      = model.LabelBefore
)

// Render returns the checkbox list markup for list. It never fails.
func Render(list List) string {
	return vanilla.Render(list)
}

// HTML is Render typed for html/template hosts.
func HTML(list List) template.HTML {
	return vanilla.HTML(list)
}

// NewRegistry returns a registry holding the vanilla, templated and tui
// renderers. tuiOptions configure the terminal renderer.
func NewRegistry(tuiOptions ...tui.Option) (*render.Registry, error) {
	registry := render.NewRegistry()

	tmpl, err := templated.New()
	if err != nil {
		return nil, fmt.Errorf("checkboxlist: templated renderer: %w", err)
	}

	for _, renderer := range []render.Renderer{vanilla.New(), tmpl, tui.New(tuiOptions...)} {
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("checkboxlist: %w", err)
		}
	}
	return registry, nil
}

// LoadDefinitions reads every JSON/YAML list definition under fsys.
func LoadDefinitions(ctx context.Context, fsys fs.FS) (*definitions.Store, error) {
	return definitions.LoadFS(ctx, fsys)
}

// ThemeOptions builds render options carrying input and label classes. Empty
// classes are left out so renderers fall back to plain markup.
func ThemeOptions(inputClass, labelClass string) RenderOptions {
	tokens := map[string]string{}
	if inputClass != "" {
		tokens[render.TokenInputClass] = inputClass
	}
	if labelClass != "" {
		tokens[render.TokenLabelClass] = labelClass
	}
	if len(tokens) == 0 {
		return RenderOptions{}
	}
	return RenderOptions{Theme: &theme.RendererConfig{Tokens: tokens}}
}
