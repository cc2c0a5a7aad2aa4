package vanilla

import (
	"context"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

// Separator is written after each item of a vertical list.
const Separator = "<br/>"

type Option func(*config)

type config struct {
	labelPolicy *bluemonday.Policy
}

// WithLabelPolicy sanitises labels through policy instead of escaping them,
// letting trusted inline markup (<strong>, <em>) survive.
func WithLabelPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.labelPolicy = policy
	}
}

type Renderer struct {
	labelPolicy *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

var defaultRenderer = New()

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) *Renderer {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{labelPolicy: cfg.labelPolicy}
}

// Render produces the markup for list using default options.
func Render(list model.List) string {
	return defaultRenderer.RenderString(list, render.RenderOptions{})
}

// HTML wraps Render for html/template hosts.
func HTML(list model.List) template.HTML {
	return template.HTML(Render(list))
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render satisfies render.Renderer. It only fails when ctx is already done.
func (r *Renderer) Render(ctx context.Context, list model.List, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return []byte(r.RenderString(list, options)), nil
}

// RenderString builds the markup for list. An empty list yields "".
func (r *Renderer) RenderString(list model.List, options render.RenderOptions) string {
	views := render.BuildViews(list, options)
	if len(views) == 0 {
		return ""
	}

	var b strings.Builder
	for _, view := range views {
		if view.LabelFirst {
			r.writeLabel(&b, view)
			writeInput(&b, view)
		} else {
			writeInput(&b, view)
			r.writeLabel(&b, view)
		}
		if view.Separator {
			b.WriteString(Separator)
		}
	}
	return b.String()
}

func writeInput(b *strings.Builder, view render.ItemView) {
	b.WriteString(`<input type="checkbox"`)
	writeAttr(b, "name", view.Name)
	writeAttr(b, "id", view.ID)
	writeAttr(b, "value", view.Value)
	if view.Checked {
		b.WriteString(` checked="checked"`)
	}
	if view.Disabled {
		b.WriteString(` disabled="disabled"`)
	}
	for _, attr := range view.Attributes {
		writeAttr(b, attr.Key, attr.Value)
	}
	b.WriteString(` />`)
}

func (r *Renderer) writeLabel(b *strings.Builder, view render.ItemView) {
	b.WriteString(`<label`)
	writeAttr(b, "for", view.ID)
	if view.LabelClass != "" {
		writeAttr(b, "class", view.LabelClass)
	}
	b.WriteString(`>`)
	b.WriteString(r.label(view.Label))
	b.WriteString(`</label>`)
}

func (r *Renderer) label(text string) string {
	if r.labelPolicy != nil {
		return r.labelPolicy.Sanitize(text)
	}
	return html.EscapeString(text)
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}
