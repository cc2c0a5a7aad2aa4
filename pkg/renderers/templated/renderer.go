package templated

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
	rendertemplate "github.com/goliatone/go-checkboxlist/pkg/render/template"
	gotemplate "github.com/goliatone/go-checkboxlist/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	labelPolicy      *bluemonday.Policy
	templateFuncs    map[string]any
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide TemplateName unless every render selects a theme partial.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithLabelPolicy sanitises labels through policy and marks them safe for the
// template instead of relying on autoescaping.
func WithLabelPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.labelPolicy = policy
	}
}

// WithTemplateFuncs registers helpers on the default engine, for example
// render.TemplateI18nFuncs for theme partials. Ignored with
// WithTemplateRenderer.
func WithTemplateFuncs(funcs map[string]any) Option {
	return func(cfg *config) {
		if len(funcs) == 0 {
			return
		}
		if cfg.templateFuncs == nil {
			cfg.templateFuncs = make(map[string]any, len(funcs))
		}
		for name, fn := range funcs {
			cfg.templateFuncs[name] = fn
		}
	}
}

type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	labelPolicy *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the templated renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithTemplateFunc(cfg.templateFuncs),
		)
		if err != nil {
			return nil, fmt.Errorf("templated renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, labelPolicy: cfg.labelPolicy}, nil
}

func (r *Renderer) Name() string {
	return "templated"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the list template. A theme partial registered under
// render.PartialList replaces the default template for this call.
func (r *Renderer) Render(ctx context.Context, list model.List, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r.templates == nil {
		return nil, fmt.Errorf("templated renderer: template renderer is nil")
	}

	views := render.BuildViews(list, options)
	if len(views) == 0 {
		return []byte{}, nil
	}

	templateName := TemplateName
	if partial := options.Partial(render.PartialList); partial != "" {
		templateName = partial
	}

	result, err := r.templates.RenderTemplate(templateName, map[string]any{
		"name":   list.Name,
		"locale": options.Locale,
		"items":  r.itemData(views),
	})
	if err != nil {
		return nil, fmt.Errorf("templated renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) itemData(views []render.ItemView) []any {
	items := make([]any, 0, len(views))
	for _, view := range views {
		attributes := make([]any, 0, len(view.Attributes))
		for _, attr := range view.Attributes {
			attributes = append(attributes, map[string]any{"key": attr.Key, "value": attr.Value})
		}

		label := view.Label
		if r.labelPolicy != nil {
			label = r.labelPolicy.Sanitize(label)
		}

		items = append(items, map[string]any{
			"id":         view.ID,
			"name":       view.Name,
			"value":      view.Value,
			"label":      label,
			"labelSafe":  r.labelPolicy != nil,
			"labelClass": view.LabelClass,
			"labelFirst": view.LabelFirst,
			"checked":    view.Checked,
			"disabled":   view.Disabled,
			"separator":  view.Separator,
			"attributes": attributes,
		})
	}
	return items
}
