package fragments

import (
	"log/slog"
	"net/http"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/vanilla"
)

const (
	defaultRoutePath     = "/fragments/checkboxlists"
	defaultSelectedParam = "selected"
	defaultDisabledParam = "disabled"
	defaultLayoutParam   = "layout"
	defaultLocaleParam   = "locale"
	defaultRendererName  = "vanilla"
)

// ListSource resolves a list by id. *definitions.Store satisfies it.
type ListSource interface {
	Lookup(id string) (model.List, error)
}

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath     string
	SelectedParam string
	DisabledParam string
	LayoutParam   string
	LocaleParam   string
	RendererName  string
	Guard         GuardFunc
	// StrictSubmission rejects POSTs carrying unknown or disabled values
	// with 422 instead of dropping them.
	StrictSubmission bool

	Lists         ListSource
	Registry      *render.Registry
	RenderOptions render.RenderOptions
	Logger        *slog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     defaultRoutePath,
		SelectedParam: defaultSelectedParam,
		DisabledParam: defaultDisabledParam,
		LayoutParam:   defaultLayoutParam,
		LocaleParam:   defaultLocaleParam,
		RendererName:  defaultRendererName,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.SelectedParam == "" {
		opts.SelectedParam = defaultSelectedParam
	}
	if opts.DisabledParam == "" {
		opts.DisabledParam = defaultDisabledParam
	}
	if opts.LayoutParam == "" {
		opts.LayoutParam = defaultLayoutParam
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = defaultLocaleParam
	}
	if opts.RendererName == "" {
		opts.RendererName = defaultRendererName
	}
	if opts.Registry == nil {
		opts.Registry = defaultRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

func defaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(vanilla.New())
	return registry
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithSelectedParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SelectedParam = name
	}
}

func WithDisabledParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DisabledParam = name
	}
}

func WithLayoutParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LayoutParam = name
	}
}

// WithLocaleParam names the query parameter that overrides
// RenderOptions.Locale for a request.
func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

func WithStrictSubmission(strict bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.StrictSubmission = strict
	}
}

// WithRenderer picks the registry entry used for responses.
func WithRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RendererName = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLists(lists ListSource) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Lists = lists
	}
}

func WithRegistry(registry *render.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Registry = registry
	}
}

// WithRenderOptions sets the theme data passed to every render call.
func WithRenderOptions(options render.RenderOptions) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RenderOptions = options
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
