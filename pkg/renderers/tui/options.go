package tui

// OutputFormat controls how the collected selection is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits {"name": ..., "selected": [...]}.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits name=v1&name=v2, the payload a browser
	// would post for the same checkboxes.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly text summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithMessage overrides the prompt title. Defaults to the list name.
func WithMessage(message string) Option {
	return func(r *Renderer) {
		r.message = message
	}
}

// WithPageSize limits how many options the prompt shows at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}
