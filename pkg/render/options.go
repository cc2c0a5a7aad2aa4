package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token and partial keys understood by the HTML renderers.
const (
	TokenInputClass = "checkboxlist.input.class"
	TokenLabelClass = "checkboxlist.label.class"
	PartialList     = "checkboxlist"
)

// RenderOptions describe per-request data renderers can use to customise their
// output without mutating the list itself.
type RenderOptions struct {
	// Theme carries the resolved go-theme selection. Renderers read class
	// tokens from it and the templated renderer honours partial overrides.
	Theme *theme.RendererConfig

	// Locale and Translator resolve item labels that carry a LabelKey.
	// Without a Translator the untranslated label is used.
	Locale     string
	Translator Translator
	// OnMissing overrides the text used when a label key cannot be
	// translated.
	OnMissing MissingTranslationHandler
}

// InputClass returns the theme class for checkbox inputs, if any.
func (o RenderOptions) InputClass() string {
	return o.token(TokenInputClass)
}

// LabelClass returns the theme class for labels, if any.
func (o RenderOptions) LabelClass() string {
	return o.token(TokenLabelClass)
}

// Partial returns the theme template override registered under key.
func (o RenderOptions) Partial(key string) string {
	if o.Theme == nil || o.Theme.Partials == nil {
		return ""
	}
	return strings.TrimSpace(o.Theme.Partials[key])
}

func (o RenderOptions) token(key string) string {
	if o.Theme == nil || o.Theme.Tokens == nil {
		return ""
	}
	return strings.TrimSpace(o.Theme.Tokens[key])
}
