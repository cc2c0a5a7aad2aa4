package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-checkboxlist/pkg/model"
)

// ErrMissingTranslator is passed to the missing handler when an item carries a
// label key but no Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the text used when key cannot be
// translated. args carries {"default": fallback} for label lookups.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// ItemLabel returns the display label for item, translated when the item has
// a LabelKey.
func (o RenderOptions) ItemLabel(item model.Item) string {
	fallback := item.LabelString()
	key := strings.TrimSpace(item.LabelKey)
	if key == "" {
		return fallback
	}
	return translate(o.Locale, key, fallback, o.Translator, o.missingHandler())
}

func (o RenderOptions) missingHandler() MissingTranslationHandler {
	if o.OnMissing != nil {
		return o.OnMissing
	}
	return missingTranslationDefault
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	if t == nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
}

// missingTranslationDefault prefers the untranslated label and falls back to
// the key itself.
func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if fallback := defaultArg(args); fallback != "" {
		return fallback
	}
	return key
}

func defaultArg(args []any) string {
	for _, arg := range args {
		if m, ok := arg.(map[string]any); ok {
			if value, ok := m["default"].(string); ok && strings.TrimSpace(value) != "" {
				return value
			}
		}
	}
	return ""
}
