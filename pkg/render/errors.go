package render

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-checkboxlist/pkg/model"
)

// ErrorMapping splits validation messages into per-item messages keyed by
// item value and list-level messages.
type ErrorMapping struct {
	Items map[string][]string
	List  []string
}

// Empty reports whether the mapping holds no messages.
func (m ErrorMapping) Empty() bool {
	return len(m.Items) == 0 && len(m.List) == 0
}

// Messages flattens the mapping: list-level messages first, then item
// messages ordered by value.
func (m ErrorMapping) Messages() []string {
	out := append([]string(nil), m.List...)
	values := make([]string, 0, len(m.Items))
	for value := range m.Items {
		values = append(values, value)
	}
	sort.Strings(values)
	for _, value := range values {
		out = append(out, m.Items[value]...)
	}
	return out
}

// MergeListErrors concatenates list-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeListErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload assigns server error messages to the items of list. Keys may
// be a bare value or a path naming the list and the value, in dotted,
// bracketed or JSON pointer form ("colors.2", "colors[2]", "/colors/2").
// Keys that match no item become list-level messages.
func MapErrorPayload(list model.List, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Items: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Items = nil
		return mapping
	}

	values := make(map[string]struct{}, len(list.Items))
	for _, item := range list.Items {
		values[item.ValueString()] = struct{}{}
	}
	name := strings.TrimSpace(list.Name)

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		messages := normalizeMessages(payload[key])
		if len(messages) == 0 {
			continue
		}
		value, ok := itemForPath(key, name, values)
		if !ok {
			mapping.List = append(mapping.List, messages...)
			continue
		}
		mapping.Items[value] = append(mapping.Items[value], messages...)
	}

	if len(mapping.Items) == 0 {
		mapping.Items = nil
	}
	mapping.List = normalizeMessages(mapping.List)
	return mapping
}

// ValidateSubmission reports posted values a rendered list could not have
// sent: values that match no item and values of disabled items.
func ValidateSubmission(list model.List, values url.Values) ErrorMapping {
	var mapping ErrorMapping
	posted := model.SetFromForm(values, list.Name)
	if posted.Len() == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(list.Items))
	for _, item := range list.Items {
		known[item.ValueString()] = struct{}{}
	}

	for _, value := range posted.Values() {
		if _, ok := known[value]; !ok {
			mapping.List = append(mapping.List, fmt.Sprintf("%q is not an option of %s", value, list.Name))
			continue
		}
		if list.Disabled.Has(value) {
			if mapping.Items == nil {
				mapping.Items = make(map[string][]string)
			}
			mapping.Items[value] = append(mapping.Items[value], fmt.Sprintf("%q is disabled", value))
		}
	}
	return mapping
}

func itemForPath(raw, name string, values map[string]struct{}) (string, bool) {
	key := strings.TrimSpace(raw)
	if _, ok := values[key]; ok {
		return key, true
	}
	if isListLevelKey(key) {
		return "", false
	}

	segments := pathSegments(key)
	if len(segments) == 0 {
		return "", false
	}
	for len(segments) > 1 && (segments[0] == name || isWrapperSegment(segments[0])) {
		segments = segments[1:]
	}
	if len(segments) != 1 {
		return "", false
	}
	if _, ok := values[segments[0]]; ok {
		return segments[0], true
	}
	return "", false
}

func pathSegments(path string) []string {
	clean := strings.TrimLeft(path, "#$/.")
	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		out = append(out, part)
	}
	return out
}

func isWrapperSegment(segment string) bool {
	switch strings.ToLower(segment) {
	case "body", "request", "payload", "data":
		return true
	default:
		return false
	}
}

func isListLevelKey(key string) bool {
	switch strings.ToLower(key) {
	case "", ".", "/", "#", "$", "form", "list", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
