package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-checkboxlist/pkg/model"
)

// Attribute is a single resolved HTML attribute in output order.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ItemView is the per-item data every HTML renderer works from. Values are raw;
// escaping is the renderer's job.
type ItemView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Value      string      `json:"value"`
	Label      string      `json:"label"`
	Checked    bool        `json:"checked"`
	Disabled   bool        `json:"disabled"`
	Attributes []Attribute `json:"attributes"`
	LabelClass string      `json:"labelClass"`
	LabelFirst bool        `json:"labelFirst"`
	Separator  bool        `json:"separator"`
}

// reserved attributes are owned by the renderer and cannot be overridden.
var reserved = map[string]struct{}{
	"type":     {},
	"name":     {},
	"value":    {},
	"id":       {},
	"checked":  {},
	"disabled": {},
}

// BuildViews resolves every item of list into an ItemView, in source order.
func BuildViews(list model.List, options RenderOptions) []ItemView {
	list = list.Normalize()
	if len(list.Items) == 0 {
		return nil
	}

	idPrefix := ControlID(list.Name)
	inputClass := options.InputClass()
	labelClass := options.LabelClass()

	views := make([]ItemView, 0, len(list.Items))
	for idx, item := range list.Items {
		value := item.ValueString()
		views = append(views, ItemView{
			ID:         idPrefix + strconv.Itoa(idx+1),
			Name:       list.Name,
			Value:      value,
			Label:      options.ItemLabel(item),
			Checked:    list.Selected.Has(value),
			Disabled:   list.Disabled.Has(value),
			Attributes: resolveAttributes(list.AttributesFor(item), inputClass),
			LabelClass: labelClass,
			LabelFirst: list.LabelPosition == model.LabelBefore,
			Separator:  list.Layout == model.LayoutVertical,
		})
	}
	return views
}

// ControlID derives an element id prefix from a field name. Characters outside
// [A-Za-z0-9_-] become underscores so names like "tags[]" or "user.roles"
// still produce usable ids.
func ControlID(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ValidAttributeName reports whether key can be written as an attribute name
// without breaking out of the tag.
func ValidAttributeName(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r <= 0x20 || r == 0x7f {
			return false
		}
		switch r {
		case '"', '\'', '>', '<', '/', '=', '`':
			return false
		}
	}
	return true
}

// ReservedAttribute reports whether key is written by the renderer itself and
// therefore ignored when supplied as an extra attribute.
func ReservedAttribute(key string) bool {
	_, ok := reserved[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

func resolveAttributes(attrs model.Attributes, themeClass string) []Attribute {
	clean := make(model.Attributes, len(attrs)+1)
	for key, value := range attrs {
		key = strings.TrimSpace(key)
		if !ValidAttributeName(key) {
			continue
		}
		if ReservedAttribute(key) {
			continue
		}
		clean[key] = value
	}
	if themeClass != "" {
		clean["class"] = joinClasses(themeClass, clean["class"])
	}
	if len(clean) == 0 {
		return nil
	}

	out := make([]Attribute, 0, len(clean))
	for _, key := range clean.Keys() {
		out = append(out, Attribute{Key: key, Value: clean[key]})
	}
	return out
}

func joinClasses(values ...string) string {
	var tokens []string
	for _, value := range values {
		tokens = append(tokens, strings.Fields(value)...)
	}
	return strings.Join(tokens, " ")
}
