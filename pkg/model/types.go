package model

import (
	"fmt"
	"sort"
	"strings"
)

// Layout controls whether a line break follows each rendered item.
type Layout string

const (
	// LayoutVertical emits a <br/> after every item, including the last one.
	LayoutVertical Layout = "vertical"
	// LayoutHorizontal emits items back to back.
	LayoutHorizontal Layout = "horizontal"
)

// ParseLayout resolves a layout name. An empty name maps to LayoutVertical.
func ParseLayout(raw string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(LayoutVertical):
		return LayoutVertical, nil
	case string(LayoutHorizontal):
		return LayoutHorizontal, nil
	default:
		return "", fmt.Errorf("model: unknown layout %q", raw)
	}
}

// LabelPosition controls which side of the checkbox the label is written on.
type LabelPosition string

const (
	LabelAfter  LabelPosition = "after"
	LabelBefore LabelPosition = "before"
)

// ParseLabelPosition resolves a label position name. An empty name maps to
// LabelAfter.
func ParseLabelPosition(raw string) (LabelPosition, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(LabelAfter):
		return LabelAfter, nil
	case string(LabelBefore):
		return LabelBefore, nil
	default:
		return "", fmt.Errorf("model: unknown label position %q", raw)
	}
}

// Attributes are extra HTML attributes written on each checkbox input.
type Attributes map[string]string

// Keys returns the attribute names in sorted order so output stays stable.
func (a Attributes) Keys() []string {
	if len(a) == 0 {
		return nil
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Merge returns a copy of a with override applied on top.
func (a Attributes) Merge(override Attributes) Attributes {
	if len(a) == 0 && len(override) == 0 {
		return nil
	}
	out := make(Attributes, len(a)+len(override))
	for key, value := range a {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

// Item is one entry of the data source. Value and Label are stringified at
// render time; Record keeps the source record for per-item attribute
// resolution. LabelKey, when set, is a message key renderers translate
// through the configured translator, with Label as the fallback.
type Item struct {
	Value    any
	Label    any
	LabelKey string
	Record   any
}

// ValueString returns the stringified value used for output and set lookups.
func (i Item) ValueString() string {
	return Stringify(i.Value)
}

// LabelString returns the stringified display label.
func (i Item) LabelString() string {
	return Stringify(i.Label)
}

// List is the fully resolved configuration handed to a renderer.
type List struct {
	// Name is used as the input name and as the id prefix.
	Name  string
	Items []Item
	// Selected and Disabled hold stringified values. Nil sets are empty.
	Selected Set
	Disabled Set
	// Attributes apply to every item unless ItemAttributes is set.
	Attributes Attributes
	// ItemAttributes, when non-nil, resolves attributes per item and takes
	// precedence over Attributes, even when it returns nothing.
	ItemAttributes func(Item) Attributes
	// Layout defaults to LayoutVertical.
	Layout Layout
	// LabelPosition defaults to LabelAfter.
	LabelPosition LabelPosition
}

// Normalize returns a copy of the list with defaults applied.
func (l List) Normalize() List {
	out := l
	out.Name = strings.TrimSpace(l.Name)
	if out.Items == nil {
		out.Items = []Item{}
	}
	switch out.Layout {
	case LayoutVertical, LayoutHorizontal:
	default:
		out.Layout = LayoutVertical
	}
	switch out.LabelPosition {
	case LabelAfter, LabelBefore:
	default:
		out.LabelPosition = LabelAfter
	}
	return out
}

// AttributesFor resolves the attribute map for item following the list rules:
// the per-item function wins when present, otherwise the static map applies.
func (l List) AttributesFor(item Item) Attributes {
	if l.ItemAttributes != nil {
		return l.ItemAttributes(item)
	}
	return l.Attributes
}
