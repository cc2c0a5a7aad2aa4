package model

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Stringify converts a value into the string used for output and comparison.
// Nil, including typed nil pointers, maps, and slices, becomes the empty
// string; scalars, byte slices, and fmt.Stringer values go through cast,
// anything else through fmt.Sprint.
func Stringify(value any) string {
	if isNil(value) {
		return ""
	}
	if out, err := cast.ToStringE(value); err == nil {
		return out
	}
	return fmt.Sprint(value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// FromSlice converts records into items using the value and label accessors.
// A nil label accessor reuses the value as the label.
func FromSlice[T any](records []T, value func(T) any, label func(T) any) []Item {
	items := make([]Item, 0, len(records))
	if value == nil {
		return items
	}
	for _, record := range records {
		item := Item{
			Value:  value(record),
			Record: record,
		}
		if label != nil {
			item.Label = label(record)
		} else {
			item.Label = item.Value
		}
		items = append(items, item)
	}
	return items
}

// Pairs builds items from value/label pairs given in order. A trailing value
// without a label uses itself as the label.
func Pairs(pairs ...any) []Item {
	items := make([]Item, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		item := Item{Value: pairs[i], Label: pairs[i]}
		if i+1 < len(pairs) {
			item.Label = pairs[i+1]
		}
		items = append(items, item)
	}
	return items
}

// AttributesFor adapts a typed per-record attribute function to the
// List.ItemAttributes signature. Items whose Record is not a T get no
// attributes.
func AttributesFor[T any](fn func(T) Attributes) func(Item) Attributes {
	if fn == nil {
		return nil
	}
	return func(item Item) Attributes {
		record, ok := item.Record.(T)
		if !ok {
			return nil
		}
		return fn(record)
	}
}
