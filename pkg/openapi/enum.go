package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-checkboxlist/pkg/model"
)

// Extension keys that may carry labels for enum values, in lookup order.
var labelExtensions = []string{"x-enum-labels", "x-enumNames"}

// ErrNoEnum is returned when the addressed schema declares no enum values.
var ErrNoEnum = errors.New("openapi: schema has no enum values")

// ItemsFromDocument loads an OpenAPI document (JSON or YAML) and returns the
// enum values of components.schemas[schema].properties[property] as items.
func ItemsFromDocument(ctx context.Context, data []byte, schema, property string) ([]model.Item, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	ref, err := lookupProperty(doc, schema, property)
	if err != nil {
		return nil, err
	}
	return ItemsFromSchema(ref)
}

// ItemsFromSchema converts an enum schema into items. Arrays are unwrapped so
// an array of enum strings yields the allowed element values.
func ItemsFromSchema(ref *openapi3.SchemaRef) ([]model.Item, error) {
	if ref == nil || ref.Value == nil {
		return nil, ErrNoEnum
	}
	schema := ref.Value
	if len(schema.Enum) == 0 && schema.Items != nil && schema.Items.Value != nil {
		schema = schema.Items.Value
	}
	if len(schema.Enum) == 0 {
		return nil, ErrNoEnum
	}

	labels := enumLabels(schema.Extensions, len(schema.Enum))
	items := make([]model.Item, 0, len(schema.Enum))
	for idx, value := range schema.Enum {
		item := model.Item{Value: value, Label: value, Record: value}
		if labels != nil {
			item.Label = labels[idx]
		}
		items = append(items, item)
	}
	return items, nil
}

func lookupProperty(doc *openapi3.T, schemaName, property string) (*openapi3.SchemaRef, error) {
	schemaName = strings.TrimSpace(schemaName)
	if schemaName == "" {
		return nil, errors.New("openapi: schema name is required")
	}
	if doc.Components == nil || doc.Components.Schemas == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}

	property = strings.TrimSpace(property)
	if property == "" {
		return ref, nil
	}
	prop, ok := ref.Value.Properties[property]
	if !ok || prop == nil {
		return nil, fmt.Errorf("openapi: property %q not found on schema %q", property, schemaName)
	}
	return prop, nil
}

func enumLabels(extensions map[string]any, size int) []string {
	for _, key := range labelExtensions {
		raw, ok := extensions[key].([]any)
		if !ok || len(raw) != size {
			continue
		}
		labels := make([]string, size)
		for idx, label := range raw {
			labels[idx] = model.Stringify(label)
		}
		return labels
	}
	return nil
}
