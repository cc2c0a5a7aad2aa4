package definitions

import "errors"

// ErrNotFound is returned by Store.Lookup for unknown list ids.
var ErrNotFound = errors.New("definitions: list not found")

// Definition is the on-disk shape of a single checkbox list.
type Definition struct {
	Name          string            `json:"name" yaml:"name"`
	Layout        string            `json:"layout" yaml:"layout"`
	LabelPosition string            `json:"labelPosition" yaml:"labelPosition"`
	Attributes    map[string]string `json:"attributes" yaml:"attributes"`
	Selected      []any             `json:"selected" yaml:"selected"`
	Disabled      []any             `json:"disabled" yaml:"disabled"`
	Items         []ItemDefinition  `json:"items" yaml:"items"`
	OpenAPI       *OpenAPISource    `json:"openapi,omitempty" yaml:"openapi,omitempty"`
}

// ItemDefinition is one inline item. Attributes are merged over the list's
// static attributes for this item only. LabelKey names a translation message;
// Label stays the fallback.
type ItemDefinition struct {
	Value      any               `json:"value" yaml:"value"`
	Label      any               `json:"label" yaml:"label"`
	LabelKey   string            `json:"labelKey" yaml:"labelKey"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
}

// OpenAPISource points at an enum inside an OpenAPI document. Document is
// resolved relative to the definition file.
type OpenAPISource struct {
	Document string `json:"document" yaml:"document"`
	Schema   string `json:"schema" yaml:"schema"`
	Property string `json:"property" yaml:"property"`
}

type documentFile struct {
	Lists map[string]Definition `json:"lists" yaml:"lists"`
}
