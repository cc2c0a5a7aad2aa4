// Package definitions loads named checkbox list definitions from JSON or YAML
// files. Each file declares a top-level "lists" map keyed by list id; a
// definition carries the field name, layout, static attributes, selected and
// disabled values, and either inline items or an OpenAPI enum to pull items
// from. LoadFS resolves everything up front so a Store only hands out ready
// model.List values.
package definitions
