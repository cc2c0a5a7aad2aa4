// Package openapi derives checkbox list items from OpenAPI 3 documents. A
// property declared as an enum (or an array of enum values) maps naturally to
// a checkbox list: each enum value becomes an item, and the x-enum-labels or
// x-enumNames extension supplies display labels when present.
package openapi
