// Package model defines the resolved checkbox list consumed by renderers. A
// List carries the form field name, the ordered items, the selected and
// disabled value sets, static or per-item HTML attributes, and the layout.
// Values are compared by their string form, so the host can hand in records of
// any type and let FromSlice, SetOf, and Stringify do the conversion. Nothing
// here holds state across renders; a List is built, rendered, and dropped.
package model
