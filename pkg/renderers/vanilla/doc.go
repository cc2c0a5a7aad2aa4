// Package vanilla renders a checkbox list as plain HTML without a template
// engine. Each item becomes an <input type="checkbox"> followed by its
// <label>; vertical lists add a <br/> after every item, the last one
// included. Values and attributes are escaped for attribute context and
// labels for text context, unless a bluemonday policy is configured for
// labels. The output is deterministic so callers can pin it with golden files.
package vanilla
