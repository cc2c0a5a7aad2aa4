// Package template defines the template engine contract used by the templated
// checkbox list renderer. Adapters live in subpackages (see gotemplate).
package template
