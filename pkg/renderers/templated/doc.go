// Package templated renders checkbox lists through a pongo2 template, run by
// a go-template engine, instead of hand-built strings. The default template
// escapes values with the html_escape filter, which matches the vanilla
// renderer, so both produce the same bytes for any input. Themes can swap the
// template through the "checkboxlist" partial, and callers can ship their own
// bundle with WithTemplatesFS or WithTemplatesDir. Custom templates that rely
// on pongo2 autoescaping instead encode quotes as &quot; where vanilla writes
// &#34;.
package templated
