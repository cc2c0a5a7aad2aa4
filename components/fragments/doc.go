// Package fragments serves checkbox list markup over net/http so pages can
// fetch or refresh a list fragment (htmx style) without a full render.
//
// GET and HEAD requests to {route}/{id} render the stored list. The selected,
// disabled and layout query parameters override the stored state for that
// request. POST requests read the submitted form values for the list name and
// render them back as the new selection, which is how a form round-trip keeps
// the user's choices.
package fragments
