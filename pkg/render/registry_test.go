package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

type stubRenderer struct {
	name string
	err  error
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, list model.List, _ render.RenderOptions) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(list.Name), nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "Vanilla"})
	registry.MustRegister(stubRenderer{name: "tui"})

	if !registry.Has("vanilla") || !registry.Has(" VANILLA ") {
		t.Fatalf("lookups should be case-insensitive")
	}
	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(stubRenderer{name: "vanilla"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if _, err := registry.Get("preact"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
}

func TestRegistryRender(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "plain"})
	registry.MustRegister(stubRenderer{name: "broken", err: errors.New("boom")})

	out, contentType, err := registry.Render(context.Background(), "plain", model.List{Name: "colors"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "colors" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}

	_, _, err = registry.Render(context.Background(), "broken", model.List{}, render.RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), "broken: boom") {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	render.NewRegistry().MustGet("missing")
}

func TestRenderOptionsThemeTokens(t *testing.T) {
	opts := render.RenderOptions{Theme: &theme.RendererConfig{
		Theme: "acme",
		Tokens: map[string]string{
			render.TokenInputClass: " form-check-input ",
			render.TokenLabelClass: "form-check-label",
		},
		Partials: map[string]string{
			render.PartialList: "themes/acme/checkboxlist.tmpl",
		},
	}}

	if got := opts.InputClass(); got != "form-check-input" {
		t.Fatalf("input class = %q", got)
	}
	if got := opts.LabelClass(); got != "form-check-label" {
		t.Fatalf("label class = %q", got)
	}
	if got := opts.Partial(render.PartialList); got != "themes/acme/checkboxlist.tmpl" {
		t.Fatalf("partial = %q", got)
	}
	if (render.RenderOptions{}).InputClass() != "" {
		t.Fatalf("missing theme should yield empty class")
	}
}
