package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

type stubDriver struct {
	pick    []int
	err     error
	configs []SelectConfig
	infos   []string
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.configs = append(s.configs, cfg)
	if s.err != nil {
		return nil, s.err
	}
	return s.pick, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func colors() model.List {
	return model.List{
		Name:     "colors",
		Items:    model.Pairs(1, "Red", 2, "Green", 3, "Blue", 4, "Black"),
		Selected: model.NewSet(2, 3),
		Disabled: model.NewSet(3),
	}
}

func TestRender_PromptsEnabledItemsWithDefaults(t *testing.T) {
	driver := &stubDriver{pick: []int{0, 2}}
	r := New(WithPromptDriver(driver))

	out, err := r.Render(context.Background(), colors(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(driver.configs) != 1 {
		t.Fatalf("expected one prompt, got %d", len(driver.configs))
	}
	cfg := driver.configs[0]
	if diff := cmp.Diff([]string{"Red (1)", "Green (2)", "Black (4)"}, cfg.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, cfg.Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.Message != "colors" {
		t.Fatalf("message = %q", cfg.Message)
	}

	// Red and Black picked, Green unpicked, Blue is disabled but stays checked.
	if string(out) != `{"name":"colors","selected":["1","3","4"]}` {
		t.Fatalf("unexpected payload %s", out)
	}
}

func TestRender_FormEncodedOutput(t *testing.T) {
	driver := &stubDriver{pick: []int{1}}
	r := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))

	out, err := r.Render(context.Background(), colors(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "colors=2&colors=3" {
		t.Fatalf("unexpected payload %q", out)
	}
	if r.ContentType() != "application/x-www-form-urlencoded" {
		t.Fatalf("content type = %q", r.ContentType())
	}
}

func TestRender_PrettyOutput(t *testing.T) {
	driver := &stubDriver{pick: nil}
	list := colors()
	list.Disabled = nil
	r := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText), WithMessage("Pick colours"))

	out, err := r.Render(context.Background(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "colors: (none)\n" {
		t.Fatalf("unexpected payload %q", out)
	}
	if driver.configs[0].Message != "Pick colours" {
		t.Fatalf("message override ignored: %q", driver.configs[0].Message)
	}
}

func TestRender_AllDisabledSkipsPrompt(t *testing.T) {
	driver := &stubDriver{}
	list := model.List{
		Name:     "locked",
		Items:    model.Pairs("a", "A", "b", "B"),
		Selected: model.NewSet("b"),
		Disabled: model.NewSet("a", "b"),
	}

	out, err := New(WithPromptDriver(driver)).Render(context.Background(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(driver.configs) != 0 {
		t.Fatalf("prompt should be skipped when nothing can be toggled")
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected an info message, got %v", driver.infos)
	}
	if string(out) != `{"name":"locked","selected":["b"]}` {
		t.Fatalf("unexpected payload %s", out)
	}
}

func TestRender_EmptyListReturnsEmptySelection(t *testing.T) {
	driver := &stubDriver{}
	out, err := New(WithPromptDriver(driver)).Render(context.Background(), model.List{Name: "none"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"name":"none","selected":[]}` {
		t.Fatalf("unexpected payload %s", out)
	}
}

func TestRender_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	_, err := New(WithPromptDriver(driver)).Render(context.Background(), colors(), render.RenderOptions{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(WithPromptDriver(&stubDriver{})).Render(ctx, colors(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestOptionLabelCollapsesWhenLabelMatchesValue(t *testing.T) {
	if got := optionLabel(render.ItemView{Value: "go", Label: "go"}); got != "go" {
		t.Fatalf("optionLabel = %q", got)
	}
}

func TestIndexHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, defaultsFromIndices(options, []int{1, 7, -1})); diff != "" {
		t.Fatalf("defaultsFromIndices mismatch (-want +got):\n%s", diff)
	}
}
