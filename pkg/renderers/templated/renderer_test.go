package templated_test

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/templated"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/vanilla"
	"github.com/goliatone/go-checkboxlist/pkg/testsupport"
)

func newRenderer(t *testing.T, opts ...templated.Option) *templated.Renderer {
	t.Helper()
	renderer, err := templated.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRenderer_MatchesVanillaForPlainValues(t *testing.T) {
	renderer := newRenderer(t)

	layouts := []model.Layout{model.LayoutVertical, model.LayoutHorizontal}
	for _, layout := range layouts {
		list := testsupport.ColorsList()
		list.Layout = layout

		output, err := renderer.Render(testsupport.Context(), list, render.RenderOptions{})
		if err != nil {
			t.Fatalf("render %s: %v", layout, err)
		}
		want := vanilla.Render(list)
		if diff := testsupport.CompareGolden(want, string(output)); diff != "" {
			t.Fatalf("%s output mismatch (-vanilla +templated):\n%s", layout, diff)
		}
	}
}

func TestRenderer_ThemedLabelBeforeMatchesVanilla(t *testing.T) {
	list := testsupport.ColorsList()
	list.LabelPosition = model.LabelBefore
	list.Attributes = model.Attributes{"class": "swatch", "data-group": "palette"}
	opts := render.RenderOptions{Theme: &theme.RendererConfig{
		Tokens: map[string]string{
			render.TokenInputClass: "form-check-input",
			render.TokenLabelClass: "form-check-label",
		},
	}}

	output, err := newRenderer(t).Render(testsupport.Context(), list, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := vanilla.New().RenderString(list, opts)
	if diff := testsupport.CompareGolden(want, string(output)); diff != "" {
		t.Fatalf("output mismatch (-vanilla +templated):\n%s", diff)
	}
}

func TestRenderer_MatchesVanillaForSpecialCharacters(t *testing.T) {
	list := model.List{
		Name:       `tags"[]`,
		Items:      model.Pairs(`"quoted" & 'single'`, `Tom & "Jerry" <3`, "plain", "it's"),
		Selected:   model.NewSet(`"quoted" & 'single'`),
		Attributes: model.Attributes{"data-note": `a "b" & 'c'`},
	}

	output, err := newRenderer(t).Render(testsupport.Context(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := vanilla.Render(list)
	if diff := testsupport.CompareGolden(want, string(output)); diff != "" {
		t.Fatalf("output mismatch (-vanilla +templated):\n%s", diff)
	}
	if !strings.Contains(string(output), `value="&#34;quoted&#34; &amp; &#39;single&#39;"`) {
		t.Fatalf("expected stdlib attribute escaping:\n%s", output)
	}
}

type mapTranslator map[string]string

func (m mapTranslator) Translate(locale, key string, _ ...any) (string, error) {
	if msg, ok := m[locale+":"+key]; ok {
		return msg, nil
	}
	return "", fmt.Errorf("missing %s", key)
}

func TestRenderer_TranslatesLabelKeys(t *testing.T) {
	translator := mapTranslator{"es:colors.red": "Rojo", "es:colors.title": "Colores"}
	files := fstest.MapFS{
		"list.tmpl": {Data: []byte(`{{ translate(locale, "colors.title") }}:{% for item in items %} {{ item.label }}{% endfor %}`)},
	}
	renderer := newRenderer(t,
		templated.WithTemplatesFS(files),
		templated.WithTemplateFuncs(render.TemplateI18nFuncs(translator, render.TemplateI18nConfig{})),
	)
	list := model.List{Name: "colors", Items: []model.Item{
		{Value: 1, Label: "Red", LabelKey: "colors.red"},
		{Value: 2, Label: "Green", LabelKey: "colors.green"},
		{Value: 3, Label: "Blue"},
	}}

	output, err := renderer.Render(testsupport.Context(), list, render.RenderOptions{
		Locale:     "es",
		Translator: translator,
		Theme:      &theme.RendererConfig{Partials: map[string]string{render.PartialList: "list.tmpl"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(output) != "Colores: Rojo Green Blue" {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestRenderer_EscapesLabels(t *testing.T) {
	list := model.List{Name: "x", Items: model.Pairs("1", "<script>alert(1)</script>")}

	output, err := newRenderer(t).Render(testsupport.Context(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(output), "<script>") {
		t.Fatalf("unescaped label in output:\n%s", output)
	}
}

func TestRenderer_LabelPolicyMarksLabelsSafe(t *testing.T) {
	renderer := newRenderer(t, templated.WithLabelPolicy(vanilla.InlineLabelPolicy()))
	list := model.List{Name: "x", Items: model.Pairs("1", "<em>New</em><script>alert(1)</script>")}

	output, err := renderer.Render(testsupport.Context(), list, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(output), "<em>New</em>") {
		t.Fatalf("expected sanitised markup to survive:\n%s", output)
	}
	if strings.Contains(string(output), "<script") {
		t.Fatalf("script must be stripped:\n%s", output)
	}
}

func TestRenderer_EmptyList(t *testing.T) {
	output, err := newRenderer(t).Render(testsupport.Context(), model.List{Name: "x"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(output) != 0 {
		t.Fatalf("expected empty output, got %q", output)
	}
}

func TestRenderer_ThemePartialOverride(t *testing.T) {
	files := fstest.MapFS{
		templated.TemplateName:  {Data: []byte("default")},
		"themes/acme/list.tmpl": {Data: []byte(`{% for item in items %}[{{ item.value }}{% if item.checked %}*{% endif %}]{% endfor %}`)},
	}
	renderer := newRenderer(t, templated.WithTemplatesFS(files))

	output, err := renderer.Render(testsupport.Context(), testsupport.ColorsList(), render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:    "acme",
			Partials: map[string]string{render.PartialList: "themes/acme/list.tmpl"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(output) != "[1][2*][3]" {
		t.Fatalf("unexpected partial output %q", output)
	}
}

func TestRenderer_MissingTemplateFails(t *testing.T) {
	renderer := newRenderer(t, templated.WithTemplatesFS(fstest.MapFS{}))

	if _, err := renderer.Render(testsupport.Context(), testsupport.ColorsList(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestTemplatesFSContainsDefaultTemplate(t *testing.T) {
	if _, err := templated.TemplatesFS().Open(templated.TemplateName); err != nil {
		t.Fatalf("default template missing: %v", err)
	}
}
