package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestBuildViews_TranslatesLabelKeys(t *testing.T) {
	list := model.List{Name: "colors", Items: []model.Item{
		{Value: 1, Label: "Red", LabelKey: "colors.red"},
		{Value: 2, Label: "Green", LabelKey: "colors.green"},
		{Value: 3, Label: "", LabelKey: "colors.blue"},
		{Value: 4, Label: "Black"},
	}}

	views := render.BuildViews(list, render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{"colors.red": "<b>Rojo</b>"},
	})

	var got []string
	for _, view := range views {
		got = append(got, view.Label)
	}
	want := []string{"<b>Rojo</b>", "Green", "colors.blue", "Black"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if list.Items[0].LabelString() != "Red" {
		t.Fatalf("source list must not be modified")
	}
}

func TestItemLabel_WithoutTranslatorUsesFallback(t *testing.T) {
	item := model.Item{Value: "x", Label: "Ex", LabelKey: "items.x"}
	if got := (render.RenderOptions{}).ItemLabel(item); got != "Ex" {
		t.Fatalf("expected fallback label, got %q", got)
	}

	var gotErr error
	opts := render.RenderOptions{OnMissing: func(locale, key string, _ []any, err error) string {
		gotErr = err
		return "?" + key
	}}
	if got := opts.ItemLabel(item); got != "?items.x" {
		t.Fatalf("expected missing handler output, got %q", got)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(stubTranslator{"title": "Colores"}, render.TemplateI18nConfig{FuncName: "t"})

	translate, ok := funcs["t"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("expected translate helper under custom name, got %T", funcs["t"])
	}
	if got := translate("es", "title"); got != "Colores" {
		t.Fatalf("translate = %q", got)
	}
	if got := translate(map[string]any{"locale": "es"}, "missing"); got != "missing" {
		t.Fatalf("missing key should fall back to the key, got %q", got)
	}
	if got := translate("es", " "); got != "" {
		t.Fatalf("blank key should render empty, got %q", got)
	}

	current, ok := funcs["current_locale"].(func(any) string)
	if !ok {
		t.Fatalf("current_locale helper missing")
	}
	if got := current(map[string]string{"locale": "fr"}); got != "fr" {
		t.Fatalf("current_locale = %q", got)
	}
}
