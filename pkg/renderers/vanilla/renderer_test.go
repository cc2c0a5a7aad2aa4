package vanilla_test

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/vanilla"
	"github.com/goliatone/go-checkboxlist/pkg/testsupport"
)

func TestRender_ColorsVerticalGolden(t *testing.T) {
	output := vanilla.Render(testsupport.ColorsList())
	testsupport.AssertGolden(t, filepath.Join("testdata", "colors_vertical.golden.html"), []byte(output))
}

func TestRender_ColorsHorizontalGolden(t *testing.T) {
	list := testsupport.ColorsList()
	list.Layout = model.LayoutHorizontal

	output := vanilla.Render(list)
	testsupport.AssertGolden(t, filepath.Join("testdata", "colors_horizontal.golden.html"), []byte(output))
}

func TestRender_ThemedLabelBeforeGolden(t *testing.T) {
	list := testsupport.ColorsList()
	list.Layout = model.LayoutHorizontal
	list.LabelPosition = model.LabelBefore
	list.Attributes = model.Attributes{"class": "swatch", "data-group": "palette"}

	renderer := vanilla.New()
	output, err := renderer.Render(testsupport.Context(), list, render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme: "bootstrap",
			Tokens: map[string]string{
				render.TokenInputClass: "form-check-input",
				render.TokenLabelClass: "form-check-label",
			},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	testsupport.AssertGolden(t, filepath.Join("testdata", "colors_themed_label_before.golden.html"), output)
}

func TestRender_ColorsScenario(t *testing.T) {
	output := vanilla.Render(testsupport.ColorsList())

	if got := strings.Count(output, `name="colors"`); got != 3 {
		t.Fatalf("expected three inputs named colors, got %d", got)
	}
	if got := strings.Count(output, `checked="checked"`); got != 1 {
		t.Fatalf("expected exactly one checked input, got %d", got)
	}
	if got := strings.Count(output, `disabled="disabled"`); got != 1 {
		t.Fatalf("expected exactly one disabled input, got %d", got)
	}
	if !strings.Contains(output, `value="2" checked="checked"`) {
		t.Fatalf("second item should be checked:\n%s", output)
	}
	if !strings.Contains(output, `value="3" disabled="disabled"`) {
		t.Fatalf("third item should be disabled:\n%s", output)
	}
}

func TestRender_EmitsOneInputPerItemInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 25} {
		values := make([]int, n)
		for i := range values {
			values[i] = n - i
		}
		list := model.List{
			Name:  "n",
			Items: model.FromSlice(values, func(v int) any { return v }, nil),
		}

		output := vanilla.Render(list)
		if got := strings.Count(output, `<input type="checkbox"`); got != n {
			t.Fatalf("n=%d: expected %d inputs, got %d", n, n, got)
		}

		last := -1
		for _, v := range values {
			pos := strings.Index(output, fmt.Sprintf(`value="%d"`, v))
			if pos <= last {
				t.Fatalf("n=%d: value %d out of order", n, v)
			}
			last = pos
		}
	}
}

func TestRender_DuplicateValuesRenderDuplicateInputs(t *testing.T) {
	list := model.List{Name: "dup", Items: model.Pairs("a", "A", "a", "Again"), Selected: model.NewSet("a")}
	output := vanilla.Render(list)

	if got := strings.Count(output, `value="a" checked="checked"`); got != 2 {
		t.Fatalf("expected both duplicates to be checked, got %d:\n%s", got, output)
	}
	if !strings.Contains(output, `id="dup2"`) {
		t.Fatalf("duplicates still need distinct ids:\n%s", output)
	}
}

func TestRender_SelectionUsesStringMembership(t *testing.T) {
	list := model.List{
		Name:     "n",
		Items:    model.Pairs(1, "one", "1.0", "float text", 10, "ten"),
		Selected: model.NewStringSet("1"),
	}
	output := vanilla.Render(list)

	if !strings.Contains(output, `value="1" checked="checked"`) {
		t.Fatalf("int value 1 should match selected \"1\":\n%s", output)
	}
	if strings.Count(output, `checked="checked"`) != 1 {
		t.Fatalf("only the exact string match should be checked:\n%s", output)
	}
}

func TestRender_EmptyList(t *testing.T) {
	if got := vanilla.Render(model.List{Name: "colors"}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := vanilla.Render(model.List{}); got != "" {
		t.Fatalf("expected empty output for zero list, got %q", got)
	}
}

func TestRender_EmptyNameStillRenders(t *testing.T) {
	output := vanilla.Render(model.List{Items: model.Pairs("x", "X")})
	want := `<input type="checkbox" name="" id="1" value="x" /><label for="1">X</label><br/>`
	if output != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, output)
	}
}

func TestRender_TypedNilValuesRenderEmpty(t *testing.T) {
	var missing *string
	output := vanilla.Render(model.List{
		Name:   "opt",
		Items:  []model.Item{{Value: missing, Label: missing}},
		Layout: model.LayoutHorizontal,
	})
	want := `<input type="checkbox" name="opt" id="opt1" value="" /><label for="opt1"></label>`
	if output != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, output)
	}
}

func TestRender_LayoutsDifferOnlyInSeparators(t *testing.T) {
	vertical := testsupport.ColorsList()
	horizontal := testsupport.ColorsList()
	horizontal.Layout = model.LayoutHorizontal

	v := vanilla.Render(vertical)
	h := vanilla.Render(horizontal)

	if strings.Count(v, vanilla.Separator) != 3 {
		t.Fatalf("vertical layout should end every item with a separator:\n%s", v)
	}
	if !strings.HasSuffix(v, vanilla.Separator) {
		t.Fatalf("vertical layout keeps the trailing separator:\n%s", v)
	}
	if strings.Contains(h, vanilla.Separator) {
		t.Fatalf("horizontal layout must not emit separators:\n%s", h)
	}
	if strings.ReplaceAll(v, vanilla.Separator, "") != h {
		t.Fatalf("layouts should only differ in separators\nvertical:   %s\nhorizontal: %s", v, h)
	}
}

func TestRender_EscapesLabelsAndAttributes(t *testing.T) {
	list := model.List{
		Name:       `x"y`,
		Items:      model.Pairs(`"><b>`, "<script>alert('x')</script>"),
		Attributes: model.Attributes{"data-note": `"><script>`},
	}
	output := vanilla.Render(list)

	if strings.Contains(output, "<script>") {
		t.Fatalf("unescaped script tag in output:\n%s", output)
	}
	for _, want := range []string{
		`&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;`,
		`name="x&#34;y"`,
		`value="&#34;&gt;&lt;b&gt;"`,
		`data-note="&#34;&gt;&lt;script&gt;"`,
		`id="x_y1"`,
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %s in output:\n%s", want, output)
		}
	}
}

func TestRender_ItemAttributesTakePrecedence(t *testing.T) {
	type tag struct {
		Slug  string
		Title string
		Color string
	}
	tags := []tag{{"go", "Go", "blue"}, {"rust", "Rust", ""}}

	list := model.List{
		Name:       "tags",
		Items:      model.FromSlice(tags, func(t tag) any { return t.Slug }, func(t tag) any { return t.Title }),
		Attributes: model.Attributes{"data-static": "yes"},
		ItemAttributes: model.AttributesFor(func(t tag) model.Attributes {
			if t.Color == "" {
				return nil
			}
			return model.Attributes{"data-color": t.Color}
		}),
		Layout: model.LayoutHorizontal,
	}
	output := vanilla.Render(list)

	want := `<input type="checkbox" name="tags" id="tags1" value="go" data-color="blue" /><label for="tags1">Go</label>` +
		`<input type="checkbox" name="tags" id="tags2" value="rust" /><label for="tags2">Rust</label>`
	if output != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, output)
	}
}

func TestRender_DropsReservedAndInvalidAttributes(t *testing.T) {
	list := model.List{
		Name:  "opts",
		Items: model.Pairs("a", "A"),
		Attributes: model.Attributes{
			"type":          "radio",
			"Checked":       "checked",
			"name":          "hijack",
			"onclick x":     "evil()",
			`"><img`:        "x",
			"":              "empty",
			"data-ok":       "1",
			"aria-describe": "hint",
		},
		Layout: model.LayoutHorizontal,
	}
	output := vanilla.Render(list)

	want := `<input type="checkbox" name="opts" id="opts1" value="a" aria-describe="hint" data-ok="1" /><label for="opts1">A</label>`
	if output != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, output)
	}
}

func TestRender_SanitizedIDs(t *testing.T) {
	list := model.List{Name: "user.roles[]", Items: model.Pairs("admin", "Admin"), Layout: model.LayoutHorizontal}
	output := vanilla.Render(list)

	if !strings.Contains(output, `name="user.roles[]" id="user_roles__1"`) {
		t.Fatalf("expected sanitised id:\n%s", output)
	}
	if !strings.Contains(output, `<label for="user_roles__1">`) {
		t.Fatalf("label should point at sanitised id:\n%s", output)
	}
}

func TestRender_LabelPolicy(t *testing.T) {
	renderer := vanilla.New(vanilla.WithLabelPolicy(vanilla.InlineLabelPolicy()))
	list := model.List{
		Name:   "terms",
		Items:  model.Pairs("tos", `I accept the <strong>terms</strong><script>alert(1)</script>`),
		Layout: model.LayoutHorizontal,
	}
	output := renderer.RenderString(list, render.RenderOptions{})

	if !strings.Contains(output, "<strong>terms</strong>") {
		t.Fatalf("inline markup should survive the policy:\n%s", output)
	}
	if strings.Contains(output, "<script") {
		t.Fatalf("script must be stripped by the policy:\n%s", output)
	}
}

func TestRenderer_RenderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := vanilla.New().Render(ctx, testsupport.ColorsList(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := vanilla.New()
	if renderer.Name() != "vanilla" {
		t.Fatalf("name = %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("content type = %q", renderer.ContentType())
	}
}

func TestHTMLAndComponentMatchRender(t *testing.T) {
	list := testsupport.ColorsList()
	want := vanilla.Render(list)

	if got := string(vanilla.HTML(list)); got != want {
		t.Fatalf("HTML mismatch\nwant: %s\n got: %s", want, got)
	}

	var buf bytes.Buffer
	if err := vanilla.Component(list).Render(context.Background(), &buf); err != nil {
		t.Fatalf("component render: %v", err)
	}
	if buf.String() != want {
		t.Fatalf("component mismatch\nwant: %s\n got: %s", want, buf.String())
	}
}

func TestRender_ConcurrentCallsAreIndependent(t *testing.T) {
	list := testsupport.ColorsList()
	want := vanilla.Render(list)

	done := make(chan string, 16)
	for i := 0; i < cap(done); i++ {
		go func() { done <- vanilla.Render(list) }()
	}
	for i := 0; i < cap(done); i++ {
		if got := <-done; got != want {
			t.Fatalf("concurrent render diverged:\n%s", got)
		}
	}
}
