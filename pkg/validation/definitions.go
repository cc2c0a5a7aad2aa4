package validation

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-checkboxlist/pkg/definitions"
	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/openapi"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

// Issue is a single problem found in a definition file.
type Issue struct {
	File    string `json:"file"`
	List    string `json:"list,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Location joins the list id and field path, e.g. "colors > items[2].value".
func (i Issue) Location() string {
	parts := make([]string, 0, 2)
	if i.List != "" {
		parts = append(parts, i.List)
	}
	if i.Field != "" {
		parts = append(parts, i.Field)
	}
	return strings.Join(parts, " > ")
}

func (i Issue) String() string {
	if loc := i.Location(); loc != "" {
		return fmt.Sprintf("%s: %s -> %s", i.File, loc, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.File, i.Message)
}

// Result captures the outcome of a lint run.
type Result struct {
	Valid  bool    `json:"valid"`
	Files  int     `json:"files"`
	Lists  int     `json:"lists"`
	Issues []Issue `json:"issues,omitempty"`
}

// ValidateDefinitions checks every JSON/YAML definition file under fsys.
func ValidateDefinitions(ctx context.Context, fsys fs.FS) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	l := &linter{ctx: ctx, fsys: fsys, seen: map[string]string{}}
	if fsys == nil {
		return l.result()
	}

	err := fs.WalkDir(fsys, ".", func(file string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !definitions.IsDefinitionFile(file) {
			return nil
		}
		l.lintFile(file)
		return nil
	})
	if err != nil {
		l.add(Issue{File: ".", Message: err.Error()})
	}
	return l.result()
}

type linter struct {
	ctx    context.Context
	fsys   fs.FS
	seen   map[string]string
	files  int
	lists  int
	issues []Issue
}

func (l *linter) add(issue Issue) {
	issue.Message = strings.TrimPrefix(strings.TrimSpace(issue.Message), "definitions: ")
	l.issues = append(l.issues, issue)
}

func (l *linter) result() Result {
	sort.SliceStable(l.issues, func(i, j int) bool {
		a, b := l.issues[i], l.issues[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.List != b.List {
			return a.List < b.List
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.Message < b.Message
	})
	return Result{
		Valid:  len(l.issues) == 0,
		Files:  l.files,
		Lists:  l.lists,
		Issues: l.issues,
	}
}

func (l *linter) lintFile(file string) {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		l.add(Issue{File: file, Message: fmt.Sprintf("read: %v", err)})
		return
	}
	lists, err := definitions.ParseDocument(data, file)
	if err != nil {
		l.add(Issue{File: file, Message: err.Error()})
		return
	}
	if len(lists) == 0 {
		return
	}
	l.files++

	ids := make([]string, 0, len(lists))
	for id := range lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, rawID := range ids {
		l.lists++
		id := strings.TrimSpace(rawID)
		if id == "" {
			l.add(Issue{File: file, Message: "list id is empty"})
			continue
		}
		if previous, dup := l.seen[id]; dup {
			l.add(Issue{File: file, List: id, Message: fmt.Sprintf("duplicate list id (first defined in %s)", previous)})
			continue
		}
		l.seen[id] = file
		l.lintList(file, id, lists[rawID])
	}
}

func (l *linter) lintList(file, id string, def definitions.Definition) {
	report := func(field, format string, args ...any) {
		l.add(Issue{File: file, List: id, Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if _, err := model.ParseLayout(def.Layout); err != nil {
		report("layout", "%v", strings.TrimPrefix(err.Error(), "model: "))
	}
	if _, err := model.ParseLabelPosition(def.LabelPosition); err != nil {
		report("labelPosition", "%v", strings.TrimPrefix(err.Error(), "model: "))
	}
	lintAttributes("attributes", def.Attributes, report)

	var values []string
	switch {
	case def.OpenAPI != nil && len(def.Items) > 0:
		report("openapi", "items and openapi are mutually exclusive")
		return
	case def.OpenAPI != nil:
		values = l.openAPIValues(file, *def.OpenAPI, report)
		if values == nil {
			return
		}
	default:
		values = lintItems(def.Items, report)
	}

	known := model.NewStringSet(values...)
	checkMembers := func(field string, members []any) {
		for idx, member := range members {
			value := model.Stringify(member)
			if !known.Has(value) {
				report(fmt.Sprintf("%s[%d]", field, idx), "value %q does not match any item", value)
			}
		}
	}
	checkMembers("selected", def.Selected)
	checkMembers("disabled", def.Disabled)
}

func lintItems(items []definitions.ItemDefinition, report func(field, format string, args ...any)) []string {
	values := make([]string, 0, len(items))
	first := make(map[string]int, len(items))
	for idx, item := range items {
		field := fmt.Sprintf("items[%d]", idx)
		if item.Value == nil {
			report(field+".value", "value is required")
			continue
		}
		value := model.Stringify(item.Value)
		if prev, dup := first[value]; dup {
			report(field+".value", "duplicate value %q (also items[%d])", value, prev)
		} else {
			first[value] = idx
		}
		values = append(values, value)
		lintAttributes(field+".attributes", item.Attributes, report)
	}
	return values
}

func lintAttributes(field string, attrs map[string]string, report func(field, format string, args ...any)) {
	for _, key := range model.Attributes(attrs).Keys() {
		name := strings.TrimSpace(key)
		switch {
		case !render.ValidAttributeName(name):
			report(field, "invalid attribute name %q", key)
		case render.ReservedAttribute(name):
			report(field, "attribute %q is set by the renderer and will be ignored", key)
		}
	}
}

func (l *linter) openAPIValues(file string, src definitions.OpenAPISource, report func(field, format string, args ...any)) []string {
	docPath := definitions.OpenAPIDocumentPath(file, src)
	if docPath == "" {
		report("openapi.document", "document is required")
		return nil
	}
	if strings.TrimSpace(src.Schema) == "" {
		report("openapi.schema", "schema is required")
		return nil
	}
	data, err := fs.ReadFile(l.fsys, docPath)
	if err != nil {
		report("openapi.document", "read %s: %v", docPath, err)
		return nil
	}
	items, err := openapi.ItemsFromDocument(l.ctx, data, src.Schema, src.Property)
	if err != nil {
		report("openapi", "%s", strings.TrimPrefix(err.Error(), "openapi: "))
		return nil
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, item.ValueString())
	}
	return values
}
