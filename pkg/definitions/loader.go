package definitions

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/openapi"
)

// Store holds resolved list definitions keyed by id.
type Store struct {
	lists map[string]entry
}

type entry struct {
	source     string
	name       string
	layout     model.Layout
	position   model.LabelPosition
	attributes model.Attributes
	selected   []string
	disabled   []string
	items      []model.Item
	perItem    bool
}

// LoadFS walks fsys and parses every JSON/YAML definition file. Files without
// a "lists" key (an OpenAPI document sitting next to the definitions, for
// example) are skipped. When fsys is nil the returned store is empty.
func LoadFS(ctx context.Context, fsys fs.FS) (*Store, error) {
	store := &Store{lists: make(map[string]entry)}
	if fsys == nil {
		return store, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	err := fs.WalkDir(fsys, ".", func(file string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !IsDefinitionFile(file) {
			return nil
		}

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("definitions: read %s: %w", file, err)
		}
		lists, err := ParseDocument(data, file)
		if err != nil {
			return err
		}

		for rawID, def := range lists {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("definitions: file %s defines an empty list id", file)
			}
			if existing, exists := store.lists[id]; exists {
				return fmt.Errorf("definitions: duplicate list %q (files %s and %s)", id, existing.source, file)
			}
			resolved, err := resolve(ctx, fsys, file, id, def)
			if err != nil {
				return err
			}
			store.lists[id] = resolved
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// List returns a freshly built model.List for id.
func (s *Store) List(id string) (model.List, bool) {
	if s == nil {
		return model.List{}, false
	}
	e, ok := s.lists[strings.TrimSpace(id)]
	if !ok {
		return model.List{}, false
	}
	return e.list(), true
}

// Lookup is List with an error for unknown ids.
func (s *Store) Lookup(id string) (model.List, error) {
	list, ok := s.List(id)
	if !ok {
		return model.List{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return list, nil
}

// IDs returns the list ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.lists))
	for id := range s.lists {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any lists.
func (s *Store) Empty() bool {
	return s == nil || len(s.lists) == 0
}

func (e entry) list() model.List {
	list := model.List{
		Name:          e.name,
		Items:         append([]model.Item(nil), e.items...),
		Selected:      model.NewStringSet(e.selected...),
		Disabled:      model.NewStringSet(e.disabled...),
		Attributes:    e.attributes.Clone(),
		Layout:        e.layout,
		LabelPosition: e.position,
	}
	if e.perItem {
		static := list.Attributes
		list.ItemAttributes = func(item model.Item) model.Attributes {
			def, ok := item.Record.(ItemDefinition)
			if !ok || len(def.Attributes) == 0 {
				return static
			}
			return static.Merge(def.Attributes)
		}
	}
	return list
}

func resolve(ctx context.Context, fsys fs.FS, file, id string, def Definition) (entry, error) {
	layout, err := model.ParseLayout(def.Layout)
	if err != nil {
		return entry{}, fmt.Errorf("definitions: list %q (file %s): %w", id, file, err)
	}
	position, err := model.ParseLabelPosition(def.LabelPosition)
	if err != nil {
		return entry{}, fmt.Errorf("definitions: list %q (file %s): %w", id, file, err)
	}

	name := strings.TrimSpace(def.Name)
	if name == "" {
		name = id
	}

	e := entry{
		source:     file,
		name:       name,
		layout:     layout,
		position:   position,
		attributes: model.Attributes(def.Attributes).Clone(),
		selected:   stringify(def.Selected),
		disabled:   stringify(def.Disabled),
	}

	if len(def.Items) > 0 && def.OpenAPI != nil {
		return entry{}, fmt.Errorf("definitions: list %q (file %s) declares both items and openapi", id, file)
	}

	if def.OpenAPI != nil {
		items, err := openAPIItems(ctx, fsys, file, *def.OpenAPI)
		if err != nil {
			return entry{}, fmt.Errorf("definitions: list %q (file %s): %w", id, file, err)
		}
		e.items = items
		return e, nil
	}

	e.items = make([]model.Item, 0, len(def.Items))
	for _, item := range def.Items {
		label := item.Label
		if label == nil {
			label = item.Value
		}
		if len(item.Attributes) > 0 {
			e.perItem = true
		}
		e.items = append(e.items, model.Item{
			Value:    item.Value,
			Label:    label,
			LabelKey: strings.TrimSpace(item.LabelKey),
			Record:   item,
		})
	}
	return e, nil
}

func openAPIItems(ctx context.Context, fsys fs.FS, file string, src OpenAPISource) ([]model.Item, error) {
	docPath := OpenAPIDocumentPath(file, src)
	if docPath == "" {
		return nil, fmt.Errorf("openapi source requires a document")
	}
	data, err := fs.ReadFile(fsys, docPath)
	if err != nil {
		return nil, fmt.Errorf("read openapi document %s: %w", docPath, err)
	}
	return openapi.ItemsFromDocument(ctx, data, src.Schema, src.Property)
}

// ParseDocument decodes a definition file, trying JSON first and YAML second,
// and returns its lists keyed by id. A document without a "lists" key yields
// an empty map.
func ParseDocument(data []byte, source string) (map[string]Definition, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("definitions: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc.Lists, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc.Lists, nil
	}

	return nil, fmt.Errorf("definitions: parse %s: invalid JSON or YAML", source)
}

// OpenAPIDocumentPath resolves src.Document relative to the definition file.
func OpenAPIDocumentPath(file string, src OpenAPISource) string {
	document := strings.TrimSpace(src.Document)
	if document == "" {
		return ""
	}
	return path.Clean(path.Join(path.Dir(file), document))
}

func stringify(values []any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, model.Stringify(value))
	}
	return out
}

// IsDefinitionFile reports whether file has a JSON or YAML extension.
func IsDefinitionFile(file string) bool {
	switch strings.ToLower(path.Ext(file)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
