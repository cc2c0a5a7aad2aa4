package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

// Selection is the JSON payload produced by the renderer.
type Selection struct {
	Name     string   `json:"name"`
	Selected []string `json:"selected"`
}

// Renderer implements render.Renderer for terminal sessions: the list becomes
// a multi-select prompt and the output is the resulting selection.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	message      string
	pageSize     int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for the enabled items of list, pre-selecting the ones in the
// selected set. Disabled items cannot be toggled and keep their current state.
func (r *Renderer) Render(ctx context.Context, list model.List, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	list = list.Normalize()
	views := render.BuildViews(list, opts)

	var (
		options  []string
		defaults []int
		owners   []int // view index behind each option
	)
	for idx, view := range views {
		if view.Disabled {
			continue
		}
		if view.Checked {
			defaults = append(defaults, len(options))
		}
		options = append(options, optionLabel(view))
		owners = append(owners, idx)
	}

	picked := make(map[int]struct{})
	if len(options) == 0 {
		if err := r.driver.Info(ctx, fmt.Sprintf("%s: nothing to select", r.title(list))); err != nil {
			return nil, err
		}
	} else {
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  r.title(list),
			Options:  options,
			Defaults: defaults,
			PageSize: r.pageSize,
		})
		if err != nil {
			return nil, err
		}
		for _, idx := range indices {
			if idx >= 0 && idx < len(owners) {
				picked[owners[idx]] = struct{}{}
			}
		}
	}

	selection := Selection{Name: list.Name, Selected: []string{}}
	seen := make(map[string]struct{})
	for idx, view := range views {
		keep := view.Disabled && view.Checked
		if _, ok := picked[idx]; ok {
			keep = true
		}
		if !keep {
			continue
		}
		if _, dup := seen[view.Value]; dup {
			continue
		}
		seen[view.Value] = struct{}{}
		selection.Selected = append(selection.Selected, view.Value)
	}

	return r.serialize(selection)
}

func (r *Renderer) title(list model.List) string {
	if msg := strings.TrimSpace(r.message); msg != "" {
		return msg
	}
	if list.Name != "" {
		return list.Name
	}
	return "Select"
}

func optionLabel(view render.ItemView) string {
	if view.Label == "" || view.Label == view.Value {
		return view.Value
	}
	return fmt.Sprintf("%s (%s)", view.Label, view.Value)
}

func (r *Renderer) serialize(selection Selection) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for _, value := range selection.Selected {
			values.Add(selection.Name, value)
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		fmt.Fprintf(&b, "%s:", selection.Name)
		if len(selection.Selected) == 0 {
			b.WriteString(" (none)")
		}
		b.WriteByte('\n')
		for _, value := range selection.Selected {
			fmt.Fprintf(&b, "  - %s\n", value)
		}
		return []byte(b.String()), nil
	default:
		payload, err := json.Marshal(selection)
		if err != nil {
			return nil, fmt.Errorf("tui: encode selection: %w", err)
		}
		return payload, nil
	}
}
