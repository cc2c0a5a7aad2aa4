package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	checkboxlist "github.com/goliatone/go-checkboxlist"
	"github.com/goliatone/go-checkboxlist/pkg/model"
	"github.com/goliatone/go-checkboxlist/pkg/render"
)

type renderFlags struct {
	dir        string
	listID     string
	selected   []string
	disabled   []string
	layout     string
	labelPos   string
	renderer   string
	output     string
	inputClass string
	labelClass string
}

func (a *app) newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a list definition as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.commandContext(cmd, "render")
			store, err := a.loadStore(ctx, flags.dir)
			if err != nil {
				return err
			}
			list, err := store.Lookup(flags.listID)
			if err != nil {
				return err
			}
			if list, err = applyOverrides(list, flags, cmd.Flags().Changed); err != nil {
				return err
			}

			registry, err := checkboxlist.NewRegistry()
			if err != nil {
				return err
			}
			if err := requireHTMLRenderer(registry, flags.renderer); err != nil {
				return err
			}
			opts := checkboxlist.ThemeOptions(flags.inputClass, flags.labelClass)
			out, _, err := registry.Render(ctx, flags.renderer, list, opts)
			if err != nil {
				return err
			}

			if flags.output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(flags.output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			a.log().InfoContext(ctx, "list rendered", slog.String("list", flags.listID), slog.String("output", flags.output))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.dir, "definitions", "d", "", "directory holding JSON/YAML list definitions")
	f.StringVarP(&flags.listID, "list", "l", "", "id of the list to render")
	f.StringSliceVar(&flags.selected, "selected", nil, "values to check, replacing the stored selection")
	f.StringSliceVar(&flags.disabled, "disabled", nil, "values to disable, replacing the stored set")
	f.StringVar(&flags.layout, "layout", "", "vertical or horizontal")
	f.StringVar(&flags.labelPos, "label-position", "", "after or before")
	f.StringVarP(&flags.renderer, "renderer", "r", "vanilla", "vanilla or templated")
	f.StringVarP(&flags.output, "output", "o", "", "write to file instead of stdout")
	f.StringVar(&flags.inputClass, "input-class", "", "class added to every checkbox input")
	f.StringVar(&flags.labelClass, "label-class", "", "class added to every label")
	_ = cmd.MarkFlagRequired("list")
	return cmd
}

// applyOverrides replaces stored settings with the ones given on the command
// line or in config. An empty --selected or --disabled clears the stored set.
func applyOverrides(list model.List, flags *renderFlags, changed func(string) bool) (model.List, error) {
	if changed("selected") {
		list.Selected = model.NewStringSet(flags.selected...)
	}
	if changed("disabled") {
		list.Disabled = model.NewStringSet(flags.disabled...)
	}
	if flags.layout != "" {
		layout, err := model.ParseLayout(flags.layout)
		if err != nil {
			return list, err
		}
		list.Layout = layout
	}
	if flags.labelPos != "" {
		position, err := model.ParseLabelPosition(flags.labelPos)
		if err != nil {
			return list, err
		}
		list.LabelPosition = position
	}
	return list, nil
}

// requireHTMLRenderer rejects renderers that do not produce markup. The tui
// renderer prompts on the terminal and belongs to the pick command.
func requireHTMLRenderer(registry *render.Registry, name string) error {
	renderer, err := registry.Get(name)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		return fmt.Errorf("renderer %q does not produce HTML (%s); use the pick command for interactive selection", name, renderer.ContentType())
	}
	return nil
}
