package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-checkboxlist/pkg/render"
	"github.com/goliatone/go-checkboxlist/pkg/renderers/tui"
)

func (a *app) newPickCommand() *cobra.Command {
	var (
		dir      string
		listID   string
		format   string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Toggle a list interactively and print the selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputFormat, err := parseOutputFormat(format)
			if err != nil {
				return err
			}

			ctx := a.commandContext(cmd, "pick")
			store, err := a.loadStore(ctx, dir)
			if err != nil {
				return err
			}
			list, err := store.Lookup(listID)
			if err != nil {
				return err
			}

			renderer := tui.New(
				tui.WithPromptDriver(a.driver),
				tui.WithOutputFormat(outputFormat),
				tui.WithPageSize(pageSize),
			)
			out, err := renderer.Render(ctx, list, render.RenderOptions{})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "definitions", "d", "", "directory holding JSON/YAML list definitions")
	cmd.Flags().StringVarP(&listID, "list", "l", "", "id of the list to pick from")
	cmd.Flags().StringVarP(&format, "format", "f", string(tui.OutputFormatJSON), "json, form or pretty")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "options shown at once (0 uses the prompt default)")
	_ = cmd.MarkFlagRequired("list")
	return cmd
}

func parseOutputFormat(raw string) (tui.OutputFormat, error) {
	switch format := tui.OutputFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, form or pretty)", raw)
	}
}
