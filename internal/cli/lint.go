package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-checkboxlist/pkg/validation"
)

// errLintFailed is returned when lint finds issues; the issues themselves are
// already printed.
var errLintFailed = errors.New("lint found issues")

func (a *app) newLintCommand() *cobra.Command {
	var (
		dir    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check list definitions and report every problem found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				return fmt.Errorf("--definitions is required")
			}
			ctx := a.commandContext(cmd, "lint")
			result := validation.ValidateDefinitions(ctx, os.DirFS(dir))
			a.log().DebugContext(ctx, "lint finished",
				slog.Int("files", result.Files),
				slog.Int("lists", result.Lists),
				slog.Int("issues", len(result.Issues)),
			)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				for _, issue := range result.Issues {
					if _, err := fmt.Fprintln(out, issue.String()); err != nil {
						return err
					}
				}
			}

			if !result.Valid {
				return errLintFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "definitions", "d", "", "directory holding JSON/YAML list definitions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
