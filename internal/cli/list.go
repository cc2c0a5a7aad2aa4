package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the ids of the available list definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadStore(a.commandContext(cmd, "list"), dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range store.IDs() {
				if _, err := fmt.Fprintln(out, id); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "definitions", "d", "", "directory holding JSON/YAML list definitions")
	return cmd
}
