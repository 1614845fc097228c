package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	classic := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive todo list.",
		Example: `
todo ui
todo ui --filter active
todo ui --classic
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			route, err := fo.Route()
			if err != nil {
				return err
			}
			i := ui.UI{Route: route, Classic: classic}
			return i.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	cmd.Flags().BoolVar(&classic, "classic", false, "Use the table based view.")

	topLevel.AddCommand(cmd)
}
