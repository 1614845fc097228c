package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/clear"
)

func addClearCompleted(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:     "clear-completed",
		Aliases: []string{"clear"},
		Short:   "Remove every completed todo.",
		Example: `
todo clear-completed
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			route, err := fo.Route()
			if err != nil {
				return oo.HandleError(err)
			}
			s := clear.Clear{
				Route:  route,
				ShowID: io.ShowID,
				Trace:  oo.Trace,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
