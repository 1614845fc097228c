package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/toggleall"
)

func addToggleAll(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	to := &options.ToggleOptions{}

	cmd := &cobra.Command{
		Use:   "toggle-all",
		Short: "Mark every todo completed.",
		Example: `
todo toggle-all
todo toggle-all --undo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			route, err := fo.Route()
			if err != nil {
				return oo.HandleError(err)
			}
			s := toggleall.ToggleAll{
				Undo:   to.Undo,
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
	options.AddUndoArg(cmd, to)

	topLevel.AddCommand(cmd)
}
