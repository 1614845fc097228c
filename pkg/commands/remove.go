package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id>...",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove todos.",
		Example: `
todo remove 3
todo rm 3 4 5
todo rm -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if i.Interactive && len(args) == 0 {
				return nil
			}
			return io.ParseIDs(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			route, err := fo.Route()
			if err != nil {
				return oo.HandleError(err)
			}
			if i.Interactive && len(io.IDs) == 0 {
				picked, err := pickTodo(cmd, "Remove", route)
				if err != nil {
					return oo.HandleError(err)
				}
				io.IDs = []int{picked.ID}
			}
			s := remove.Remove{
				IDs:    io.IDs,
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
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
