package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	i := &options.InteractiveOptions{}
	to := &options.ToggleOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <id>...",
		Aliases: []string{"complete", "done"},
		Short:   "Flip todos between active and completed.",
		Example: `
todo toggle 3
todo toggle 3 4 --done
todo done 3 --undo
todo toggle -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if err := to.Validate(); err != nil {
				return err
			}
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
				picked, err := pickTodo(cmd, "Toggle", route)
				if err != nil {
					return oo.HandleError(err)
				}
				io.IDs = []int{picked.ID}
			}
			s := toggle.Toggle{
				IDs:       io.IDs,
				Set:       to.Done || to.Undo,
				Completed: to.Done,
				Route:     route,
				ShowID:    io.ShowID,
				Trace:     oo.Trace,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFilterArgs(cmd, fo)
	options.InteractiveArgs(cmd, i)
	options.AddDoneArg(cmd, to)
	options.AddUndoArg(cmd, to)

	topLevel.AddCommand(cmd)
}
