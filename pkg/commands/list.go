package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:       "list [all|active|completed]",
		Aliases:   []string{"get", "ls"},
		Short:     "List todos.",
		ValidArgs: options.FilterNames(),
		Example: `
todo list
todo list active
todo ls --filter completed --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return nil
			case 1:
				fo.Filter = args[0]
				return nil
			default:
				return errors.New("accepts at most one filter")
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			route, err := fo.Route()
			if err != nil {
				return oo.HandleError(err)
			}
			s := list.List{
				Route:  route,
				ShowID: io.ShowID,
				Trace:  oo.Trace,
				JSON:   oo.JSON,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
