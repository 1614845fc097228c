package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/add"
	"tableflip.dev/todo/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	i := &options.InteractiveOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo.",
		Example: `
todo add buy milk
todo add "call the plumber" --filter active
todo add -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if i.Interactive && len(args) == 0 {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			route, err := fo.Route()
			if err != nil {
				return oo.HandleError(err)
			}
			if i.Interactive && title == "" {
				if title, err = snake.PromptTitle(cmd, "What needs to be done", ""); err != nil {
					return err
				}
			}
			s := add.Add{
				Title:  title,
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
