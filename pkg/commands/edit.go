package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/edit"
	"tableflip.dev/todo/pkg/snake"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	i := &options.InteractiveOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Change the title of a todo.",
		Long: base.Wrap80(`Change the title of a todo. Giving an empty title removes the todo, the same
as editing it to nothing in the interactive view.`),
		Example: `
todo edit 3 buy oat milk
todo edit 3 ""
todo edit -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if i.Interactive && len(args) == 0 {
				return nil
			}
			if len(args) < 2 {
				return errors.New("requires a todo id and a title")
			}
			title = strings.Join(args[1:], " ")
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			route, err := fo.Route()
			if err != nil {
				return oo.HandleError(err)
			}
			if i.Interactive && io.ID == 0 {
				picked, err := pickTodo(cmd, "Edit", route)
				if err != nil {
					return oo.HandleError(err)
				}
				io.ID = picked.ID
				if title, err = snake.PromptTitle(cmd, "Title", picked.Title); err != nil {
					return err
				}
			}
			s := edit.Edit{
				ID:     io.ID,
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
