package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/drop"
)

func addDrop(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Delete every todo in the collection.",
		Example: `
todo drop
todo drop --name groceries
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := drop.Drop{
				Trace: oo.Trace,
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
